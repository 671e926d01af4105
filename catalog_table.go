package iso8583

// descriptorTable holds the built-in 128-field catalog, keyed by field number,
// reproducing the classic ISO 8583:1987 data element assignments.
var descriptorTable = [MaxFieldNumber + 1]Descriptor{
	1: {Short: "BME", Long: "Bit Map Extended", Family: FamilyB, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetB, Format: ValueASCII},
	2: {Short: "2", Long: "Primary account number (PAN)", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 19, Alphabet: AlphabetN, Format: ValueASCII},
	3: {Short: "3", Long: "Processing code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 6, Alphabet: AlphabetN, Format: ValueASCII},
	4: {Short: "4", Long: "Amount transaction", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	5: {Short: "5", Long: "Amount reconciliation", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	6: {Short: "6", Long: "Amount cardholder billing", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	7: {Short: "7", Long: "Date and time transmission", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	8: {Short: "8", Long: "Amount cardholder billing fee", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	9: {Short: "9", Long: "Conversion rate reconciliation", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	10: {Short: "10", Long: "Conversion rate cardholder billing", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	11: {Short: "11", Long: "Systems trace audit number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 6, Alphabet: AlphabetN, Format: ValueASCII},
	12: {Short: "12", Long: "Time local transaction", Family: FamilyN, LenForm: LenFormNone, MaxLength: 6, Alphabet: AlphabetN, Format: ValueASCII},
	13: {Short: "13", Long: "Date local transaction", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	14: {Short: "14", Long: "Date expiration", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	15: {Short: "15", Long: "Date settlement", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	16: {Short: "16", Long: "Date conversion", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	17: {Short: "17", Long: "Date capture", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	18: {Short: "18", Long: "Merchant Type", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	19: {Short: "19", Long: "Country code acquiring institution", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	20: {Short: "20", Long: "Country code primary account number (PAN)", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	21: {Short: "21", Long: "Forwarding Institution Country Code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	22: {Short: "22", Long: "POS Entry Mode", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	23: {Short: "23", Long: "Card sequence number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	24: {Short: "24", Long: "Function code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	25: {Short: "25", Long: "POS condition code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 2, Alphabet: AlphabetN, Format: ValueASCII},
	26: {Short: "26", Long: "POS PIN Capture Code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 2, Alphabet: AlphabetN, Format: ValueASCII},
	27: {Short: "27", Long: "Auth ID Response Length", Family: FamilyN, LenForm: LenFormNone, MaxLength: 1, Alphabet: AlphabetN, Format: ValueASCII},
	28: {Short: "28", Long: "Amount, Txn Fee", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	29: {Short: "29", Long: "Amount, Reconciliation Fee", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	30: {Short: "30", Long: "Amount, Txn Processing Fee", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	31: {Short: "31", Long: "Amount, Settlement Processing Fee", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetN, Format: ValueASCII},
	32: {Short: "32", Long: "Acquiring institution identification code", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 11, Alphabet: AlphabetN, Format: ValueASCII},
	33: {Short: "33", Long: "Forwarding institution identification code", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 11, Alphabet: AlphabetN, Format: ValueASCII},
	34: {Short: "34", Long: "Primary Account Number, extended", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 28, Alphabet: AlphabetN, Format: ValueASCII},
	35: {Short: "35", Long: "Track 2 data", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 37, Alphabet: AlphabetN, Format: ValueASCII},
	36: {Short: "36", Long: "Track 3 data", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 104, Alphabet: AlphabetN, Format: ValueASCII},
	37: {Short: "37", Long: "Retrieval reference number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetAN, Format: ValueASCII},
	38: {Short: "38", Long: "Approval code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 6, Alphabet: AlphabetAN, Format: ValueASCII},
	39: {Short: "39", Long: "Response code", Family: FamilyA, LenForm: LenFormNone, MaxLength: 2, Alphabet: AlphabetAN, Format: ValueASCII},
	40: {Short: "40", Long: "Service restriction code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetAN, Format: ValueASCII},
	41: {Short: "41", Long: "Card acceptor terminal identification", Family: FamilyN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetANS, Format: ValueASCII},
	42: {Short: "42", Long: "Card acceptor identification code", Family: FamilyA, LenForm: LenFormNone, MaxLength: 15, Alphabet: AlphabetANS, Format: ValueASCII},
	43: {Short: "43", Long: "Card acceptor name/location", Family: FamilyA, LenForm: LenFormNone, MaxLength: 40, Alphabet: AlphabetANS, Format: ValueASCII},
	44: {Short: "44", Long: "Additional response data", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 25, Alphabet: AlphabetAN, Format: ValueASCII},
	45: {Short: "45", Long: "Track 1 data", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 76, Alphabet: AlphabetAN, Format: ValueASCII},
	46: {Short: "46", Long: "Amounts fees", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	47: {Short: "47", Long: "Additional data national", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	48: {Short: "48", Long: "Additional data private", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	49: {Short: "49", Long: "Currency code, transaction", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetAN, Format: ValueASCII},
	50: {Short: "50", Long: "Currency code, settlement", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetAN, Format: ValueASCII},
	51: {Short: "51", Long: "Currency code, cardholder billing", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetAN, Format: ValueASCII},
	52: {Short: "52", Long: "Personal identification number (PIN) data", Family: FamilyB, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetB, Format: ValueASCII},
	53: {Short: "53", Long: "Security related control information", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	54: {Short: "54", Long: "Amounts additional", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 120, Alphabet: AlphabetAN, Format: ValueASCII},
	55: {Short: "55", Long: "Integrated circuit card (ICC) system related data", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	56: {Short: "56", Long: "Original data elements", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	57: {Short: "57", Long: "Authorisation life cycle code", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	58: {Short: "58", Long: "Authorising agent institution identification code", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	59: {Short: "59", Long: "Transport data", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	60: {Short: "60", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	61: {Short: "61", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	62: {Short: "62", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	63: {Short: "63", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	64: {Short: "64", Long: "Message authentication code (MAC) field", Family: FamilyB, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetB, Format: ValueASCII},
	65: {Short: "65", Long: "Bitmap tertiary", Family: FamilyB, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetB, Format: ValueASCII},
	66: {Short: "66", Long: "Settlement code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 1, Alphabet: AlphabetN, Format: ValueASCII},
	67: {Short: "67", Long: "Extended payment data", Family: FamilyN, LenForm: LenFormNone, MaxLength: 2, Alphabet: AlphabetN, Format: ValueASCII},
	68: {Short: "68", Long: "Receiving institution country code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	69: {Short: "69", Long: "Settlement institution county code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	70: {Short: "70", Long: "Network management Information code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 3, Alphabet: AlphabetN, Format: ValueASCII},
	71: {Short: "71", Long: "Message number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 4, Alphabet: AlphabetN, Format: ValueASCII},
	72: {Short: "72", Long: "Data record", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	73: {Short: "73", Long: "Date action", Family: FamilyN, LenForm: LenFormNone, MaxLength: 6, Alphabet: AlphabetN, Format: ValueASCII},
	74: {Short: "74", Long: "Credits, number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	75: {Short: "75", Long: "Credits, reversal number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	76: {Short: "76", Long: "Debits, number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	77: {Short: "77", Long: "Debits, reversal number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	78: {Short: "78", Long: "Transfer number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	79: {Short: "79", Long: "Transfer, reversal number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	80: {Short: "80", Long: "Inquiries number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	81: {Short: "81", Long: "Authorizations, number", Family: FamilyN, LenForm: LenFormNone, MaxLength: 10, Alphabet: AlphabetN, Format: ValueASCII},
	82: {Short: "82", Long: "Credits, processing fee amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	83: {Short: "83", Long: "Credits, transaction fee amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	84: {Short: "84", Long: "Debits, processing fee amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	85: {Short: "85", Long: "Debits, transaction fee amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 12, Alphabet: AlphabetN, Format: ValueASCII},
	86: {Short: "86", Long: "Credits, amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	87: {Short: "87", Long: "Credits, reversal amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	88: {Short: "88", Long: "Debits, amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	89: {Short: "89", Long: "Debits, reversal amount", Family: FamilyN, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	90: {Short: "90", Long: "Original data elements", Family: FamilyN, LenForm: LenFormNone, MaxLength: 42, Alphabet: AlphabetN, Format: ValueASCII},
	91: {Short: "91", Long: "File update code", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 1, Alphabet: AlphabetAN, Format: ValueASCII},
	92: {Short: "92", Long: "File security code", Family: FamilyN, LenForm: LenFormNone, MaxLength: 2, Alphabet: AlphabetN, Format: ValueASCII},
	93: {Short: "93", Long: "Response indicator", Family: FamilyN, LenForm: LenFormNone, MaxLength: 5, Alphabet: AlphabetN, Format: ValueASCII},
	94: {Short: "94", Long: "Service indicator", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 7, Alphabet: AlphabetAN, Format: ValueASCII},
	95: {Short: "95", Long: "Replacement amounts", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 42, Alphabet: AlphabetAN, Format: ValueASCII},
	96: {Short: "96", Long: "Message security code", Family: FamilyAN, LenForm: LenFormNone, MaxLength: 8, Alphabet: AlphabetAN, Format: ValueASCII},
	97: {Short: "97", Long: "Amount, net settlement", Family: FamilyN, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetN, Format: ValueASCII},
	98: {Short: "98", Long: "Payee", Family: FamilyANS, LenForm: LenFormNone, MaxLength: 25, Alphabet: AlphabetANS, Format: ValueASCII},
	99: {Short: "99", Long: "Settlement institution identification code", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 11, Alphabet: AlphabetN, Format: ValueASCII},
	100: {Short: "100", Long: "Receiving institution identification code", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 11, Alphabet: AlphabetN, Format: ValueASCII},
	101: {Short: "101", Long: "File name", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 17, Alphabet: AlphabetANS, Format: ValueASCII},
	102: {Short: "102", Long: "Account identification 1", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 28, Alphabet: AlphabetANS, Format: ValueASCII},
	103: {Short: "103", Long: "Account identification 2", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 28, Alphabet: AlphabetANS, Format: ValueASCII},
	104: {Short: "104", Long: "Transaction description", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 100, Alphabet: AlphabetANS, Format: ValueASCII},
	105: {Short: "105", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	106: {Short: "106", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	107: {Short: "107", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	108: {Short: "108", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	109: {Short: "109", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	110: {Short: "110", Long: "Reserved for ISO use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	111: {Short: "111", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	112: {Short: "112", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	113: {Short: "113", Long: "Reserved for private use", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 11, Alphabet: AlphabetN, Format: ValueASCII},
	114: {Short: "114", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	115: {Short: "115", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	116: {Short: "116", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	117: {Short: "117", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	118: {Short: "118", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	119: {Short: "119", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	120: {Short: "120", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	121: {Short: "121", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	122: {Short: "122", Long: "Reserved for national use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	123: {Short: "123", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	124: {Short: "124", Long: "Info Text", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 255, Alphabet: AlphabetANS, Format: ValueASCII},
	125: {Short: "125", Long: "Network management information", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 50, Alphabet: AlphabetANS, Format: ValueASCII},
	126: {Short: "126", Long: "Issuer trace id", Family: FamilyLL, LenForm: LenFormASCII, MaxLength: 6, Alphabet: AlphabetANS, Format: ValueASCII},
	127: {Short: "127", Long: "Reserved for private use", Family: FamilyLLL, LenForm: LenFormASCII, MaxLength: 999, Alphabet: AlphabetANS, Format: ValueASCII},
	128: {Short: "128", Long: "Message authentication code (MAC) field", Family: FamilyB, LenForm: LenFormNone, MaxLength: 16, Alphabet: AlphabetB, Format: ValueASCII},
}
