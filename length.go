package iso8583

// familyDigits returns the number of decimal digits a variable-length
// family's length indicator carries (2 for LL, 3 for LLL, 6 for LLLLLL)
// and the absolute maximum value that many digits can hold.
func familyDigits(family Family) (digits int, max int) {
	switch family {
	case FamilyLL:
		return 2, 99
	case FamilyLLL:
		return 3, 999
	case FamilyLLLLLL:
		return 6, 999999
	default:
		return 0, 0
	}
}

// indicatorWireLen returns the number of bytes the length indicator
// occupies on the wire for the given family/form combination: ASCII and
// EBCDIC carry one byte per digit, BCD and packed-hex carry one nibble per
// digit (half as many bytes, rounded up), except packed-hex which is a
// fixed-width unsigned binary integer rather than BCD nibbles.
func indicatorWireLen(family Family, form LenForm) int {
	digits, _ := familyDigits(family)
	switch form {
	case LenFormASCII, LenFormEBCDIC:
		return digits
	case LenFormBCD, LenFormPacked:
		return (digits + 1) / 2
	default:
		return 0
	}
}

// EncodeLengthIndicator renders a non-negative logical length l as the
// on-wire length-indicator bytes for the given family and form. l must not
// exceed the family's absolute maximum (99/999/999999).
func EncodeLengthIndicator(family Family, form LenForm, l int) ([]byte, error) {
	digits, max := familyDigits(family)
	if digits == 0 {
		return nil, &InvalidBitType{Family: family}
	}
	if l < 0 || l > max {
		return nil, &ValueTooLarge{Len: l, Max: max}
	}

	switch form {
	case LenFormASCII:
		buf := make([]byte, digits)
		writeDecimalASCII(buf, l)
		return buf, nil
	case LenFormEBCDIC:
		ascii := make([]byte, digits)
		writeDecimalASCII(ascii, l)
		buf := make([]byte, digits)
		if err := ebcdicEncode(buf, ascii); err != nil {
			return nil, err
		}
		return buf, nil
	case LenFormBCD:
		byteLen := (digits + 1) / 2
		return encodeBCD(l, byteLen*2), nil
	case LenFormPacked:
		return encodeBigEndian(l, (digits+1)/2), nil
	default:
		return nil, &InvalidLenForm{LenForm: form}
	}
}

// DecodeLengthIndicator reads a length indicator from the front of data for
// the given family/form, returning the decoded logical length and the
// number of wire bytes consumed.
func DecodeLengthIndicator(family Family, form LenForm, data []byte) (value int, consumed int, err error) {
	digits, _ := familyDigits(family)
	if digits == 0 {
		return 0, 0, &InvalidBitType{Family: family}
	}
	wireLen := indicatorWireLen(family, form)
	if len(data) < wireLen {
		return 0, 0, ErrInvalidIso8583
	}

	switch form {
	case LenFormASCII:
		v, ok := parseDecimalASCII(data[:digits])
		if !ok {
			return 0, 0, ErrInvalidIso8583
		}
		return v, digits, nil
	case LenFormEBCDIC:
		ascii := make([]byte, digits)
		if err := ebcdicDecode(ascii, data[:digits]); err != nil {
			return 0, 0, err
		}
		v, ok := parseDecimalASCII(ascii)
		if !ok {
			return 0, 0, ErrInvalidIso8583
		}
		return v, digits, nil
	case LenFormBCD:
		return decodeBCD(data[:wireLen]), wireLen, nil
	case LenFormPacked:
		return decodeBigEndian(data[:wireLen]), wireLen, nil
	default:
		return 0, 0, &InvalidLenForm{LenForm: form}
	}
}

func writeDecimalASCII(buf []byte, v int) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
}

func parseDecimalASCII(buf []byte) (int, bool) {
	v := 0
	for _, b := range buf {
		if b < '0' || b > '9' {
			return 0, false
		}
		v = v*10 + int(b-'0')
	}
	return v, true
}

// encodeBCD packs v as nibbleCount decimal digits (zero-padded on the left
// to an even count, per the reference encoder's '%0Nd' + unhexlify
// behavior), two nibbles per byte, high nibble first. For an odd-digit
// family (LLL) this leaves the high nibble of the first byte zero, as
// the wire format specifies.
func encodeBCD(v int, nibbleCount int) []byte {
	dec := make([]byte, nibbleCount)
	for i := nibbleCount - 1; i >= 0; i-- {
		dec[i] = byte(v % 10)
		v /= 10
	}
	buf := make([]byte, nibbleCount/2)
	for i := 0; i < nibbleCount; i += 2 {
		buf[i/2] = dec[i]<<4 | dec[i+1]
	}
	return buf
}

func decodeBCD(buf []byte) int {
	v := 0
	for _, b := range buf {
		v = v*10 + int(b>>4)
		v = v*10 + int(b&0x0F)
	}
	return v
}

func encodeBigEndian(v int, width int) []byte {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v & 0xFF)
		v >>= 8
	}
	return buf
}

func decodeBigEndian(buf []byte) int {
	v := 0
	for _, b := range buf {
		v = v<<8 | int(b)
	}
	return v
}
