package iso8583

import "sync"

// Family is the length discipline of a field: fixed-length (numeric, alpha,
// alphanumeric, alphanumeric-special, binary) or variable-length with a
// 2/3/6-digit length indicator.
type Family int

const (
	FamilyN Family = iota
	FamilyA
	FamilyAN
	FamilyANS
	FamilyB
	FamilyLL
	FamilyLLL
	FamilyLLLLLL
)

func (f Family) isVariable() bool {
	return f == FamilyLL || f == FamilyLLL || f == FamilyLLLLLL
}

func (f Family) String() string {
	switch f {
	case FamilyN:
		return "N"
	case FamilyA:
		return "A"
	case FamilyAN:
		return "AN"
	case FamilyANS:
		return "ANS"
	case FamilyB:
		return "B"
	case FamilyLL:
		return "LL"
	case FamilyLLL:
		return "LLL"
	case FamilyLLLLLL:
		return "LLLLLL"
	default:
		return "?"
	}
}

// LenForm is the on-wire encoding of a variable-length field's length
// indicator. LenFormNone applies to fixed-length families.
type LenForm int

const (
	LenFormNone LenForm = iota
	LenFormASCII
	LenFormEBCDIC
	LenFormBCD
	LenFormPacked
)

// Alphabet constrains the characters a field's logical value may contain.
type Alphabet int

const (
	AlphabetA Alphabet = iota
	AlphabetN
	AlphabetAN
	AlphabetANS
	AlphabetB
)

// ValueFormat is the on-wire byte encoding of a field's value. A
// variable-length field's length indicator is encoded by its LenForm alone,
// independently of ValueFormat.
type ValueFormat int

const (
	ValueASCII ValueFormat = iota
	ValueEBCDIC
	ValuePacked
)

// Descriptor is the immutable, table-driven description of one of the 128
// ISO 8583 data elements: its length discipline, maximum logical length,
// alphabet, and byte encoding.
type Descriptor struct {
	Short     string
	Long      string
	Family    Family
	LenForm   LenForm
	MaxLength int
	Alphabet  Alphabet
	Format    ValueFormat
}

// Catalog is a read-mostly table of 128 field descriptors. The zero value is
// not usable; construct with NewCatalog, which seeds the built-in defaults.
// Catalog is safe for concurrent reads; Redefine takes a write lock and must
// only be called before a Catalog is shared across connection workers (see
// spec's concurrency model: redefinition racing a live parse is a bug, not a
// supported use).
type Catalog struct {
	mu    sync.RWMutex
	table [MaxFieldNumber + 1]Descriptor
}

// NewCatalog returns a Catalog seeded with the standard ISO 8583:1987
// field assignments.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.table = descriptorTable
	return c
}

// Lookup returns the descriptor for field f. f must be in 1..128.
func (c *Catalog) Lookup(f int) (Descriptor, error) {
	if f < 1 || f > MaxFieldNumber {
		return Descriptor{}, BitNonexistent(f)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table[f], nil
}

// Redefine overrides the descriptor for field f, validating the combination
// the same way the reference implementation's redefineBit does: field 1 and
// out-of-range numbers are rejected, the length family, length-indicator
// form, alphabet, and value format must each be one of their valid members,
// a length-indicator form other than LenFormNone is only legal on a variable
// family, and ValuePacked is only legal on B, N, LL, LLL, or LLLLLL.
func (c *Catalog) Redefine(f int, d Descriptor) error {
	if f == 1 || f < 1 || f > MaxFieldNumber {
		return BitNonexistent(f)
	}

	switch d.Family {
	case FamilyB, FamilyN, FamilyA, FamilyAN, FamilyANS, FamilyLL, FamilyLLL, FamilyLLLLLL:
	default:
		return &InvalidBitType{Field: f, Family: d.Family}
	}

	if !d.Family.isVariable() && d.LenForm != LenFormNone {
		return &InvalidLenForm{Field: f, LenForm: d.LenForm}
	}
	switch d.LenForm {
	case LenFormNone, LenFormASCII, LenFormEBCDIC, LenFormBCD, LenFormPacked:
	default:
		return &InvalidLenForm{Field: f, LenForm: d.LenForm}
	}

	switch d.Alphabet {
	case AlphabetA, AlphabetN, AlphabetAN, AlphabetANS, AlphabetB:
	default:
		return &InvalidValueType{Field: f, Alphabet: d.Alphabet}
	}

	switch d.Format {
	case ValueASCII, ValueEBCDIC, ValuePacked:
	default:
		return &InvalidFormat{Field: f, Format: d.Format}
	}

	if d.Format == ValuePacked {
		switch d.Family {
		case FamilyB, FamilyN, FamilyLL, FamilyLLL, FamilyLLLLLL:
		default:
			return &InvalidFormat{Field: f, Format: d.Format}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.table[f] = d
	return nil
}
