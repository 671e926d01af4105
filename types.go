package iso8583

import (
	"encoding/json"
	"strings"
	"sync"
)

// BitmapFormat and MTIFormat reuse ValueFormat's three wire encodings
// (ASCII digits, EBCDIC cp1148 digits, packed/BCD nibbles) since the bitmap
// and the MTI are transcoded exactly the same way a field value is.
type BitmapFormat = ValueFormat
type MTIFormat = ValueFormat

type ValidationLevel int

const (
	ValidationNone ValidationLevel = iota
	ValidationBasic
	ValidationStrict
)

// Field holds one data element's raw logical value (the text or binary
// payload, already stripped of any length indicator or padding nibble).
// Its length discipline, alphabet, and wire encoding are looked up from the
// owning Catalog by field number at encode/decode time rather than stored
// redundantly per-Field.
type Field struct {
	data   []byte
	length int
	parsed bool
	mu     sync.RWMutex
}

// DescriptorOverride is the JSON-configurable shape of a Descriptor,
// allowing a packager config file to redefine a subset of fields (e.g. to
// load a non-default specification at startup) without the caller writing
// Go code. Family/LenForm/Alphabet/Format accept either their numeric or
// their conventional string form ("LL", "A", "n", ...).
type DescriptorOverride struct {
	Short     string  `json:"short,omitempty"`
	Long      string  `json:"long,omitempty"`
	Family    Family  `json:"family"`
	LenForm   LenForm `json:"len_form"`
	MaxLength int     `json:"max_length"`
	Alphabet  Alphabet `json:"alphabet"`
	Format    ValueFormat `json:"format"`
}

func (d *DescriptorOverride) UnmarshalJSON(data []byte) error {
	type Alias DescriptorOverride
	aux := &struct {
		Family   interface{} `json:"family"`
		LenForm  interface{} `json:"len_form"`
		Alphabet interface{} `json:"alphabet"`
		Format   interface{} `json:"format"`
		*Alias
	}{Alias: (*Alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if v, ok := aux.Family.(string); ok {
		d.Family = parseFamilyString(v)
	} else if v, ok := aux.Family.(float64); ok {
		d.Family = Family(v)
	}
	if v, ok := aux.LenForm.(string); ok {
		d.LenForm = parseLenFormString(v)
	} else if v, ok := aux.LenForm.(float64); ok {
		d.LenForm = LenForm(v)
	}
	if v, ok := aux.Alphabet.(string); ok {
		d.Alphabet = parseAlphabetString(v)
	} else if v, ok := aux.Alphabet.(float64); ok {
		d.Alphabet = Alphabet(v)
	}
	if v, ok := aux.Format.(string); ok {
		d.Format = parseValueFormatString(v)
	} else if v, ok := aux.Format.(float64); ok {
		d.Format = ValueFormat(v)
	}
	return nil
}

func parseFamilyString(s string) Family {
	switch strings.ToUpper(s) {
	case "N":
		return FamilyN
	case "A":
		return FamilyA
	case "AN":
		return FamilyAN
	case "ANS":
		return FamilyANS
	case "B":
		return FamilyB
	case "LL":
		return FamilyLL
	case "LLL":
		return FamilyLLL
	case "LLLLLL":
		return FamilyLLLLLL
	default:
		return FamilyN
	}
}

func parseLenFormString(s string) LenForm {
	switch s {
	case "-", "":
		return LenFormNone
	case "A":
		return LenFormASCII
	case "E":
		return LenFormEBCDIC
	case "B":
		return LenFormBCD
	case "P":
		return LenFormPacked
	default:
		return LenFormNone
	}
}

func parseAlphabetString(s string) Alphabet {
	switch strings.ToLower(s) {
	case "a":
		return AlphabetA
	case "n":
		return AlphabetN
	case "an":
		return AlphabetAN
	case "ans":
		return AlphabetANS
	case "b":
		return AlphabetB
	default:
		return AlphabetANS
	}
}

func parseValueFormatString(s string) ValueFormat {
	switch strings.ToUpper(s) {
	case "A":
		return ValueASCII
	case "E":
		return ValueEBCDIC
	case "P":
		return ValuePacked
	default:
		return ValueASCII
	}
}

func (d DescriptorOverride) descriptor() Descriptor {
	return Descriptor{
		Short:     d.Short,
		Long:      d.Long,
		Family:    d.Family,
		LenForm:   d.LenForm,
		MaxLength: d.MaxLength,
		Alphabet:  d.Alphabet,
		Format:    d.Format,
	}
}

// HeaderConfig configures Message's optional fixed-length opaque header
// prefix. Length of 0 means no header.
type HeaderConfig struct {
	Length int `json:"length"`
}

// PackagerConfig is the JSON-loadable configuration for a CompiledPackager:
// per-field catalog overrides plus the wire-format knobs of the
// "Configuration surface" table (MTI format, bitmap format/case, header
// length, debug tracing).
type PackagerConfig struct {
	FieldOverrides  map[int]DescriptorOverride `json:"fields,omitempty"`
	MTIFormat       MTIFormat                  `json:"mti_format"`
	BitmapFormat    BitmapFormat               `json:"bitmap_format"`
	BitmapUppercase bool                       `json:"bitmap_uppercase"`
	Header          HeaderConfig               `json:"header"`
	Debug           bool                       `json:"debug"`
}

const (
	MaxFieldNumber      = 128
	BitmapSize          = 8
	SecondaryBitmapSize = 8
)
