package iso8583

import (
	"encoding/hex"
	"strings"
)

// EncodeField formats a field's logical value (decimal/alphanumeric text,
// or a hex string of nibbles for B/packed fields) into its on-wire
// representation per its descriptor.
func EncodeField(field int, d Descriptor, value string) ([]byte, error) {
	if d.Family.isVariable() {
		return encodeVariable(field, d, value)
	}
	return encodeFixed(field, d, value)
}

// DecodeField reads one field's wire bytes from the front of data,
// returning the number of bytes consumed and the decoded logical value.
func DecodeField(field int, d Descriptor, data []byte) (consumed int, value string, err error) {
	if d.Family.isVariable() {
		return decodeVariable(field, d, data)
	}
	return decodeFixed(field, d, data)
}

func encodeFixed(field int, d Descriptor, value string) ([]byte, error) {
	if len(value) > d.MaxLength {
		return nil, &ValueTooLarge{Field: field, Len: len(value), Max: d.MaxLength}
	}
	padded := leftPadZero(value, d.MaxLength)

	if d.Format == ValuePacked {
		hexText := padded
		if len(hexText)%2 != 0 {
			hexText = "0" + hexText
		}
		return hex.DecodeString(hexText)
	}
	return encodeText(padded, d.Format)
}

func decodeFixed(field int, d Descriptor, data []byte) (int, string, error) {
	if d.Format == ValuePacked {
		wireLen := (d.MaxLength + 1) / 2
		if len(data) < wireLen {
			return 0, "", ErrInvalidIso8583
		}
		hexText := strings.ToUpper(hex.EncodeToString(data[:wireLen]))
		if d.MaxLength%2 != 0 {
			hexText = hexText[1:]
		}
		return wireLen, hexText, nil
	}

	wireLen := d.MaxLength
	if len(data) < wireLen {
		return 0, "", ErrInvalidIso8583
	}
	text, err := decodeText(data[:wireLen], d.Format)
	if err != nil {
		return 0, "", err
	}
	return wireLen, text, nil
}

func encodeVariable(field int, d Descriptor, value string) ([]byte, error) {
	_, famMax := familyDigits(d.Family)
	l := len(value)
	if l > famMax || l > d.MaxLength {
		max := famMax
		if d.MaxLength < max {
			max = d.MaxLength
		}
		return nil, &ValueTooLarge{Field: field, Len: l, Max: max}
	}

	indicator, err := EncodeLengthIndicator(d.Family, d.LenForm, l)
	if err != nil {
		return nil, err
	}

	var valueBytes []byte
	if d.Format == ValuePacked {
		hexText := value
		if l%2 != 0 {
			hexText = hexText + "0"
		}
		valueBytes, err = hex.DecodeString(hexText)
		if err != nil {
			return nil, err
		}
	} else {
		valueBytes, err = encodeText(value, d.Format)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, len(indicator)+len(valueBytes))
	out = append(out, indicator...)
	out = append(out, valueBytes...)
	return out, nil
}

func decodeVariable(field int, d Descriptor, data []byte) (int, string, error) {
	l, indLen, err := DecodeLengthIndicator(d.Family, d.LenForm, data)
	if err != nil {
		return 0, "", err
	}
	if l > d.MaxLength {
		return 0, "", &ValueTooLarge{Field: field, Len: l, Max: d.MaxLength}
	}

	wireLen := l
	if d.Format == ValuePacked {
		wireLen = (l + 1) / 2
	}
	if len(data) < indLen+wireLen {
		return 0, "", ErrInvalidIso8583
	}
	valueData := data[indLen : indLen+wireLen]

	if d.Format == ValuePacked {
		hexText := strings.ToUpper(hex.EncodeToString(valueData))
		if l%2 != 0 {
			hexText = hexText[:l]
		}
		return indLen + wireLen, hexText, nil
	}

	text, err := decodeText(valueData, d.Format)
	if err != nil {
		return 0, "", err
	}
	return indLen + wireLen, text, nil
}

func encodeText(s string, format ValueFormat) ([]byte, error) {
	if format == ValueEBCDIC {
		buf := make([]byte, len(s))
		if err := ebcdicEncode(buf, []byte(s)); err != nil {
			return nil, err
		}
		return buf, nil
	}
	return []byte(s), nil
}

func decodeText(data []byte, format ValueFormat) (string, error) {
	if format == ValueEBCDIC {
		buf := make([]byte, len(data))
		if err := ebcdicDecode(buf, data); err != nil {
			return "", err
		}
		return string(buf), nil
	}
	return string(data), nil
}

func leftPadZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width-len(s); i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
	return b.String()
}
