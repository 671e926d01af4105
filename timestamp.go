package iso8583

import "time"

// Common ISO 8583 timestamp layouts, expressed as Go reference-time
// layouts. These mirror the substring-and-parse helpers
// (getYYMMDDhhmmss/getMMDDhhmmss/getYYMMDD/getMMDD/gethhmmss) the reference
// implementation exposes over already-decoded field text; this codec reads
// no clock of its own, it only formats values callers have already set.
const (
	LayoutYYMMDDhhmmss = "060102150405"
	LayoutMMDDhhmmss   = "0102150405"
	LayoutYYMMDD       = "060102"
	LayoutMMDD         = "0102"
	Layouthhmmss       = "150405"
)

// FieldTimestamp parses field f's current value as a timestamp using
// layout (one of the Layout* constants above, or any compatible
// reference-time layout). It returns BitNotSet if the field isn't present.
func (m *Message) FieldTimestamp(f int, layout string) (time.Time, error) {
	if !m.HasField(f) {
		return time.Time{}, &FieldError{Field: f, Err: BitNotSet(f)}
	}
	value, err := m.GetField(f)
	if err != nil {
		return time.Time{}, &FieldError{Field: f, Err: err}
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &FieldError{Field: f, Err: err}
	}
	return t, nil
}

// SetFieldTimestamp formats t using layout and stores it in field f.
func (m *Message) SetFieldTimestamp(f int, t time.Time, layout string) error {
	return m.SetField(f, t.Format(layout))
}
