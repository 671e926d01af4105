package iso8583

import (
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// messagePool holds reusable Message objects to reduce allocations across
// connection workers decoding a steady stream of wire messages.
var messagePool = sync.Pool{
	New: func() interface{} {
		return &Message{}
	},
}

// fallbackCatalog backs field lookups for a Message that was never given a
// packager (e.g. built directly with NewMessage() for a quick test). Any
// production use is expected to attach a CompiledPackager via WithPackager.
var fallbackCatalog = NewCatalog()

var fallbackValidator = compileValidator(fallbackCatalog)

// Message is a single ISO 8583 message: an MTI, an optional opaque header,
// a bitmap, and up to 127 data elements (field 1 is the bitmap continuation
// bit, never a payload field). It is reused via a sync.Pool; call Release
// when done with one obtained from NewMessage.
type Message struct {
	mtiText         string
	header          []byte
	headerLen       int
	fields          [MaxFieldNumber + 1]Field
	bitmap          BitmapManager
	packager        *CompiledPackager
	validationLevel ValidationLevel
	rawMessage      []byte
	mu              sync.RWMutex
}

// NewMessage retrieves a Message from the pool, resets it, and applies opts.
func NewMessage(opts ...MessageOption) *Message {
	m := messagePool.Get().(*Message)
	m.reset()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Release returns the message to the pool. The message must not be used
// afterward.
func (m *Message) Release() {
	m.reset()
	messagePool.Put(m)
}

// Reset clears the message for reuse without returning it to the pool.
func (m *Message) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Message) reset() {
	m.mtiText = ""
	m.header = nil
	m.headerLen = 0
	m.packager = nil
	m.validationLevel = ValidationNone
	m.rawMessage = nil
	m.bitmap.Reset()
	for i := range m.fields {
		m.fields[i].reset()
	}
}

func (m *Message) catalog() *Catalog {
	if m.packager != nil {
		return m.packager.catalog
	}
	return fallbackCatalog
}

func (m *Message) validator() *CompiledValidator {
	if m.packager != nil {
		return m.packager.validator
	}
	return fallbackValidator
}

func (m *Message) wireFormats() (MTIFormat, BitmapFormat, bool) {
	if m.packager != nil {
		return m.packager.mtiFormat, m.packager.bitmapFormat, m.packager.bitmapUppercase
	}
	return ValueASCII, ValueASCII, false
}

func (m *Message) effectiveHeaderLen() int {
	if m.headerLen > 0 {
		return m.headerLen
	}
	if m.packager != nil {
		return m.packager.header.Length
	}
	return 0
}

// MTI returns the message's 4-digit Message Type Indicator.
func (m *Message) MTI() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mtiText
}

// SetMTI sets the Message Type Indicator. mti must be exactly 4 decimal
// digits; the wire encoding (ASCII/EBCDIC/packed) is applied at ToWire time
// per the attached packager.
func (m *Message) SetMTI(mti string) error {
	if len(mti) != 4 {
		return ErrInvalidMTI
	}
	for i := 0; i < 4; i++ {
		if mti[i] < '0' || mti[i] > '9' {
			return ErrInvalidMTI
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mtiText = mti
	return nil
}

// SetHeader sets the message's opaque header bytes, copying data.
func (m *Message) SetHeader(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.header = append([]byte(nil), data...)
}

// Header returns the message's opaque header bytes, if any.
func (m *Message) Header() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.header
}

// SetHeaderLength overrides the number of header bytes FromWire consumes,
// taking precedence over the attached packager's configured header length.
func (m *Message) SetHeaderLength(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headerLen = n
}

// SetField sets field f's logical value, checking its length against the
// attached catalog's descriptor, and sets the corresponding bitmap bit. The
// value's characters are not checked against the descriptor's alphabet
// here; Validate does that.
func (m *Message) SetField(f int, value string) error {
	if f == 1 || f < 1 || f > MaxFieldNumber {
		return &FieldError{Field: f, Err: BitNonexistent(f)}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	desc, err := m.catalog().Lookup(f)
	if err != nil {
		return &FieldError{Field: f, Err: err}
	}

	max := desc.MaxLength
	if desc.Family.isVariable() {
		if _, famMax := familyDigits(desc.Family); famMax < max {
			max = famMax
		}
	}
	if len(value) > max {
		return &FieldError{Field: f, Err: &ValueTooLarge{Field: f, Len: len(value), Max: max}}
	}

	m.fields[f].SetString(value)
	if err := m.bitmap.SetField(f); err != nil {
		return &FieldError{Field: f, Err: err}
	}
	return nil
}

// UnsetField clears field f's value and its bitmap bit.
func (m *Message) UnsetField(f int) error {
	if f == 1 || f < 1 || f > MaxFieldNumber {
		return BitNonexistent(f)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields[f].reset()
	return m.bitmap.ClearField(f)
}

// GetField returns field f's logical value. Returns BitNotSet if the field
// is not present in the message's bitmap.
func (m *Message) GetField(f int) (string, error) {
	if f < 1 || f > MaxFieldNumber {
		return "", BitNonexistent(f)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.bitmap.IsFieldSet(f) {
		return "", BitNotSet(f)
	}
	return m.fields[f].String(), nil
}

// fieldAt returns a pointer to field f's storage, for internal callers
// (the validator) that need the *Field itself rather than its decoded
// string.
func (m *Message) fieldAt(f int) *Field {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &m.fields[f]
}

// HasField reports whether field f is present.
func (m *Message) HasField(f int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bitmap.IsFieldSet(f)
}

// GetPresentFields returns, in ascending order, the field numbers present
// in the message (never including field 1, the bitmap continuation bit).
func (m *Message) GetPresentFields() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bitmap.GetPresentFields()
}

// Validate runs the message's current validation level (ValidationBasic or
// ValidationStrict) against its packager's compiled field rules. It is a
// no-op under ValidationNone, the default.
func (m *Message) Validate() error {
	m.mu.RLock()
	level := m.validationLevel
	validator := m.validator()
	m.mu.RUnlock()
	return validator.ValidateMessage(m, level)
}

// ToWire serializes the message into its on-wire byte representation:
// header (if any) followed by MTI, bitmap, and present fields in ascending
// field-number order. If the message's validation level is above
// ValidationNone, ToWire validates before encoding and returns the first
// violation instead of serializing.
func (m *Message) ToWire() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.mtiText) != 4 {
		return nil, ErrInvalidMTI
	}

	mtiFormat, bitmapFormat, uppercase := m.wireFormats()

	out := make([]byte, 0, 64)
	if len(m.header) > 0 {
		out = append(out, m.header...)
	}

	mtiBytes, err := encodeMTI(m.mtiText, mtiFormat)
	if err != nil {
		return nil, err
	}
	out = append(out, mtiBytes...)

	var bmBuf [32]byte
	n, err := m.bitmap.PackBitmap(bmBuf[:], bitmapFormat, uppercase)
	if err != nil {
		return nil, err
	}
	out = append(out, bmBuf[:n]...)

	catalog := m.catalog()
	for _, f := range m.bitmap.GetPresentFields() {
		desc, err := catalog.Lookup(f)
		if err != nil {
			return nil, &FieldError{Field: f, Err: err}
		}
		fieldBytes, err := EncodeField(f, desc, m.fields[f].String())
		if err != nil {
			return nil, &FieldError{Field: f, Err: err}
		}
		out = append(out, fieldBytes...)
	}

	return out, nil
}

// FromWire parses a raw wire message into the Message, replacing any
// existing content. The decoded field values and the header are copies;
// the Message also keeps a reference to data itself as its raw message.
func (m *Message) FromWire(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rawMessage = data
	offset := 0

	hdrLen := m.effectiveHeaderLen()
	if hdrLen > 0 {
		if len(data) < hdrLen {
			return ErrInvalidIso8583
		}
		m.header = append([]byte(nil), data[:hdrLen]...)
		offset += hdrLen
	}

	mtiFormat, bitmapFormat, _ := m.wireFormats()
	mtiText, mtiLen, err := decodeMTI(data[offset:], mtiFormat)
	if err != nil {
		return err
	}
	m.mtiText = mtiText
	offset += mtiLen

	m.bitmap.Reset()
	bmLen, err := m.bitmap.UnpackBitmap(data[offset:], bitmapFormat)
	if err != nil {
		return err
	}
	offset += bmLen

	catalog := m.catalog()
	for _, f := range m.bitmap.GetPresentFields() {
		desc, err := catalog.Lookup(f)
		if err != nil {
			return &FieldError{Field: f, Err: err}
		}
		consumed, value, err := DecodeField(f, desc, data[offset:])
		if err != nil {
			return &FieldError{Field: f, Err: err}
		}
		m.fields[f].SetString(value)
		offset += consumed
	}

	return nil
}

// Equals reports whether m and other carry the same MTI and the same
// fields with the same values.
func (m *Message) Equals(other *Message) bool {
	if other == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if m.mtiText != other.mtiText {
		return false
	}
	a := m.bitmap.GetPresentFields()
	b := other.bitmap.GetPresentFields()
	if len(a) != len(b) {
		return false
	}
	for i, f := range a {
		if b[i] != f || m.fields[f].String() != other.fields[f].String() {
			return false
		}
	}
	return true
}

// Clone deep-copies the message, including field data.
func (m *Message) Clone() *Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := NewMessage()
	clone.mtiText = m.mtiText
	clone.packager = m.packager
	clone.validationLevel = m.validationLevel
	clone.headerLen = m.headerLen
	if m.header != nil {
		clone.header = append([]byte(nil), m.header...)
	}
	for _, f := range m.bitmap.GetPresentFields() {
		clone.fields[f] = *m.fields[f].Clone()
		clone.bitmap.SetField(f)
	}
	return clone
}

// SetValidationLevel sets the validation strictness applied to this
// message instance.
func (m *Message) SetValidationLevel(level ValidationLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationLevel = level
}

// ValidationLevel returns the current validation strictness.
func (m *Message) ValidationLevel() ValidationLevel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.validationLevel
}

// LogValue implements slog.LogValuer for structured logging of a message's
// MTI and present fields.
func (m *Message) LogValue() slog.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()

	present := m.bitmap.GetPresentFields()
	fieldArgs := make([]any, 0, len(present))
	for _, f := range present {
		fieldArgs = append(fieldArgs, slog.String(strconv.Itoa(f), m.fields[f].String()))
	}

	return slog.GroupValue(
		slog.String("mti", m.mtiText),
		slog.Bool("secondary_bitmap", m.bitmap.HasSecondaryBitmap()),
		slog.Group("fields", fieldArgs...),
	)
}

func encodeMTI(text string, format MTIFormat) ([]byte, error) {
	switch format {
	case ValueEBCDIC:
		buf := make([]byte, 4)
		if err := ebcdicEncode(buf, []byte(text)); err != nil {
			return nil, err
		}
		return buf, nil
	case ValuePacked:
		return hex.DecodeString(text)
	default:
		return []byte(text), nil
	}
}

func decodeMTI(data []byte, format MTIFormat) (string, int, error) {
	switch format {
	case ValueEBCDIC:
		if len(data) < 4 {
			return "", 0, ErrInvalidMTI
		}
		buf := make([]byte, 4)
		if err := ebcdicDecode(buf, data[:4]); err != nil {
			return "", 0, err
		}
		return string(buf), 4, nil
	case ValuePacked:
		if len(data) < 2 {
			return "", 0, ErrInvalidMTI
		}
		return strings.ToUpper(hex.EncodeToString(data[:2])), 2, nil
	default:
		if len(data) < 4 {
			return "", 0, ErrInvalidMTI
		}
		return string(data[:4]), 4, nil
	}
}
