package iso8583

import (
	"strconv"
	"unsafe"
)

// reset clears the field's data, preparing it for reuse (e.g. in a message pool).
func (f *Field) reset() {
	f.data = nil
	f.length = 0
	f.parsed = false
}

// String returns the field's logical value as a string.
// It performs a zero-copy conversion using unsafe; the resulting string is
// only valid as long as the underlying f.data byte slice is not modified.
func (f *Field) String() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.parsed || f.data == nil {
		return ""
	}
	return unsafe.String(&f.data[0], f.length)
}

// Bytes returns the field's raw logical value, up to f.length.
func (f *Field) Bytes() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.parsed || f.data == nil {
		return nil
	}
	return f.data[:f.length]
}

// Int parses the field's value as an integer using a zero-copy unsafe.String
// conversion to avoid allocating.
func (f *Field) Int() (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.parsed || f.data == nil {
		return 0, BitNotSet(0)
	}
	return strconv.Atoi(unsafe.String(&f.data[0], f.length))
}

// Int64 parses the field's value as an int64 using the same zero-copy
// unsafe.String conversion as Int.
func (f *Field) Int64() (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.parsed || f.data == nil {
		return 0, BitNotSet(0)
	}
	return strconv.ParseInt(unsafe.String(&f.data[0], f.length), 10, 64)
}

// Length returns the length of the field's logical value.
func (f *Field) Length() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.length
}

// IsPresent returns true if the field has been set or successfully parsed.
func (f *Field) IsPresent() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.parsed && f.data != nil
}

// SetString sets the field's value from a string. This is a zero-copy
// operation: the field's internal data slice points directly at the
// string's underlying bytes, so the string must outlive the field (the
// usual pattern is to own the string for the lifetime of the message, or to
// call SetBytes with an owned copy instead).
func (f *Field) SetString(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(value) > 0 {
		f.data = unsafe.Slice(unsafe.StringData(value), len(value))
	} else {
		f.data = nil
	}
	f.length = len(value)
	f.parsed = true
}

// SetBytes sets the field's value from a byte slice. The field holds a
// reference to the provided slice, not a copy.
func (f *Field) SetBytes(value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = value
	f.length = len(value)
	f.parsed = true
}

// Clone creates a deep copy of the field, allocating a new backing array.
func (f *Field) Clone() *Field {
	f.mu.RLock()
	defer f.mu.RUnlock()

	clone := &Field{length: f.length, parsed: f.parsed}
	if f.data != nil {
		clone.data = make([]byte, f.length)
		copy(clone.data, f.data[:f.length])
	}
	return clone
}
