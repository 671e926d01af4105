package iso8583

// MessageOption configures a Message at construction time via NewMessage.
type MessageOption func(*Message)

// WithPackager attaches the wire-format configuration (catalog, MTI/bitmap
// encodings, header length) the message will use to encode and decode.
func WithPackager(packager *CompiledPackager) MessageOption {
	return func(m *Message) {
		m.packager = packager
	}
}

// WithHeader sets the message's opaque header bytes.
func WithHeader(header []byte) MessageOption {
	return func(m *Message) {
		m.SetHeader(header)
	}
}

// WithHeaderLength overrides the header length the message expects on
// FromWire, taking precedence over the packager's configured length.
func WithHeaderLength(n int) MessageOption {
	return func(m *Message) {
		m.SetHeaderLength(n)
	}
}

// WithMTI sets the Message Type Indicator (4 decimal digits).
func WithMTI(mti string) MessageOption {
	return func(m *Message) {
		_ = m.SetMTI(mti)
	}
}

// WithField sets a single field's logical value during construction.
func WithField(fieldNum int, value string) MessageOption {
	return func(m *Message) {
		_ = m.SetField(fieldNum, value)
	}
}

// WithFields sets multiple field values during construction.
func WithFields(fields map[int]string) MessageOption {
	return func(m *Message) {
		for fieldNum, value := range fields {
			_ = m.SetField(fieldNum, value)
		}
	}
}

// WithValidationLevel sets the message's validation strictness.
func WithValidationLevel(level ValidationLevel) MessageOption {
	return func(m *Message) {
		m.validationLevel = level
	}
}

func WithStrictValidation() MessageOption {
	return WithValidationLevel(ValidationStrict)
}

func WithBasicValidation() MessageOption {
	return WithValidationLevel(ValidationBasic)
}

// PackagerOption configures a PackagerConfig via NewPackagerConfig.
type PackagerOption func(*PackagerConfig)

// WithFieldOverride redefines a single field's descriptor in the packager's
// catalog.
func WithFieldOverride(fieldNum int, override DescriptorOverride) PackagerOption {
	return func(pc *PackagerConfig) {
		if pc.FieldOverrides == nil {
			pc.FieldOverrides = make(map[int]DescriptorOverride)
		}
		pc.FieldOverrides[fieldNum] = override
	}
}

// WithMTIFormat sets the wire encoding of the MTI.
func WithMTIFormat(format MTIFormat) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.MTIFormat = format
	}
}

// WithBitmapFormat sets the wire encoding of the bitmap.
func WithBitmapFormat(format BitmapFormat) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.BitmapFormat = format
	}
}

// WithBitmapUppercase controls hex-digit case when the bitmap format is
// ASCII or EBCDIC.
func WithBitmapUppercase(uppercase bool) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.BitmapUppercase = uppercase
	}
}

// WithHeaderConfig sets the fixed-length opaque header configuration.
func WithHeaderConfig(config HeaderConfig) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.Header = config
	}
}

// WithDebug enables verbose per-field tracing.
func WithDebug(enabled bool) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.Debug = enabled
	}
}
