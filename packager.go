package iso8583

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// CompiledPackager holds the complete wire-format configuration for a family
// of messages: the field catalog (with any per-field redefinitions already
// applied), the MTI and bitmap encodings, and the header length. It is
// immutable after construction and safe for concurrent use by every
// connection worker sharing it.
type CompiledPackager struct {
	catalog         *Catalog
	validator       *CompiledValidator
	mtiFormat       MTIFormat
	bitmapFormat    BitmapFormat
	bitmapUppercase bool
	header          HeaderConfig
	debug           bool
}

// NewCompiledPackager builds a CompiledPackager from a PackagerConfig,
// seeding a fresh Catalog with the standard field table and then applying
// any per-field overrides the config carries.
func NewCompiledPackager(config *PackagerConfig) (*CompiledPackager, error) {
	catalog := NewCatalog()
	for field, override := range config.FieldOverrides {
		if err := catalog.Redefine(field, override.descriptor()); err != nil {
			return nil, fmt.Errorf("field %d override: %w", field, err)
		}
	}

	return &CompiledPackager{
		catalog:         catalog,
		validator:       compileValidator(catalog),
		mtiFormat:       config.MTIFormat,
		bitmapFormat:    config.BitmapFormat,
		bitmapUppercase: config.BitmapUppercase,
		header:          config.Header,
		debug:           config.Debug,
	}, nil
}

// Catalog returns the packager's field catalog.
func (cp *CompiledPackager) Catalog() *Catalog {
	return cp.catalog
}

// Validator returns the packager's compiled field validator.
func (cp *CompiledPackager) Validator() *CompiledValidator {
	return cp.validator
}

// Debug reports whether verbose per-field tracing was requested in config.
func (cp *CompiledPackager) Debug() bool {
	return cp.debug
}

// LogValue implements slog.LogValuer, summarizing the packager's wire-format
// configuration without dumping the full 128-entry catalog.
func (cp *CompiledPackager) LogValue() slog.Value {
	if cp == nil {
		return slog.StringValue("nil")
	}
	return slog.GroupValue(
		slog.Any("mti_format", cp.mtiFormat),
		slog.Any("bitmap_format", cp.bitmapFormat),
		slog.Bool("bitmap_uppercase", cp.bitmapUppercase),
		slog.Int("header_length", cp.header.Length),
		slog.Bool("debug", cp.debug),
	)
}

// LoadPackagerFromFile reads a JSON packager config from filePath and
// compiles it.
func LoadPackagerFromFile(filePath string) (*CompiledPackager, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read packager file %s: %w", filePath, err)
	}
	return LoadPackagerFromByte(data)
}

// LoadPackagerFromByte unmarshals a JSON packager config and compiles it.
func LoadPackagerFromByte(data []byte) (*CompiledPackager, error) {
	var config PackagerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse packager config: %w", err)
	}
	return NewCompiledPackager(&config)
}

// DefaultPackagerConfig returns the wire-format defaults the reference
// codec ships with: ASCII MTI, ASCII bitmap, lowercase hex, no header.
func DefaultPackagerConfig() *PackagerConfig {
	return &PackagerConfig{
		MTIFormat:       ValueASCII,
		BitmapFormat:    ValueASCII,
		BitmapUppercase: false,
		Header:          HeaderConfig{Length: 0},
		Debug:           false,
	}
}

// NewPackagerConfig builds a PackagerConfig from the defaults plus any
// functional options.
func NewPackagerConfig(opts ...PackagerOption) *PackagerConfig {
	config := DefaultPackagerConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}
