package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompiledPackagerDefaults(t *testing.T) {
	pkg, err := NewCompiledPackager(DefaultPackagerConfig())
	require.NoError(t, err)
	assert.NotNil(t, pkg.Catalog())
	assert.NotNil(t, pkg.Validator())
	assert.False(t, pkg.Debug())
}

func TestNewCompiledPackagerAppliesFieldOverrides(t *testing.T) {
	config := NewPackagerConfig(
		WithFieldOverride(2, DescriptorOverride{
			Family: FamilyLL, LenForm: LenFormBCD, MaxLength: 19, Alphabet: AlphabetN, Format: ValueASCII,
		}),
	)
	pkg, err := NewCompiledPackager(config)
	require.NoError(t, err)

	desc, err := pkg.Catalog().Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, FamilyLL, desc.Family)
	assert.Equal(t, LenFormBCD, desc.LenForm)
}

func TestNewCompiledPackagerRejectsInvalidOverride(t *testing.T) {
	config := NewPackagerConfig(
		WithFieldOverride(1, DescriptorOverride{Family: FamilyN, MaxLength: 4}),
	)
	_, err := NewCompiledPackager(config)
	assert.Error(t, err)
}

func TestLoadPackagerFromByteStringForms(t *testing.T) {
	jsonConfig := `{
		"mti_format": "A",
		"bitmap_format": "A",
		"bitmap_uppercase": true,
		"header": {"length": 2},
		"fields": {
			"2": {"family": "LL", "len_form": "A", "max_length": 19, "alphabet": "n", "format": "A"}
		}
	}`

	pkg, err := LoadPackagerFromByte([]byte(jsonConfig))
	require.NoError(t, err)
	assert.Equal(t, ValueASCII, pkg.mtiFormat)
	assert.Equal(t, ValueASCII, pkg.bitmapFormat)
	assert.True(t, pkg.bitmapUppercase)
	assert.Equal(t, 2, pkg.header.Length)

	desc, err := pkg.Catalog().Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, FamilyLL, desc.Family)
	assert.Equal(t, LenFormASCII, desc.LenForm)
	assert.Equal(t, AlphabetN, desc.Alphabet)
}

func TestLoadPackagerFromByteNumericForms(t *testing.T) {
	jsonConfig := `{
		"mti_format": 0,
		"bitmap_format": 0,
		"fields": {
			"2": {"family": 5, "len_form": 1, "max_length": 19, "alphabet": 1, "format": 0}
		}
	}`
	pkg, err := LoadPackagerFromByte([]byte(jsonConfig))
	require.NoError(t, err)

	desc, err := pkg.Catalog().Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, FamilyLL, desc.Family)
}

func TestLoadPackagerFromByteRejectsMalformedJSON(t *testing.T) {
	_, err := LoadPackagerFromByte([]byte("{not json"))
	assert.Error(t, err)
}

func TestDescriptorOverrideUnmarshalUnknownStringDefaults(t *testing.T) {
	var override DescriptorOverride
	err := override.UnmarshalJSON([]byte(`{"family":"bogus","alphabet":"bogus","format":"bogus","len_form":"bogus"}`))
	require.NoError(t, err)
	assert.Equal(t, FamilyN, override.Family)
	assert.Equal(t, AlphabetANS, override.Alphabet)
	assert.Equal(t, ValueASCII, override.Format)
	assert.Equal(t, LenFormNone, override.LenForm)
}

func TestNewPackagerConfigOptionsCompose(t *testing.T) {
	config := NewPackagerConfig(
		WithMTIFormat(ValueEBCDIC),
		WithBitmapFormat(ValuePacked),
		WithBitmapUppercase(true),
		WithHeaderConfig(HeaderConfig{Length: 4}),
		WithDebug(true),
	)
	assert.Equal(t, ValueEBCDIC, config.MTIFormat)
	assert.Equal(t, ValuePacked, config.BitmapFormat)
	assert.True(t, config.BitmapUppercase)
	assert.Equal(t, 4, config.Header.Length)
	assert.True(t, config.Debug)
}
