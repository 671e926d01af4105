package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTLVShortForm(t *testing.T) {
	// Tag 9F26 (2-byte, high tag number form), length 8, 8-byte value.
	buf := []byte{0x9F, 0x26, 0x08, 1, 2, 3, 4, 5, 6, 7, 8}
	elements, err := ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, []byte{0x9F, 0x26}, elements[0].Tag)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, elements[0].Value)
}

func TestParseTLVSingleByteTag(t *testing.T) {
	buf := []byte{0x5A, 0x02, 0xAB, 0xCD}
	elements, err := ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, []byte{0x5A}, elements[0].Tag)
	assert.Equal(t, []byte{0xAB, 0xCD}, elements[0].Value)
}

func TestParseTLVLongFormLength(t *testing.T) {
	value := make([]byte, 130)
	for i := range value {
		value[i] = byte(i)
	}
	buf := append([]byte{0x5F, 0x20, 0x81, 0x82}, value...)
	elements, err := ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, value, elements[0].Value)
}

func TestParseTLVMultipleElements(t *testing.T) {
	buf := []byte{
		0x5A, 0x02, 0xAB, 0xCD,
		0x5F, 0x24, 0x03, 0x25, 0x12, 0x31,
	}
	elements, err := ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, []byte{0x5A}, elements[0].Tag)
	assert.Equal(t, []byte{0x5F, 0x24}, elements[1].Tag)
	assert.Equal(t, []byte{0x25, 0x12, 0x31}, elements[1].Value)
}

func TestParseTLVTruncatedTag(t *testing.T) {
	_, err := ParseTLV([]byte{0x9F})
	assert.ErrorIs(t, err, ErrTLVTruncated)
}

func TestParseTLVTruncatedLength(t *testing.T) {
	_, err := ParseTLV([]byte{0x5A, 0x81})
	assert.ErrorIs(t, err, ErrTLVTruncated)
}

func TestParseTLVTruncatedValue(t *testing.T) {
	_, err := ParseTLV([]byte{0x5A, 0x05, 0x01, 0x02})
	assert.ErrorIs(t, err, ErrTLVTruncated)
}

func TestPackTLVRoundTrip(t *testing.T) {
	elements := []TLV{
		{Tag: []byte{0x5A}, Value: []byte{0xAB, 0xCD}},
		{Tag: []byte{0x9F, 0x26}, Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	buf := make([]byte, 64)
	n, err := PackTLV(elements, buf)
	require.NoError(t, err)

	decoded, err := ParseTLV(buf[:n])
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, elements[0].Tag, decoded[0].Tag)
	assert.Equal(t, elements[0].Value, decoded[0].Value)
	assert.Equal(t, elements[1].Tag, decoded[1].Tag)
	assert.Equal(t, elements[1].Value, decoded[1].Value)
}

func TestPackTLVLongFormLength(t *testing.T) {
	value := make([]byte, 300)
	elements := []TLV{{Tag: []byte{0x5F, 0x20}, Value: value}}
	buf := make([]byte, 400)
	n, err := PackTLV(elements, buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0x82), buf[2])

	decoded, err := ParseTLV(buf[:n])
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, value, decoded[0].Value)
}

func TestPackTLVRejectsBufferTooSmall(t *testing.T) {
	elements := []TLV{{Tag: []byte{0x5A}, Value: []byte{0x01, 0x02}}}
	buf := make([]byte, 2)
	_, err := PackTLV(elements, buf)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestMessageICCDataRequiresField55(t *testing.T) {
	pkg := newTestPackager(t)
	m := NewMessage(WithPackager(pkg))
	defer m.Release()
	require.NoError(t, m.SetMTI("0200"))

	_, err := m.ICCData()
	assert.Error(t, err)
	assert.IsType(t, &FieldError{}, err)
}

func TestMessageICCDataParsesField55(t *testing.T) {
	pkg := newTestPackager(t)
	m := NewMessage(WithPackager(pkg))
	defer m.Release()
	require.NoError(t, m.SetMTI("0200"))

	raw := []byte{0x5A, 0x02, 0xAB, 0xCD, 0x9F, 0x26, 0x02, 0x01, 0x02}
	require.NoError(t, m.SetField(55, string(raw)))

	elements, err := m.ICCData()
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, []byte{0x5A}, elements[0].Tag)
	assert.Equal(t, []byte{0x9F, 0x26}, elements[1].Tag)
}
