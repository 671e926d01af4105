package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapSetAndIsSet(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(2))
	require.NoError(t, bm.SetField(64))

	assert.True(t, bm.IsFieldSet(2))
	assert.True(t, bm.IsFieldSet(64))
	assert.False(t, bm.IsFieldSet(3))
	assert.False(t, bm.HasSecondaryBitmap())
}

func TestBitmapSettingHighFieldSetsContinuationBit(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(70))

	assert.True(t, bm.HasSecondaryBitmap())
	assert.True(t, bm.IsFieldSet(1))
	assert.True(t, bm.IsFieldSet(70))
}

func TestBitmapClearingLastHighFieldClearsBit1(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(65))
	require.NoError(t, bm.SetField(70))
	assert.True(t, bm.HasSecondaryBitmap())

	require.NoError(t, bm.ClearField(65))
	assert.True(t, bm.HasSecondaryBitmap(), "field 70 still set, continuation bit must stay")

	require.NoError(t, bm.ClearField(70))
	assert.False(t, bm.HasSecondaryBitmap(), "no bits left in 65..128, continuation bit must clear")
	assert.False(t, bm.IsFieldSet(1))
}

func TestBitmapOutOfRangeRejected(t *testing.T) {
	bm := NewBitmapManager()
	assert.Error(t, bm.SetField(0))
	assert.Error(t, bm.SetField(129))
	assert.Error(t, bm.ClearField(0))
}

func TestBitmapGetPresentFieldsAscendingExcludesBit1(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(99))
	require.NoError(t, bm.SetField(3))
	require.NoError(t, bm.SetField(70))

	fields := bm.GetPresentFields()
	assert.Equal(t, []int{3, 70, 99}, fields)
}

func TestBitmapPackUnpackASCIIPrimaryOnly(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(2))
	require.NoError(t, bm.SetField(4))

	buf := make([]byte, 32)
	n, err := bm.PackBitmap(buf, ValueASCII, true)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	decoded := NewBitmapManager()
	consumed, err := decoded.UnpackBitmap(buf[:n], ValueASCII)
	require.NoError(t, err)
	assert.Equal(t, 16, consumed)
	assert.True(t, decoded.IsFieldSet(2))
	assert.True(t, decoded.IsFieldSet(4))
	assert.False(t, decoded.HasSecondaryBitmap())
}

// S2 — MTI 0200, field 3 and field 70 set: primary bitmap's first byte has
// bit 1 set (secondary present), secondary bitmap has bit 6 set (70-64=6).
func TestBitmapS2SecondaryBitmap(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(3))
	require.NoError(t, bm.SetField(70))

	buf := make([]byte, 32)
	n, err := bm.PackBitmap(buf, ValuePacked, false)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	assert.Equal(t, byte(0x80), buf[0]&0x80, "bit 1 (continuation) must be set")
	// field 3 is bit 3 of byte 0: 0x20.
	assert.Equal(t, byte(0x20), buf[0]&0x20)
	// field 70 is bit (70-64)=6 of secondary byte 0: 0x04.
	assert.Equal(t, byte(0x04), buf[8]&0x04)
}

func TestBitmapPackUnpackASCIIWithSecondary(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(3))
	require.NoError(t, bm.SetField(70))

	buf := make([]byte, 32)
	n, err := bm.PackBitmap(buf, ValueASCII, false)
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	decoded := NewBitmapManager()
	consumed, err := decoded.UnpackBitmap(buf[:n], ValueASCII)
	require.NoError(t, err)
	assert.Equal(t, 32, consumed)
	assert.True(t, decoded.HasSecondaryBitmap())
	assert.True(t, decoded.IsFieldSet(3))
	assert.True(t, decoded.IsFieldSet(70))
}

func TestBitmapPackUnpackEBCDICRoundTrip(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(2))

	buf := make([]byte, 32)
	n, err := bm.PackBitmap(buf, ValueEBCDIC, true)
	require.NoError(t, err)

	decoded := NewBitmapManager()
	consumed, err := decoded.UnpackBitmap(buf[:n], ValueEBCDIC)
	require.NoError(t, err)
	assert.Equal(t, n, consumed)
	assert.True(t, decoded.IsFieldSet(2))
}

func TestBitmapPackUnpackPackedBinaryRoundTrip(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(11))
	require.NoError(t, bm.SetField(100))

	buf := make([]byte, 16)
	n, err := bm.PackBitmap(buf, ValuePacked, false)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	decoded := NewBitmapManager()
	consumed, err := decoded.UnpackBitmap(buf[:n], ValuePacked)
	require.NoError(t, err)
	assert.Equal(t, 16, consumed)
	assert.True(t, decoded.IsFieldSet(11))
	assert.True(t, decoded.IsFieldSet(100))
}

func TestBitmapUnpackRejectsShortBuffer(t *testing.T) {
	bm := NewBitmapManager()
	_, err := bm.UnpackBitmap([]byte{0x00, 0x00}, ValuePacked)
	assert.ErrorIs(t, err, ErrInvalidIso8583)
}

func TestBitmapReset(t *testing.T) {
	bm := NewBitmapManager()
	require.NoError(t, bm.SetField(70))
	bm.Reset()
	assert.False(t, bm.HasSecondaryBitmap())
	assert.False(t, bm.IsFieldSet(70))
	assert.Empty(t, bm.GetPresentFields())
}
