package iso8583

import "encoding/hex"

// BitmapManager handles the 64-bit primary and 64-bit secondary ISO 8583
// bitmaps: a 128-bit presence set, MSB-first within each byte, with bit 1
// acting as the continuation marker for the secondary half.
type BitmapManager struct {
	primary      [BitmapSize]byte
	secondary    [SecondaryBitmapSize]byte
	hasSecondary bool
}

// NewBitmapManager creates an empty bitmap manager.
func NewBitmapManager() *BitmapManager {
	return &BitmapManager{}
}

// SetField sets the bit for field number f (1-128). Setting any field in
// 65..128 implicitly sets bit 1 (the secondary-bitmap indicator).
func (bm *BitmapManager) SetField(f int) error {
	if f < 1 || f > MaxFieldNumber {
		return BitNonexistent(f)
	}

	if f <= 64 {
		byteIndex := (f - 1) / 8
		bitIndex := 7 - ((f - 1) % 8)
		bm.primary[byteIndex] |= 1 << bitIndex
	} else {
		bm.hasSecondary = true
		bm.primary[0] |= 0x80

		adjusted := f - 64
		byteIndex := (adjusted - 1) / 8
		bitIndex := 7 - ((adjusted - 1) % 8)
		bm.secondary[byteIndex] |= 1 << bitIndex
	}
	return nil
}

// IsFieldSet reports whether the bit for field f is set.
func (bm *BitmapManager) IsFieldSet(f int) bool {
	if f < 1 || f > MaxFieldNumber {
		return false
	}
	if f <= 64 {
		byteIndex := (f - 1) / 8
		bitIndex := 7 - ((f - 1) % 8)
		return bm.primary[byteIndex]&(1<<bitIndex) != 0
	}
	if !bm.hasSecondary {
		return false
	}
	adjusted := f - 64
	byteIndex := (adjusted - 1) / 8
	bitIndex := 7 - ((adjusted - 1) % 8)
	return bm.secondary[byteIndex]&(1<<bitIndex) != 0
}

// ClearField clears the bit for field f. Clearing the last set bit in
// 65..128 also clears bit 1, per the continuation-bit invariant.
func (bm *BitmapManager) ClearField(f int) error {
	if f < 1 || f > MaxFieldNumber {
		return BitNonexistent(f)
	}

	if f <= 64 {
		byteIndex := (f - 1) / 8
		bitIndex := 7 - ((f - 1) % 8)
		bm.primary[byteIndex] &^= 1 << bitIndex
		return nil
	}

	if !bm.hasSecondary {
		return nil
	}
	adjusted := f - 64
	byteIndex := (adjusted - 1) / 8
	bitIndex := 7 - ((adjusted - 1) % 8)
	bm.secondary[byteIndex] &^= 1 << bitIndex

	empty := true
	for _, b := range bm.secondary {
		if b != 0 {
			empty = false
			break
		}
	}
	if empty {
		bm.hasSecondary = false
		bm.primary[0] &^= 0x80
	}
	return nil
}

// GetPresentFields returns, in ascending order, the field numbers set in
// the bitmap (field 1 itself is never included: it is the continuation
// marker, not a payload field).
func (bm *BitmapManager) GetPresentFields() []int {
	fields := make([]int, 0, 64)
	for f := 2; f <= 64; f++ {
		if bm.IsFieldSet(f) {
			fields = append(fields, f)
		}
	}
	if bm.hasSecondary {
		for f := 65; f <= 128; f++ {
			if bm.IsFieldSet(f) {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

// PackBitmap writes the bitmap into buf under the given wire format and
// case, returning the number of bytes written.
func (bm *BitmapManager) PackBitmap(buf []byte, format BitmapFormat, uppercase bool) (int, error) {
	switch format {
	case ValuePacked:
		return bm.packBinary(buf)
	default:
		return bm.packHex(buf, format, uppercase)
	}
}

func (bm *BitmapManager) packBinary(buf []byte) (int, error) {
	total := BitmapSize
	if bm.hasSecondary {
		total += SecondaryBitmapSize
	}
	if len(buf) < total {
		return 0, ErrBufferTooSmall
	}
	offset := copy(buf, bm.primary[:])
	if bm.hasSecondary {
		offset += copy(buf[offset:], bm.secondary[:])
	}
	return offset, nil
}

func (bm *BitmapManager) packHex(buf []byte, format BitmapFormat, uppercase bool) (int, error) {
	const hexSize = 16
	total := hexSize
	if bm.hasSecondary {
		total += hexSize
	}
	if len(buf) < total {
		return 0, ErrBufferTooSmall
	}

	encodeHalf := func(dst []byte, half []byte) error {
		encodeHexCase(dst, half, uppercase)
		if format == ValueEBCDIC {
			return ebcdicEncode(dst, append([]byte(nil), dst...))
		}
		return nil
	}

	if err := encodeHalf(buf[:hexSize], bm.primary[:]); err != nil {
		return 0, err
	}
	offset := hexSize
	if bm.hasSecondary {
		if err := encodeHalf(buf[offset:offset+hexSize], bm.secondary[:]); err != nil {
			return 0, err
		}
		offset += hexSize
	}
	return offset, nil
}

// UnpackBitmap reads the bitmap from data under the given wire format,
// returning the number of bytes consumed.
func (bm *BitmapManager) UnpackBitmap(data []byte, format BitmapFormat) (int, error) {
	switch format {
	case ValuePacked:
		return bm.unpackBinary(data)
	default:
		return bm.unpackHex(data, format)
	}
}

func (bm *BitmapManager) unpackBinary(data []byte) (int, error) {
	if len(data) < BitmapSize {
		return 0, ErrInvalidIso8583
	}
	copy(bm.primary[:], data[:BitmapSize])
	offset := BitmapSize
	bm.hasSecondary = bm.primary[0]&0x80 != 0

	if bm.hasSecondary {
		if len(data) < offset+SecondaryBitmapSize {
			return 0, ErrInvalidIso8583
		}
		copy(bm.secondary[:], data[offset:offset+SecondaryBitmapSize])
		offset += SecondaryBitmapSize
	} else {
		bm.secondary = [SecondaryBitmapSize]byte{}
	}
	return offset, nil
}

func (bm *BitmapManager) unpackHex(data []byte, format BitmapFormat) (int, error) {
	const hexSize = 16
	if len(data) < hexSize {
		return 0, ErrInvalidIso8583
	}

	decodeHalf := func(dst *[BitmapSize]byte, src []byte) error {
		if format == ValueEBCDIC {
			ascii := make([]byte, len(src))
			if err := ebcdicDecode(ascii, src); err != nil {
				return err
			}
			src = ascii
		}
		_, err := hex.Decode(dst[:], src)
		return err
	}

	if err := decodeHalf(&bm.primary, data[:hexSize]); err != nil {
		return 0, err
	}
	offset := hexSize
	bm.hasSecondary = bm.primary[0]&0x80 != 0

	if bm.hasSecondary {
		if len(data) < offset+hexSize {
			return 0, ErrInvalidIso8583
		}
		if err := decodeHalf(&bm.secondary, data[offset:offset+hexSize]); err != nil {
			return 0, err
		}
		offset += hexSize
	} else {
		bm.secondary = [SecondaryBitmapSize]byte{}
	}
	return offset, nil
}

// Reset clears both bitmap halves.
func (bm *BitmapManager) Reset() {
	bm.primary = [BitmapSize]byte{}
	bm.secondary = [SecondaryBitmapSize]byte{}
	bm.hasSecondary = false
}

// HasSecondaryBitmap reports whether bit 1 (the continuation marker) is set.
func (bm *BitmapManager) HasSecondaryBitmap() bool {
	return bm.hasSecondary
}

// WireSize returns the number of bytes the bitmap occupies on the wire
// under the given format.
func (bm *BitmapManager) WireSize(format BitmapFormat) int {
	halves := 1
	if bm.hasSecondary {
		halves = 2
	}
	if format == ValuePacked {
		return halves * BitmapSize
	}
	return halves * BitmapSize * 2
}

const hexDigitsUpper = "0123456789ABCDEF"
const hexDigitsLower = "0123456789abcdef"

func encodeHexCase(dst, src []byte, uppercase bool) {
	table := hexDigitsLower
	if uppercase {
		table = hexDigitsUpper
	}
	for i, b := range src {
		dst[i*2] = table[b>>4]
		dst[i*2+1] = table[b&0x0F]
	}
}
