package iso8583

// FrameByteOrder selects how the 2-byte length prefix that precedes an
// ISO 8583 message on the wire is interpreted.
type FrameByteOrder int

const (
	FrameBigEndian FrameByteOrder = iota
	FrameLittleEndian
)

const frameLengthSize = 2

// ToFramed prepends a 2-byte length prefix (in the given byte order) to
// payload, the byte count of payload itself.
func ToFramed(payload []byte, order FrameByteOrder) ([]byte, error) {
	if len(payload) > 0xFFFF {
		return nil, &ValueTooLarge{Len: len(payload), Max: 0xFFFF}
	}
	out := make([]byte, frameLengthSize+len(payload))
	writeFrameLength(out[:frameLengthSize], len(payload), order)
	copy(out[frameLengthSize:], payload)
	return out, nil
}

// FromFramed reads one length-prefixed message from the front of data,
// returning its payload and the total number of bytes (prefix + payload)
// consumed. It returns ErrInvalidIso8583 if data does not yet hold a
// complete frame; callers reading from a stream should treat that as "need
// more bytes", not as a fatal error.
func FromFramed(data []byte, order FrameByteOrder) (payload []byte, consumed int, err error) {
	if len(data) < frameLengthSize {
		return nil, 0, ErrInvalidIso8583
	}
	n := readFrameLength(data[:frameLengthSize], order)
	total := frameLengthSize + n
	if len(data) < total {
		return nil, 0, ErrInvalidIso8583
	}
	return data[frameLengthSize:total], total, nil
}

// ToFramed packs m and prepends its length prefix in one step.
func (m *Message) ToFramed(order FrameByteOrder) ([]byte, error) {
	payload, err := m.ToWire()
	if err != nil {
		return nil, err
	}
	return ToFramed(payload, order)
}

// FromFramedMessage reads one length-prefixed message from data into a new
// Message obtained via NewMessage(opts...), returning the message and the
// total bytes consumed.
func FromFramedMessage(data []byte, order FrameByteOrder, opts ...MessageOption) (*Message, int, error) {
	payload, consumed, err := FromFramed(data, order)
	if err != nil {
		return nil, 0, err
	}
	m := NewMessage(opts...)
	if err := m.FromWire(payload); err != nil {
		m.Release()
		return nil, 0, err
	}
	return m, consumed, nil
}

func writeFrameLength(buf []byte, n int, order FrameByteOrder) {
	hi := byte(n >> 8)
	lo := byte(n & 0xFF)
	if order == FrameLittleEndian {
		buf[0], buf[1] = lo, hi
	} else {
		buf[0], buf[1] = hi, lo
	}
}

func readFrameLength(buf []byte, order FrameByteOrder) int {
	if order == FrameLittleEndian {
		return int(buf[1])<<8 | int(buf[0])
	}
	return int(buf[0])<<8 | int(buf[1])
}
