package iso8583

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerEchoesDispatchedResponse(t *testing.T) {
	pkg := newTestPackager(t)
	dispatcher := NewDispatcher(pkg)
	dispatcher.Handle(RouteSale, func(ctx context.Context, req, resp *Message) error {
		resp.SetMTI("0210")
		return resp.SetField(39, "00")
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(listener, dispatcher, pkg, WithFrameByteOrder(FrameBigEndian))

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() { serveDone <- srv.Serve(ctx) }()

	conn, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	req := NewMessage(WithPackager(pkg))
	require.NoError(t, req.SetMTI("0200"))
	require.NoError(t, req.SetField(3, "000000"))
	require.NoError(t, req.SetField(11, "1"))
	framed, err := req.ToFramed(FrameBigEndian)
	req.Release()
	require.NoError(t, err)

	_, err = conn.Write(framed)
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	lenBuf := make([]byte, frameLengthSize)
	_, err = readFull(conn, lenBuf)
	require.NoError(t, err)
	n := readFrameLength(lenBuf, FrameBigEndian)
	payload := make([]byte, n)
	_, err = readFull(conn, payload)
	require.NoError(t, err)

	resp := NewMessage(WithPackager(pkg))
	require.NoError(t, resp.FromWire(payload))
	defer resp.Release()
	assert.Equal(t, "0210", resp.MTI())
	v39, err := resp.GetField(39)
	require.NoError(t, err)
	assert.Equal(t, "00", v39)

	cancel()
	select {
	case <-serveDone:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestServerRespondsWithUnknownTransactionFallback(t *testing.T) {
	pkg := newTestPackager(t)
	dispatcher := NewDispatcher(pkg)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(listener, dispatcher, pkg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx)

	conn, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	req := NewMessage(WithPackager(pkg))
	require.NoError(t, req.SetMTI("0200"))
	require.NoError(t, req.SetField(3, "999999"))
	framed, err := req.ToFramed(FrameBigEndian)
	req.Release()
	require.NoError(t, err)

	_, err = conn.Write(framed)
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	lenBuf := make([]byte, frameLengthSize)
	_, err = readFull(conn, lenBuf)
	require.NoError(t, err)
	n := readFrameLength(lenBuf, FrameBigEndian)
	payload := make([]byte, n)
	_, err = readFull(conn, payload)
	require.NoError(t, err)

	resp := NewMessage(WithPackager(pkg))
	require.NoError(t, resp.FromWire(payload))
	defer resp.Release()
	assert.Equal(t, "0220", resp.MTI())
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
