package iso8583

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
)

// Server accepts TCP connections, each carrying a stream of 2-byte
// length-prefixed ISO 8583 messages (see framing.go), dispatches every
// decoded request through a Dispatcher, and writes the framed response
// back on the same connection. One goroutine runs per accepted
// connection, bounded by the connection limit (see WithConnLimit) — the same semaphore-channel +
// sync.WaitGroup idiom processor.go uses for batch/stream processing.
//
// Unlike the reference server's handle_client loop, which reads a fixed
// 1024-byte chunk per message and silently truncates or concatenates
// frames that don't fit that chunk, Server reads the 2-byte length prefix
// and then exactly that many payload bytes, across as many underlying
// Read calls as the network requires.
type Server struct {
	listener   net.Listener
	dispatcher *Dispatcher
	packager   *CompiledPackager
	order      FrameByteOrder
	logger     *slog.Logger
	connLimit  int

	wg sync.WaitGroup
}

// ServerOption configures a Server at construction time.
type ServerOption func(*Server)

// WithFrameByteOrder selects the length-prefix byte order (default
// FrameBigEndian).
func WithFrameByteOrder(order FrameByteOrder) ServerOption {
	return func(s *Server) { s.order = order }
}

// WithConnLimit bounds how many connections are served concurrently
// (default 64). Connections beyond the limit wait to be accepted until a
// slot frees up.
func WithConnLimit(n int) ServerOption {
	return func(s *Server) { s.connLimit = n }
}

// WithServerLogger attaches the structured logger the server and its
// connection workers use (default slog.Default()).
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer builds a Server around an already-listening net.Listener, a
// Dispatcher to route decoded requests, and the packager new per-connection
// Messages are built with.
func NewServer(listener net.Listener, dispatcher *Dispatcher, packager *CompiledPackager, opts ...ServerOption) *Server {
	s := &Server{
		listener:   listener,
		dispatcher: dispatcher,
		packager:   packager,
		order:      FrameBigEndian,
		logger:     slog.Default(),
		connLimit:  64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve accepts connections until ctx is cancelled or the listener returns
// a non-cancellation error. It blocks until every in-flight connection
// worker has returned.
func (s *Server) Serve(ctx context.Context) error {
	semaphore := make(chan struct{}, s.connLimit)

	stopAccept := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			s.listener.Close()
		case <-stopAccept:
		}
	}()
	defer close(stopAccept)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				s.wg.Wait()
				return nil
			default:
				s.wg.Wait()
				return err
			}
		}

		s.wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer s.wg.Done()
			defer func() { <-semaphore }()
			s.handleConn(ctx, conn)
		}()
	}
}

// handleConn drives one connection's request/response loop until the
// client disconnects, the context is cancelled, a read/write error occurs,
// or dispatching a request fails. A panic inside the dispatcher is
// recovered and logged; it never takes the process down.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr().String()
	logger := s.logger.With("remote_addr", remote)
	logger.Info("connection established")
	defer logger.Info("connection closed")
	defer conn.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("connection worker panic", "panic", r)
		}
	}()

	buf := getBuffer()
	defer putBuffer(buf)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		payload, err := readFramedInto(conn, s.order, buf)
		if err != nil {
			if err != io.EOF {
				logger.Warn("frame read error", "error", err)
			}
			return
		}
		buf = payload

		req := NewMessage(WithPackager(s.packager))
		if err := req.FromWire(payload); err != nil {
			logger.Warn("malformed message", "error", err)
			req.Release()
			continue
		}

		resp, err := s.dispatcher.Dispatch(ctx, req)
		req.Release()
		if err != nil {
			logger.Error("dispatch error", "error", err)
			return
		}

		framed, err := resp.ToFramed(s.order)
		resp.Release()
		if err != nil {
			logger.Error("encode response error", "error", err)
			continue
		}

		if _, err := conn.Write(framed); err != nil {
			logger.Warn("write error", "error", err)
			return
		}
	}
}

// readFramedInto reads one length-prefixed frame from r, reusing buf's
// backing array when it's large enough. It reads the length prefix and
// then exactly that many payload bytes via io.ReadFull, looping internally
// over as many underlying Read calls as needed — the fix for the
// single-recv framing bug this component is built to avoid.
func readFramedInto(r io.Reader, order FrameByteOrder, buf []byte) ([]byte, error) {
	var lenBuf [frameLengthSize]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := readFrameLength(lenBuf[:], order)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
