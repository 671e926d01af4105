package iso8583

import (
	"context"
	"fmt"
	"log/slog"
)

// Handler processes one routed request and fills in the fields of resp.
// resp already carries the dispatcher's packager but no MTI and no fields;
// the handler sets the response MTI and whatever fields the transaction
// requires.
type Handler func(ctx context.Context, req, resp *Message) error

// Dispatcher routes an incoming request to a named Handler by (MTI,
// processing code), falling back to the unknown-transaction response when
// no route or handler matches.
type Dispatcher struct {
	packager *CompiledPackager
	handlers map[string]Handler
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher at construction time.
type DispatcherOption func(*Dispatcher)

// WithLogger attaches a structured logger the dispatcher uses to report
// routing decisions and handler panics.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher builds a Dispatcher with no routes registered; call Handle
// to register the 27 named routes (see routes.go) or any subset of them.
func NewDispatcher(packager *CompiledPackager, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		packager: packager,
		handlers: make(map[string]Handler),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle registers h as the handler for the named route (one of the
// Route* constants in routes.go).
func (d *Dispatcher) Handle(route string, h Handler) {
	d.handlers[route] = h
}

// Dispatch routes req to its handler and returns the response message. The
// caller owns the returned Message and must call Release on it. A handler
// panic is recovered and reported as an error; it never reaches the caller
// as a panic.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Message) (resp *Message, err error) {
	mti := req.MTI()
	processingCode, _ := req.GetField(3)

	resp = NewMessage(WithPackager(d.packager))

	route, ok := RouteFor(mti, processingCode)
	if !ok {
		d.logger.Warn("no route for transaction", "mti", mti, "processing_code", processingCode)
		resolveUnknownTransaction(mti, resp)
		return resp, nil
	}

	handler, ok := d.handlers[route]
	if !ok {
		d.logger.Warn("route has no registered handler", "route", route)
		resolveUnknownTransaction(mti, resp)
		return resp, nil
	}

	defer func() {
		if r := recover(); r != nil {
			resp.Release()
			resp = nil
			err = fmt.Errorf("handler %s panicked: %v", route, r)
			d.logger.Error("handler panic", "route", route, "panic", r)
		}
	}()

	if handlerErr := handler(ctx, req, resp); handlerErr != nil {
		resp.Release()
		return nil, fmt.Errorf("handler %s: %w", route, handlerErr)
	}

	return resp, nil
}

// resolveUnknownTransaction fills resp with the unknown-transaction
// response: the request MTI with its third digit advanced by 2 (mod 10),
// processing code zeroed, and response code 12 ("Invalid transaction") in
// field 39.
func resolveUnknownTransaction(mti string, resp *Message) {
	resp.SetMTI(unknownTransactionMTI(mti))
	resp.SetField(3, "000000")
	resp.SetField(39, "12")
}

// unknownTransactionMTI computes the response MTI for an unrouted request:
// the third digit d maps to (d+2) mod 10. The reference implementation
// computes this unclamped (str(int(d)+2)), which corrupts the MTI's length
// for d in {8,9}; clamping mod 10 reproduces its behavior for d in 0..7 and
// defines the previously-undefined d in {8,9} case instead of emitting a
// 5-character MTI.
func unknownTransactionMTI(mti string) string {
	if len(mti) != 4 {
		return mti
	}
	d := mti[2]
	if d < '0' || d > '9' {
		return mti
	}
	newDigit := (d - '0' + 2) % 10
	return mti[:2] + string(rune('0'+newDigit)) + mti[3:]
}
