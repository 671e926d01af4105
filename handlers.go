package iso8583

import "context"

// Stub handlers for the 27 named routes. Each corresponds to one
// process_* method in the reference server's message processor, which
// leaves the transaction-specific business logic unimplemented (a bare
// `pass`); these stubs carry that same shape forward; wiring real
// settlement/authorization logic into them is out of scope here.

func handleSale(ctx context.Context, req, resp *Message) error                                         { return nil }
func handleInstallmentSale(ctx context.Context, req, resp *Message) error                              { return nil }
func handlePreAuthorization(ctx context.Context, req, resp *Message) error                             { return nil }
func handlePostAuthorization(ctx context.Context, req, resp *Message) error                            { return nil }
func handleRefund(ctx context.Context, req, resp *Message) error                                       { return nil }
func handlePointInquiry(ctx context.Context, req, resp *Message) error                                 { return nil }
func handleIndependentRefund(ctx context.Context, req, resp *Message) error                            { return nil }
func handleEndOfDay(ctx context.Context, req, resp *Message) error                                     { return nil }
func handleSaleCancellation(ctx context.Context, req, resp *Message) error                             { return nil }
func handlePreAuthorizationCancellation(ctx context.Context, req, resp *Message) error                 { return nil }
func handlePostAuthorizationCancellation(ctx context.Context, req, resp *Message) error                { return nil }
func handleRefundCancellation(ctx context.Context, req, resp *Message) error                           { return nil }
func handleIndependentRefundCancellation(ctx context.Context, req, resp *Message) error                { return nil }
func handleSocialSecurityPayment(ctx context.Context, req, resp *Message) error                        { return nil }
func handleSocialSecurityPaymentCancellation(ctx context.Context, req, resp *Message) error            { return nil }
func handleSocialSecurityPaymentTechnicalCancel(ctx context.Context, req, resp *Message) error         { return nil }
func handleSocialSecurityPaymentCancelTechnicalCancel(ctx context.Context, req, resp *Message) error   { return nil }
func handleSaleTechnicalCancel(ctx context.Context, req, resp *Message) error                          { return nil }
func handlePreAuthorizationTechnicalCancel(ctx context.Context, req, resp *Message) error              { return nil }
func handlePostAuthorizationTechnicalCancel(ctx context.Context, req, resp *Message) error             { return nil }
func handleRefundTechnicalCancel(ctx context.Context, req, resp *Message) error                        { return nil }
func handleIndependentRefundTechnicalCancel(ctx context.Context, req, resp *Message) error             { return nil }
func handleSaleCancellationTechnicalCancel(ctx context.Context, req, resp *Message) error              { return nil }
func handlePreAuthorizationCancellationTechnicalCancel(ctx context.Context, req, resp *Message) error  { return nil }
func handlePostAuthorizationCancellationTechnicalCancel(ctx context.Context, req, resp *Message) error { return nil }
func handleRefundCancellationTechnicalCancel(ctx context.Context, req, resp *Message) error            { return nil }
func handleIndependentRefundCancellationTechnicalCancel(ctx context.Context, req, resp *Message) error { return nil }

// RegisterDefaultHandlers attaches the 27 stub handlers above to d, one per
// named route. Callers building a real processing backend register their
// own Handler for a route first; RegisterDefaultHandlers only fills in
// whatever is left unregistered, so it's safe to call after a partial
// custom registration.
func RegisterDefaultHandlers(d *Dispatcher) {
	defaults := map[string]Handler{
		RouteSale:                                        handleSale,
		RouteInstallmentSale:                              handleInstallmentSale,
		RoutePreAuthorization:                             handlePreAuthorization,
		RoutePostAuthorization:                            handlePostAuthorization,
		RouteRefund:                                       handleRefund,
		RoutePointInquiry:                                 handlePointInquiry,
		RouteIndependentRefund:                            handleIndependentRefund,
		RouteEndOfDay:                                     handleEndOfDay,
		RouteSaleCancellation:                             handleSaleCancellation,
		RoutePreAuthorizationCancellation:                 handlePreAuthorizationCancellation,
		RoutePostAuthorizationCancellation:                handlePostAuthorizationCancellation,
		RouteRefundCancellation:                           handleRefundCancellation,
		RouteIndependentRefundCancellation:                handleIndependentRefundCancellation,
		RouteSocialSecurityPayment:                        handleSocialSecurityPayment,
		RouteSocialSecurityPaymentCancellation:            handleSocialSecurityPaymentCancellation,
		RouteSocialSecurityPaymentTechnicalCancel:         handleSocialSecurityPaymentTechnicalCancel,
		RouteSocialSecurityPaymentCancelTechnicalCancel:   handleSocialSecurityPaymentCancelTechnicalCancel,
		RouteSaleTechnicalCancel:                          handleSaleTechnicalCancel,
		RoutePreAuthorizationTechnicalCancel:               handlePreAuthorizationTechnicalCancel,
		RoutePostAuthorizationTechnicalCancel:              handlePostAuthorizationTechnicalCancel,
		RouteRefundTechnicalCancel:                         handleRefundTechnicalCancel,
		RouteIndependentRefundTechnicalCancel:              handleIndependentRefundTechnicalCancel,
		RouteSaleCancellationTechnicalCancel:               handleSaleCancellationTechnicalCancel,
		RoutePreAuthorizationCancellationTechnicalCancel:   handlePreAuthorizationCancellationTechnicalCancel,
		RoutePostAuthorizationCancellationTechnicalCancel:  handlePostAuthorizationCancellationTechnicalCancel,
		RouteRefundCancellationTechnicalCancel:             handleRefundCancellationTechnicalCancel,
		RouteIndependentRefundCancellationTechnicalCancel:  handleIndependentRefundCancellationTechnicalCancel,
	}
	for route, handler := range defaults {
		if _, exists := d.handlers[route]; !exists {
			d.Handle(route, handler)
		}
	}
}
