package iso8583

// Named transaction routes. Reproduced from the reference server's
// transaction_routes table: each route pairs one request MTI with one
// processing code (field 3).
const (
	RouteSale                                              = "Sale"
	RouteInstallmentSale                                   = "InstallmentSale"
	RoutePreAuthorization                                  = "PreAuthorization"
	RoutePostAuthorization                                 = "PostAuthorization"
	RouteRefund                                            = "Refund"
	RoutePointInquiry                                      = "PointInquiry"
	RouteIndependentRefund                                 = "IndependentRefund"
	RouteEndOfDay                                          = "EndOfDay"
	RouteSaleCancellation                                  = "SaleCancellation"
	RoutePreAuthorizationCancellation                      = "PreAuthorizationCancellation"
	RoutePostAuthorizationCancellation                     = "PostAuthorizationCancellation"
	RouteRefundCancellation                                = "RefundCancellation"
	RouteIndependentRefundCancellation                     = "IndependentRefundCancellation"
	RouteSocialSecurityPayment                             = "SocialSecurityPayment"
	RouteSocialSecurityPaymentCancellation                 = "SocialSecurityPaymentCancellation"
	RouteSocialSecurityPaymentTechnicalCancel              = "SocialSecurityPaymentTechnicalCancel"
	RouteSocialSecurityPaymentCancelTechnicalCancel        = "SocialSecurityPaymentCancelTechnicalCancel"
	RouteSaleTechnicalCancel                               = "SaleTechnicalCancel"
	RoutePreAuthorizationTechnicalCancel                   = "PreAuthorizationTechnicalCancel"
	RoutePostAuthorizationTechnicalCancel                  = "PostAuthorizationTechnicalCancel"
	RouteRefundTechnicalCancel                             = "RefundTechnicalCancel"
	RouteIndependentRefundTechnicalCancel                  = "IndependentRefundTechnicalCancel"
	RouteSaleCancellationTechnicalCancel                   = "SaleCancellationTechnicalCancel"
	RoutePreAuthorizationCancellationTechnicalCancel       = "PreAuthorizationCancellationTechnicalCancel"
	RoutePostAuthorizationCancellationTechnicalCancel      = "PostAuthorizationCancellationTechnicalCancel"
	RouteRefundCancellationTechnicalCancel                 = "RefundCancellationTechnicalCancel"
	RouteIndependentRefundCancellationTechnicalCancel      = "IndependentRefundCancellationTechnicalCancel"
)

// routeKey identifies a transaction route by its request MTI and processing
// code (field 3).
type routeKey struct {
	mti            string
	processingCode string
}

// transactionRoutes maps (MTI, processing code) pairs onto the 27 named
// routes the reference server recognizes.
var transactionRoutes = map[routeKey]string{
	{"0200", "000000"}: RouteSale,
	{"0200", "120000"}: RouteInstallmentSale,
	{"0100", "300000"}: RoutePreAuthorization,
	{"0220", "020000"}: RoutePostAuthorization,
	{"0200", "200000"}: RouteRefund,
	{"0200", "400000"}: RoutePointInquiry,
	{"0200", "200001"}: RouteIndependentRefund,
	{"0500", "920000"}: RouteEndOfDay,
	{"0420", "000000"}: RouteSaleCancellation,
	{"0420", "300000"}: RoutePreAuthorizationCancellation,
	{"0420", "020000"}: RoutePostAuthorizationCancellation,
	{"0420", "200000"}: RouteRefundCancellation,
	{"0420", "200001"}: RouteIndependentRefundCancellation,
	{"0200", "500000"}: RouteSocialSecurityPayment,
	{"0420", "500000"}: RouteSocialSecurityPaymentCancellation,
	{"0400", "500000"}: RouteSocialSecurityPaymentTechnicalCancel,
	{"0402", "500002"}: RouteSocialSecurityPaymentCancelTechnicalCancel,
	{"0400", "000000"}: RouteSaleTechnicalCancel,
	{"0400", "300000"}: RoutePreAuthorizationTechnicalCancel,
	{"0400", "020000"}: RoutePostAuthorizationTechnicalCancel,
	{"0402", "200002"}: RouteRefundTechnicalCancel,
	{"0402", "200003"}: RouteIndependentRefundTechnicalCancel,
	{"0402", "000002"}: RouteSaleCancellationTechnicalCancel,
	{"0402", "300002"}: RoutePreAuthorizationCancellationTechnicalCancel,
	{"0402", "020002"}: RoutePostAuthorizationCancellationTechnicalCancel,
	{"0402", "200022"}: RouteRefundCancellationTechnicalCancel,
	{"0402", "200023"}: RouteIndependentRefundCancellationTechnicalCancel,
}

// RouteFor returns the named route for a (mti, processingCode) pair, and
// whether one was found. A miss means the dispatcher falls back to the
// unknown-transaction response.
func RouteFor(mti, processingCode string) (string, bool) {
	route, ok := transactionRoutes[routeKey{mti: mti, processingCode: processingCode}]
	return route, ok
}
