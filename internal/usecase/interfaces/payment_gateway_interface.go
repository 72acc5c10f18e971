package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Only Online-method payments go through a gateway; all other methods are
// recorded directly against the estimate.
type IPaymentGateway interface {
	ChargeOnline(ctx context.Context, estimateID string, amount float64, payerEmail, description string) (providerPaymentID string, providerStatus string, err error)
}
