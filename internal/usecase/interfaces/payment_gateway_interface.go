package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The provider response payload is returned as-is so it can be persisted with
// the invoice payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
