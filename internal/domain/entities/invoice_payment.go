package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps Mercado Pago statuses onto ours.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// InvoicePayment records one provider payment attempt for an invoice.
//
// ProviderPayload keeps the provider response body for traceability.
type InvoicePayment struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
