package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Conversion into an invoice does not require any particular prior status.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusExpired   QuoteStatus = "expired"
	QuoteStatusConverted QuoteStatus = "converted"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired, QuoteStatusConverted:
		return true
	}
	return false
}

// Quote is a priced proposal sent to a client.
//
// ConvertedToInvoiceID points at the most recent invoice created from it.
type Quote struct {
	ID                   string          `json:"id"`
	Number               string          `json:"number"`
	ClientID             string          `json:"client_id"`
	Status               QuoteStatus     `json:"status"`
	IssueDate            time.Time       `json:"issue_date"`
	ValidUntil           *time.Time      `json:"valid_until,omitempty"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	Total                decimal.Decimal `json:"total"`
	Notes                string          `json:"notes"`
	ConvertedToInvoiceID string          `json:"converted_to_invoice_id,omitempty"`
	Items                []LineItem      `json:"items"`
	Submitted            Submitted       `json:"-"`
	CreatedBy            string          `json:"created_by"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (q Quote) Totals() Totals {
	return Totals{Subtotal: q.Subtotal, TaxAmount: q.TaxAmount, Total: q.Total}
}

func (q *Quote) SetTotals(t Totals) {
	q.Subtotal, q.TaxAmount, q.Total = t.Subtotal, t.TaxAmount, t.Total
}

type QuoteFilter struct {
	ClientID string
	Status   QuoteStatus
}
