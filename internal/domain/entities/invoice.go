package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// DefaultPaymentTerm is used for the due date when none is given.
const DefaultPaymentTerm = 30 * 24 * time.Hour

// Invoice is a billable document. QuoteID is set when it was converted from a quote.
type Invoice struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	ClientID  string          `json:"client_id"`
	QuoteID   string          `json:"quote_id,omitempty"`
	Status    InvoiceStatus   `json:"status"`
	IssueDate time.Time       `json:"issue_date"`
	DueDate   time.Time       `json:"due_date"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	Notes     string          `json:"notes"`
	Items     []LineItem      `json:"items"`
	Submitted Submitted       `json:"-"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i Invoice) Totals() Totals {
	return Totals{Subtotal: i.Subtotal, TaxAmount: i.TaxAmount, Total: i.Total}
}

func (i *Invoice) SetTotals(t Totals) {
	i.Subtotal, i.TaxAmount, i.Total = t.Subtotal, t.TaxAmount, t.Total
}

type InvoiceFilter struct {
	ClientID string
	Status   InvoiceStatus
}
