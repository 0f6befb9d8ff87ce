package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id,omitempty"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Date          time.Time       `json:"date"`
	Vendor        string          `json:"vendor"`
	PaymentMethod string          `json:"payment_method"`
	AccountID     string          `json:"account_id,omitempty"`
	ReceiptFileID string          `json:"receipt_file_id,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ExpenseFilter struct {
	Category string
	From     *time.Time
	To       *time.Time
}
