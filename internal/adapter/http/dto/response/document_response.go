package response

import (
	"encoding/json"
	"time"

	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type LineItemResponse struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TaxRate     string `json:"tax_rate"`
	Amount      string `json:"amount"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:          it.ID,
			Position:    it.Position,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money(it.UnitPrice),
			TaxRate:     it.TaxRate.String(),
			Amount:      money(it.Amount),
		})
	}
	return out
}

type QuoteResponse struct {
	ID                   string             `json:"id"`
	Number               string             `json:"number"`
	ClientID             string             `json:"client_id"`
	Status               string             `json:"status"`
	IssueDate            time.Time          `json:"issue_date"`
	ValidUntil           *time.Time         `json:"valid_until,omitempty"`
	Subtotal             string             `json:"subtotal"`
	TaxAmount            string             `json:"tax_amount"`
	Total                string             `json:"total"`
	Notes                string             `json:"notes"`
	ConvertedToInvoiceID string             `json:"converted_to_invoice_id,omitempty"`
	Items                []LineItemResponse `json:"items"`
	CreatedBy            string             `json:"created_by,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                   q.ID,
		Number:               q.Number,
		ClientID:             q.ClientID,
		Status:               string(q.Status),
		IssueDate:            q.IssueDate,
		ValidUntil:           q.ValidUntil,
		Subtotal:             money(q.Subtotal),
		TaxAmount:            money(q.TaxAmount),
		Total:                money(q.Total),
		Notes:                q.Notes,
		ConvertedToInvoiceID: q.ConvertedToInvoiceID,
		Items:                fromLineItems(q.Items),
		CreatedBy:            q.CreatedBy,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type InvoiceResponse struct {
	ID        string             `json:"id"`
	Number    string             `json:"number"`
	ClientID  string             `json:"client_id"`
	QuoteID   string             `json:"quote_id,omitempty"`
	Status    string             `json:"status"`
	IssueDate time.Time          `json:"issue_date"`
	DueDate   time.Time          `json:"due_date"`
	Subtotal  string             `json:"subtotal"`
	TaxAmount string             `json:"tax_amount"`
	Total     string             `json:"total"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
	Notes     string             `json:"notes"`
	Items     []LineItemResponse `json:"items"`
	CreatedBy string             `json:"created_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        i.ID,
		Number:    i.Number,
		ClientID:  i.ClientID,
		QuoteID:   i.QuoteID,
		Status:    string(i.Status),
		IssueDate: i.IssueDate,
		DueDate:   i.DueDate,
		Subtotal:  money(i.Subtotal),
		TaxAmount: money(i.TaxAmount),
		Total:     money(i.Total),
		PaidAt:    i.PaidAt,
		Notes:     i.Notes,
		Items:     fromLineItems(i.Items),
		CreatedBy: i.CreatedBy,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func FromInvoices(is []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(is))
	for _, i := range is {
		out = append(out, FromInvoice(i))
	}
	return out
}

type InvoicePaymentResponse struct {
	PaymentID         string     `json:"payment_id"`
	InvoiceID         string     `json:"invoice_id"`
	ProviderPaymentID string     `json:"provider_payment_id"`
	Status            string     `json:"status"`
	Amount            string     `json:"amount"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

// FromInvoicePayment exposes the provider payload both raw and decoded; the
// decoded form is omitted when the payload is not a JSON object.
func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	res := InvoicePaymentResponse{
		PaymentID:          p.ID,
		InvoiceID:          p.InvoiceID,
		ProviderPaymentID:  p.ProviderPaymentID,
		Status:             string(p.Status),
		Amount:             money(p.Amount),
		PaidAt:             p.PaidAt,
		CreatedAt:          p.CreatedAt,
		ProviderPayloadRaw: string(p.ProviderPayload),
	}
	if len(p.ProviderPayload) > 0 {
		var decoded map[string]any
		if err := json.Unmarshal(p.ProviderPayload, &decoded); err == nil {
			res.ProviderPayload = decoded
		}
	}
	return res
}

func FromInvoicePayments(ps []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
