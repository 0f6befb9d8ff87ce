package request

import (
	"fmt"
	"strings"

	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one row of a quote or an invoice. Amount is optional; when
// sent it must agree with quantity x unit price.
type LineItemRequest struct {
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
	Amount      *decimal.Decimal `json:"amount"`
}

// TotalsRequest carries the document totals computed by the client, if any.
// Pointers keep an omitted total apart from an explicit zero.
type TotalsRequest struct {
	Subtotal  *decimal.Decimal `json:"subtotal"`
	TaxAmount *decimal.Decimal `json:"tax_amount"`
	Total     *decimal.Decimal `json:"total"`
}

func submitted(t TotalsRequest, items []LineItemRequest) entities.Submitted {
	amounts := make([]*decimal.Decimal, len(items))
	for i, it := range items {
		amounts[i] = it.Amount
	}
	return entities.Submitted{Subtotal: t.Subtotal, TaxAmount: t.TaxAmount, Total: t.Total, Amounts: amounts}
}

func toLineItems(items []LineItemRequest, problems map[string]string) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			problems[fmt.Sprintf("items[%d].description", i)] = "required"
		}
		out = append(out, entities.LineItem{
			Position:    i,
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
		})
	}
	return out
}

type QuoteFields struct {
	Number     string `json:"number" validate:"maxLen:50"`
	ClientID   string `json:"client_id"`
	Status     string `json:"status" validate:"in:draft,sent,accepted,rejected,expired,converted"`
	IssueDate  string `json:"issue_date"`
	ValidUntil string `json:"valid_until"`
	Notes      string `json:"notes" validate:"maxLen:4000"`
	TotalsRequest
}

// QuoteRequest is the {quote, items} body of quote create and update.
type QuoteRequest struct {
	Quote QuoteFields       `json:"quote"`
	Items []LineItemRequest `json:"items"`
}

// ToEntity maps the request onto a Quote. Item amounts and totals are checked
// later against the server computation.
func (r QuoteRequest) ToEntity() (entities.Quote, map[string]string) {
	problems := merge(nil, "quote", Validate(&r.Quote))
	if problems == nil {
		problems = map[string]string{}
	}

	q := entities.Quote{
		Number:    strings.TrimSpace(r.Quote.Number),
		ClientID:  strings.TrimSpace(r.Quote.ClientID),
		Status:    entities.QuoteStatus(strings.TrimSpace(r.Quote.Status)),
		IssueDate: parseDate("quote.issue_date", r.Quote.IssueDate, problems),
		Notes:     r.Quote.Notes,
		Items:     toLineItems(r.Items, problems),
	}
	q.ValidUntil = parseOptionalDate("quote.valid_until", r.Quote.ValidUntil, problems)
	q.Submitted = submitted(r.Quote.TotalsRequest, r.Items)
	return q, orNil(problems)
}

type InvoiceFields struct {
	Number    string `json:"number" validate:"maxLen:50"`
	ClientID  string `json:"client_id"`
	QuoteID   string `json:"quote_id"`
	Status    string `json:"status" validate:"in:draft,sent,paid,overdue,cancelled"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
	Notes     string `json:"notes" validate:"maxLen:4000"`
	TotalsRequest
}

// InvoiceRequest is the {invoice, items} body of invoice create and update.
type InvoiceRequest struct {
	Invoice InvoiceFields     `json:"invoice"`
	Items   []LineItemRequest `json:"items"`
}

func (r InvoiceRequest) ToEntity() (entities.Invoice, map[string]string) {
	problems := merge(nil, "invoice", Validate(&r.Invoice))
	if problems == nil {
		problems = map[string]string{}
	}

	inv := entities.Invoice{
		Number:    strings.TrimSpace(r.Invoice.Number),
		ClientID:  strings.TrimSpace(r.Invoice.ClientID),
		QuoteID:   strings.TrimSpace(r.Invoice.QuoteID),
		Status:    entities.InvoiceStatus(strings.TrimSpace(r.Invoice.Status)),
		IssueDate: parseDate("invoice.issue_date", r.Invoice.IssueDate, problems),
		DueDate:   parseDate("invoice.due_date", r.Invoice.DueDate, problems),
		Notes:     r.Invoice.Notes,
		Items:     toLineItems(r.Items, problems),
	}
	inv.Submitted = submitted(r.Invoice.TotalsRequest, r.Items)
	return inv, orNil(problems)
}

// StatusRequest is the body of the status PATCH routes.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
