package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalsTolerance is the largest accepted gap between a submitted amount and
// the server-side computation.
var TotalsTolerance = decimal.New(1, -2)

// LineItem is an ordered row of a quote or an invoice.
type LineItem struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"document_id"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Totals are the document-level money fields.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Submitted holds the figures a client sent along with a document. A nil
// field was omitted and gets filled in; a present one, zero included, is
// checked against the computation. Amounts is indexed like the items.
type Submitted struct {
	Subtotal  *decimal.Decimal
	TaxAmount *decimal.Decimal
	Total     *decimal.Decimal
	Amounts   []*decimal.Decimal
}

// Compute returns the line amount (qty x price) and the line tax, both at 2 dp.
func (i LineItem) Compute() (amount, tax decimal.Decimal) {
	amount = i.Quantity.Mul(i.UnitPrice).Round(2)
	tax = amount.Mul(i.TaxRate).Div(hundred).Round(2)
	return amount, tax
}

// ComputeTotals sums line amounts and taxes.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, it := range items {
		amount, lineTax := it.Compute()
		subtotal = subtotal.Add(amount)
		tax = tax.Add(lineTax)
	}
	return Totals{Subtotal: subtotal, TaxAmount: tax, Total: subtotal.Add(tax)}
}

// Reconcile recomputes every item amount and the document totals. Submitted
// values must match the computation within TotalsTolerance or they are
// reported in the returned map.
func Reconcile(items []LineItem, submitted Submitted) ([]LineItem, Totals, map[string]string) {
	mismatches := map[string]string{}
	priced := make([]LineItem, len(items))

	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)
		if it.Quantity.IsNegative() {
			mismatches[field+".quantity"] = "must not be negative"
		}
		if it.UnitPrice.IsNegative() {
			mismatches[field+".unit_price"] = "must not be negative"
		}
		if it.TaxRate.IsNegative() || it.TaxRate.GreaterThan(hundred) {
			mismatches[field+".tax_rate"] = "must be between 0 and 100"
		}

		amount, _ := it.Compute()
		if i < len(submitted.Amounts) && submitted.Amounts[i] != nil && !withinTolerance(*submitted.Amounts[i], amount) {
			mismatches[field+".amount"] = fmt.Sprintf("expected %s", amount.StringFixed(2))
		}
		it.Amount = amount
		it.Position = i
		priced[i] = it
	}

	computed := ComputeTotals(priced)
	check := func(field string, got *decimal.Decimal, want decimal.Decimal) {
		if got != nil && !withinTolerance(*got, want) {
			mismatches[field] = fmt.Sprintf("expected %s", want.StringFixed(2))
		}
	}
	check("subtotal", submitted.Subtotal, computed.Subtotal)
	check("tax_amount", submitted.TaxAmount, computed.TaxAmount)
	check("total", submitted.Total, computed.Total)

	if len(mismatches) == 0 {
		mismatches = nil
	}
	return priced, computed, mismatches
}

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(TotalsTolerance)
}
