package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{{Quantity: d("2"), UnitPrice: d("50"), TaxRate: d("10")}}

	got := ComputeTotals(items)
	if got.Subtotal.StringFixed(2) != "100.00" || got.TaxAmount.StringFixed(2) != "10.00" || got.Total.StringFixed(2) != "110.00" {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestComputeTotals_SubtotalIsSumOfLines(t *testing.T) {
	items := []LineItem{
		{Quantity: d("3"), UnitPrice: d("19.99"), TaxRate: d("21")},
		{Quantity: d("0.5"), UnitPrice: d("80"), TaxRate: d("0")},
	}

	got := ComputeTotals(items)
	if got.Subtotal.StringFixed(2) != "99.97" {
		t.Fatalf("expected 99.97, got %s", got.Subtotal.StringFixed(2))
	}
	if got.TaxAmount.StringFixed(2) != "12.59" {
		t.Fatalf("expected 12.59, got %s", got.TaxAmount.StringFixed(2))
	}
	if !got.Total.Equal(got.Subtotal.Add(got.TaxAmount)) {
		t.Fatalf("total must equal subtotal + tax")
	}
}

func TestReconcile(t *testing.T) {
	t.Run("fills omitted values", func(t *testing.T) {
		items, totals, mismatches := Reconcile([]LineItem{{Quantity: d("2"), UnitPrice: d("50"), TaxRate: d("10")}}, Submitted{})
		if mismatches != nil {
			t.Fatalf("unexpected mismatches: %v", mismatches)
		}
		if items[0].Amount.StringFixed(2) != "100.00" || totals.Total.StringFixed(2) != "110.00" {
			t.Fatalf("unexpected result: %+v %+v", items, totals)
		}
	})

	t.Run("accepts rounding differences", func(t *testing.T) {
		_, _, mismatches := Reconcile(
			[]LineItem{{Quantity: d("2"), UnitPrice: d("50"), TaxRate: d("10")}},
			Submitted{Subtotal: ptr("100"), TaxAmount: ptr("10"), Total: ptr("109.99"), Amounts: []*decimal.Decimal{ptr("100.01")}},
		)
		if mismatches != nil {
			t.Fatalf("unexpected mismatches: %v", mismatches)
		}
	})

	t.Run("rejects mismatching totals", func(t *testing.T) {
		_, _, mismatches := Reconcile(
			[]LineItem{{Quantity: d("2"), UnitPrice: d("50"), TaxRate: d("10")}},
			Submitted{Total: ptr("200"), Amounts: []*decimal.Decimal{ptr("90")}},
		)
		if mismatches["items[0].amount"] == "" || mismatches["total"] != "expected 110.00" {
			t.Fatalf("unexpected mismatches: %v", mismatches)
		}
	})

	t.Run("explicit zeros are compared, not filled in", func(t *testing.T) {
		_, _, mismatches := Reconcile(
			[]LineItem{{Quantity: d("2"), UnitPrice: d("50"), TaxRate: d("10")}},
			Submitted{Subtotal: ptr("0"), Total: ptr("0.00"), Amounts: []*decimal.Decimal{ptr("0")}},
		)
		if mismatches["total"] != "expected 110.00" || mismatches["subtotal"] != "expected 100.00" || mismatches["items[0].amount"] != "expected 100.00" {
			t.Fatalf("unexpected mismatches: %v", mismatches)
		}
		if _, ok := mismatches["tax_amount"]; ok {
			t.Fatalf("omitted tax amount was checked: %v", mismatches)
		}
	})

	t.Run("zero totals match an empty document", func(t *testing.T) {
		_, totals, mismatches := Reconcile(nil, Submitted{Total: ptr("0")})
		if mismatches != nil || !totals.Total.IsZero() {
			t.Fatalf("unexpected result: %v %+v", mismatches, totals)
		}
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		_, _, mismatches := Reconcile([]LineItem{{Quantity: d("-1"), UnitPrice: d("5")}}, Submitted{})
		if mismatches["items[0].quantity"] == "" {
			t.Fatalf("expected quantity mismatch, got %v", mismatches)
		}
	})
}

func ptr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}
