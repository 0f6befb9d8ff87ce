package response

import (
	"encoding/json"
	"testing"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:        "q-1",
		Number:    "QT-123456",
		ClientID:  "c-1",
		Status:    entities.QuoteStatusSent,
		IssueDate: now,
		Subtotal:  decimal.NewFromInt(100),
		TaxAmount: decimal.NewFromInt(10),
		Total:     decimal.NewFromInt(110),
		Items: []entities.LineItem{
			{ID: "i-1", Description: "Consulting", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), TaxRate: decimal.NewFromInt(10), Amount: decimal.NewFromInt(100)},
		},
	}

	res := FromQuote(q)
	if res.Total != "110.00" || res.Subtotal != "100.00" || res.TaxAmount != "10.00" {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.Status != "sent" || len(res.Items) != 1 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Items[0].Amount != "100.00" || res.Items[0].UnitPrice != "50.00" || res.Items[0].Quantity != "2" {
		t.Fatalf("unexpected item: %+v", res.Items[0])
	}
}

func TestFromInvoice_EmptyItemsSerializeAsArray(t *testing.T) {
	res := FromInvoice(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft})
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if items, ok := body["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %s", b)
	}
	if body["total"] != "0.00" {
		t.Fatalf("expected zero total as 0.00, got %v", body["total"])
	}
}

func TestFromInvoicePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.InvoicePayment{
		ID:                "pay-1",
		InvoiceID:         "inv-1",
		ProviderPaymentID: "123",
		Status:            entities.PaymentStatusApproved,
		Amount:            decimal.RequireFromString("121"),
		PaidAt:            &now,
		ProviderPayload:   json.RawMessage(`{"id":123,"status":"approved"}`),
	}

	res := FromInvoicePayment(p)
	if res.PaymentID != "pay-1" || res.InvoiceID != "inv-1" || res.Status != "approved" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != "121.00" {
		t.Fatalf("unexpected amount: %s", res.Amount)
	}
	if res.ProviderPayloadRaw != `{"id":123,"status":"approved"}` {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}

	p.ProviderPayload = json.RawMessage(`[1,2]`)
	if res := FromInvoicePayment(p); res.ProviderPayload != nil {
		t.Fatalf("expected non-object payload to stay raw only, got %+v", res.ProviderPayload)
	}
}

func TestFromJournalEntry(t *testing.T) {
	e := entities.JournalEntry{
		ID:     "je-1",
		Number: "JE-000001",
		Lines: []entities.JournalLine{
			{AccountID: "a-1", Debit: decimal.NewFromInt(110)},
			{AccountID: "a-2", Credit: decimal.NewFromInt(100)},
			{AccountID: "a-3", Credit: decimal.NewFromInt(10)},
		},
	}

	res := FromJournalEntry(e)
	if res.TotalDebit != "110.00" || res.TotalCredit != "110.00" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Lines[0].Credit != "0.00" || res.Lines[1].Debit != "0.00" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
}

func TestFromInvitationView_PrefersCompanyName(t *testing.T) {
	v := usecase.InvitationView{
		Invitation: entities.ClientInvitation{Email: "a@b.com"},
		Client:     entities.Client{ID: "c-1", Name: "Ana", CompanyName: "Ana SL"},
	}
	if res := FromInvitationView(v); res.ClientName != "Ana SL" || !res.Valid {
		t.Fatalf("unexpected view: %+v", res)
	}

	v.Client.CompanyName = ""
	if res := FromInvitationView(v); res.ClientName != "Ana" {
		t.Fatalf("expected fallback to client name, got %+v", res)
	}
}
