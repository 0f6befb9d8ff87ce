package request

import (
	"encoding/json"
	"testing"
	"time"

	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestQuoteRequest_ToEntity(t *testing.T) {
	body := `{"quote":{"client_id":" c-1 ","issue_date":"2025-03-01","valid_until":"2025-03-31","total":"110.00"},
		"items":[{"description":"Consulting","quantity":"2","unit_price":"50","tax_rate":"10"}]}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	q, problems := r.ToEntity()
	if problems != nil {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if q.ClientID != "c-1" {
		t.Fatalf("expected trimmed client id, got %q", q.ClientID)
	}
	if !q.IssueDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected issue date %v", q.IssueDate)
	}
	if q.ValidUntil == nil || q.ValidUntil.Day() != 31 {
		t.Fatalf("unexpected valid until %v", q.ValidUntil)
	}
	if len(q.Items) != 1 || !q.Items[0].Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("unexpected items %+v", q.Items)
	}
	if q.Submitted.Total == nil || !q.Submitted.Total.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("expected submitted total to be carried, got %v", q.Submitted.Total)
	}
	if q.Submitted.Subtotal != nil || len(q.Submitted.Amounts) != 1 || q.Submitted.Amounts[0] != nil {
		t.Fatalf("omitted figures must stay nil: %+v", q.Submitted)
	}
}

func TestQuoteRequest_ExplicitZeroTotal(t *testing.T) {
	body := `{"quote":{"client_id":"c-1","total":"0.00"},"items":[{"description":"Consulting","quantity":"1","unit_price":"10","amount":"0"}]}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	q, problems := r.ToEntity()
	if problems != nil {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if q.Submitted.Total == nil || !q.Submitted.Total.IsZero() {
		t.Fatalf("expected an explicit zero total, got %v", q.Submitted.Total)
	}
	if q.Submitted.Amounts[0] == nil || !q.Submitted.Amounts[0].IsZero() {
		t.Fatalf("expected an explicit zero amount, got %v", q.Submitted.Amounts[0])
	}
}

func TestQuoteRequest_ToEntityProblems(t *testing.T) {
	r := QuoteRequest{
		Quote: QuoteFields{IssueDate: "03/01/2025"},
		Items: []LineItemRequest{{Description: "  "}},
	}

	_, problems := r.ToEntity()
	if problems["quote.issue_date"] == "" {
		t.Fatalf("expected issue_date problem, got %v", problems)
	}
	if problems["items[0].description"] != "required" {
		t.Fatalf("expected item description problem, got %v", problems)
	}
}

func TestInvoiceRequest_ToEntity(t *testing.T) {
	r := InvoiceRequest{
		Invoice: InvoiceFields{ClientID: "c-1", DueDate: "2025-04-01T10:00:00Z"},
		Items:   []LineItemRequest{{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)}},
	}

	inv, problems := r.ToEntity()
	if problems != nil {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if !inv.IssueDate.IsZero() {
		t.Fatalf("issue date should stay empty for the use case to fill, got %v", inv.IssueDate)
	}
	if inv.DueDate.Hour() != 10 {
		t.Fatalf("unexpected due date %v", inv.DueDate)
	}
	if inv.Status != "" {
		t.Fatalf("expected empty status, got %q", inv.Status)
	}
}

func TestJournalEntryRequest_ToEntity(t *testing.T) {
	r := JournalEntryRequest{
		Date:        "2025-01-15",
		Description: "Opening balance",
		Lines: []JournalLineRequest{
			{AccountID: "a-1", Debit: decimal.NewFromInt(100)},
			{AccountID: "", Credit: decimal.NewFromInt(100)},
		},
	}

	e, problems := r.ToEntity()
	if problems["lines[1].account_id"] != "required" {
		t.Fatalf("expected missing account problem, got %v", problems)
	}
	if len(e.Lines) != 2 || e.Lines[1].Position != 1 {
		t.Fatalf("unexpected lines %+v", e.Lines)
	}
}

func TestAccountRequest_DefaultsActive(t *testing.T) {
	a, problems := AccountRequest{Code: "1000", Name: "Cash", Type: "asset"}.ToEntity()
	if problems != nil {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if !a.IsActive {
		t.Fatalf("expected account to default to active")
	}

	inactive := false
	a, _ = AccountRequest{Code: "1000", Name: "Cash", Type: "asset", IsActive: &inactive}.ToEntity()
	if a.IsActive {
		t.Fatalf("expected explicit is_active=false to be kept")
	}
}

func TestActiveRequest_Resolve(t *testing.T) {
	if _, problems := (ActiveRequest{}).Resolve(); problems["is_active"] == "" {
		t.Fatalf("expected is_active to be required")
	}
	v := true
	if got, problems := (ActiveRequest{IsActive: &v}).Resolve(); !got || problems != nil {
		t.Fatalf("unexpected resolve result %v %v", got, problems)
	}
}

func TestSettingUpdateRequest_ToPatch(t *testing.T) {
	if _, problems := (SettingUpdateRequest{}).ToPatch(); problems == nil {
		t.Fatalf("expected empty patch to be rejected")
	}
	v := "EUR"
	patch, problems := SettingUpdateRequest{Value: &v}.ToPatch()
	if problems != nil || patch.Value == nil || *patch.Value != "EUR" {
		t.Fatalf("unexpected patch %+v %v", patch, problems)
	}
}

func TestIdentityWebhookRequest_ToEvent(t *testing.T) {
	body := `{"type":"user.created","data":{"id":"user_1","first_name":"Ana","last_name":"Ruiz",
		"email_addresses":[{"email_address":"Ana@Example.com"}],"public_metadata":{"role":"accountant"}}}`
	var r IdentityWebhookRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ev := r.ToEvent()
	if ev.Type != entities.IdentityEventUserCreated {
		t.Fatalf("unexpected type %q", ev.Type)
	}
	if ev.Identity.ExternalID != "user_1" || ev.Identity.Email != "ana@example.com" || ev.Identity.Role != entities.RoleAccountant {
		t.Fatalf("unexpected identity %+v", ev.Identity)
	}
}

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"ClientID":     "client_id",
		"Quote":        "quote",
		"SupportEmail": "support_email",
		"client_id":    "client_id",
	}
	for in, want := range cases {
		if got := snake(in); got != want {
			t.Fatalf("snake(%q) = %q, want %q", in, got, want)
		}
	}
}
