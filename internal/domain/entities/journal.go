package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a double-entry posting. Its lines must balance.
type JournalEntry struct {
	ID          string        `json:"id"`
	Number      string        `json:"number"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Reference   string        `json:"reference"`
	SourceType  string        `json:"source_type,omitempty"`
	SourceID    string        `json:"source_id,omitempty"`
	Lines       []JournalLine `json:"lines"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type JournalLine struct {
	ID          string          `json:"id"`
	EntryID     string          `json:"entry_id"`
	Position    int             `json:"position"`
	AccountID   string          `json:"account_id"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

const (
	JournalSourceInvoice = "invoice"
	JournalSourcePayment = "invoice_payment"
)

type JournalFilter struct {
	From *time.Time
	To   *time.Time
}

// Totals returns the debit and credit sums.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Validate checks the structural rules of an entry: two or more lines, each
// with exactly one positive side in whole cents, and debits equal to credits.
// The balance is compared exactly, so it holds for the stored 2 dp amounts.
func (e JournalEntry) Validate() map[string]string {
	problems := map[string]string{}

	if len(e.Lines) < 2 {
		problems["lines"] = "at least two lines are required"
	}
	for i, l := range e.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		if l.AccountID == "" {
			problems[field+".account_id"] = "required"
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			problems[field] = "amounts must not be negative"
			continue
		}
		if !l.Debit.Equal(l.Debit.Round(2)) || !l.Credit.Equal(l.Credit.Round(2)) {
			problems[field] = "amounts must have at most 2 decimal places"
			continue
		}
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			problems[field] = "line must have exactly one of debit or credit"
		}
	}

	debit, credit := e.Totals()
	if !debit.Equal(credit) {
		problems["balance"] = fmt.Sprintf("debits (%s) != credits (%s)", debit.StringFixed(2), credit.StringFixed(2))
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// AccountIDs returns the distinct accounts referenced by the lines.
func (e JournalEntry) AccountIDs() []string {
	seen := map[string]bool{}
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if l.AccountID == "" || seen[l.AccountID] {
			continue
		}
		seen[l.AccountID] = true
		ids = append(ids, l.AccountID)
	}
	return ids
}
