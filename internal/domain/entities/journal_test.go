package entities

import "testing"

func TestJournalEntry_Validate(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("110")},
			{AccountID: "b", Credit: d("100")},
			{AccountID: "c", Credit: d("10")},
		}}
		if problems := e.Validate(); problems != nil {
			t.Fatalf("unexpected problems: %v", problems)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("110")},
			{AccountID: "b", Credit: d("100")},
		}}
		problems := e.Validate()
		if problems["balance"] != "debits (110.00) != credits (100.00)" {
			t.Fatalf("unexpected problems: %v", problems)
		}
	})

	t.Run("line with both sides", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("10"), Credit: d("10")},
			{AccountID: "b"},
		}}
		problems := e.Validate()
		if problems["lines[0]"] == "" || problems["lines[1]"] == "" {
			t.Fatalf("unexpected problems: %v", problems)
		}
	})

	t.Run("sub-cent amounts", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("0.005")},
			{AccountID: "b", Debit: d("0.005")},
			{AccountID: "c", Credit: d("0.01")},
		}}
		problems := e.Validate()
		if problems["lines[0]"] != "amounts must have at most 2 decimal places" || problems["lines[1]"] == "" {
			t.Fatalf("unexpected problems: %v", problems)
		}
		if problems["lines[2]"] != "" {
			t.Fatalf("whole-cent line flagged: %v", problems)
		}
	})

	t.Run("trailing zeros are whole cents", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("10.500")},
			{AccountID: "b", Credit: d("10.50")},
		}}
		if problems := e.Validate(); problems != nil {
			t.Fatalf("unexpected problems: %v", problems)
		}
	})

	t.Run("balance is exact at two decimals", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{
			{AccountID: "a", Debit: d("10.01")},
			{AccountID: "b", Credit: d("10")},
		}}
		if e.Validate()["balance"] != "debits (10.01) != credits (10.00)" {
			t.Fatalf("expected balance problem, got %v", e.Validate())
		}
	})

	t.Run("single line", func(t *testing.T) {
		e := JournalEntry{Lines: []JournalLine{{AccountID: "a", Debit: d("1")}}}
		if e.Validate()["lines"] == "" {
			t.Fatalf("expected lines problem")
		}
	})
}

func TestBuildAccountTree(t *testing.T) {
	roots := BuildAccountTree([]Account{
		{ID: "1", Code: "1000"},
		{ID: "2", Code: "1100", ParentID: "1"},
		{ID: "3", Code: "9999", ParentID: "missing"},
	})
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "2" {
		t.Fatalf("unexpected tree: %+v", roots[0])
	}
}
