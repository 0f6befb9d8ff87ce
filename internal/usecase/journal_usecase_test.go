package usecase

import (
	"context"
	"errors"
	"testing"

	"efectivio/internal/domain/entities"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testLedgerCodes = LedgerCodes{Cash: "1000", Receivable: "1200", Revenue: "4000", TaxPayable: "2100"}

func TestJournalUseCase_Create(t *testing.T) {
	actor := entities.Actor{UserID: "user-1"}

	t.Run("unbalanced entry is rejected before any lookup", func(t *testing.T) {
		uc := NewJournalUseCase(nil, nil, nil, testLedgerCodes)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Description: "bad",
			Lines: []entities.JournalLine{
				{AccountID: "a", Debit: dec("100")},
				{AccountID: "b", Credit: dec("90")},
			},
		})
		if !errors.Is(err, ErrUnbalancedEntry) {
			t.Fatalf("expected ErrUnbalancedEntry, got %v", err)
		}
	})

	t.Run("single line is invalid input", func(t *testing.T) {
		uc := NewJournalUseCase(nil, nil, nil, testLedgerCodes)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Lines: []entities.JournalLine{{AccountID: "a", Debit: dec("100")}},
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unbalanced single line reports the structural problem", func(t *testing.T) {
		uc := NewJournalUseCase(nil, nil, nil, testLedgerCodes)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Lines: []entities.JournalLine{{AccountID: "a", Debit: dec("100")}},
		})
		if errors.Is(err, ErrUnbalancedEntry) {
			t.Fatalf("expected ErrInvalidInput only, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields["lines"] == "" || verr.Fields["balance"] == "" {
			t.Fatalf("expected lines and balance fields, got %v", err)
		}
	})

	t.Run("sub-cent lines are rejected before saving", func(t *testing.T) {
		uc := NewJournalUseCase(nil, nil, nil, testLedgerCodes)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Lines: []entities.JournalLine{
				{AccountID: "a", Debit: dec("0.005")},
				{AccountID: "b", Debit: dec("0.005")},
				{AccountID: "c", Credit: dec("0.01")},
			},
		})
		var verr *ValidationError
		if !errors.Is(err, ErrInvalidInput) || !errors.As(err, &verr) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if verr.Fields["lines[0]"] == "" || verr.Fields["lines[1]"] == "" {
			t.Fatalf("expected per-line precision problems, got %v", verr.Fields)
		}
	})

	t.Run("amount that rounds to zero is rejected", func(t *testing.T) {
		uc := NewJournalUseCase(nil, nil, nil, testLedgerCodes)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Lines: []entities.JournalLine{
				{AccountID: "a", Debit: dec("0.004")},
				{AccountID: "b", Credit: dec("0.004")},
			},
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewJournalUseCase(nil, accounts, nil, testLedgerCodes)

		accounts.EXPECT().MissingActive(gomock.Any(), []string{"a", "b"}).Return([]string{"b"}, nil)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Lines: []entities.JournalLine{
				{AccountID: "a", Debit: dec("100")},
				{AccountID: "b", Credit: dec("100")},
			},
		})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields["account:b"] == "" {
			t.Fatalf("expected account validation error, got %v", err)
		}
	})

	t.Run("balanced entry gets number and line ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJournalRepository(ctrl)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewJournalUseCase(repo, accounts, nil, testLedgerCodes)

		accounts.EXPECT().MissingActive(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return("JE-000007", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.JournalEntry) (entities.JournalEntry, error) {
				if e.Number != "JE-000007" || e.ID == "" || e.CreatedBy != "user-1" || e.Date.IsZero() {
					t.Fatalf("unexpected entry: %+v", e)
				}
				for i, l := range e.Lines {
					if l.ID == "" || l.EntryID != e.ID || l.Position != i {
						t.Fatalf("unexpected line %d: %+v", i, l)
					}
				}
				return e, nil
			},
		)

		_, err := uc.Create(context.Background(), actor, entities.JournalEntry{
			Description: " rent ",
			Lines: []entities.JournalLine{
				{AccountID: "a", Debit: dec("100")},
				{AccountID: "b", Credit: dec("100")},
			},
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestJournalUseCase_PostInvoice(t *testing.T) {
	actor := entities.Actor{UserID: "user-1"}
	chart := map[string]entities.Account{
		"1200": {ID: "acc-ar", Code: "1200", IsActive: true},
		"4000": {ID: "acc-rev", Code: "4000", IsActive: true},
		"2100": {ID: "acc-tax", Code: "2100", IsActive: true},
	}
	byCode := func(_ context.Context, code string) (entities.Account, error) {
		return chart[code], nil
	}

	t.Run("debits receivables and credits revenue and tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJournalRepository(ctrl)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJournalUseCase(repo, accounts, invoices, testLedgerCodes)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Number: "INV-000123", IssueDate: fixedNow,
			Subtotal: dec("100"), TaxAmount: dec("21"), Total: dec("121"),
		}, nil)
		accounts.EXPECT().GetByCode(gomock.Any(), gomock.Any()).DoAndReturn(byCode).Times(3)
		accounts.EXPECT().MissingActive(gomock.Any(), []string{"acc-ar", "acc-rev", "acc-tax"}).Return(nil, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return("JE-000001", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.JournalEntry) (entities.JournalEntry, error) {
				if e.SourceType != entities.JournalSourceInvoice || e.SourceID != "inv-1" || e.Reference != "INV-000123" {
					t.Fatalf("unexpected source: %+v", e)
				}
				if len(e.Lines) != 3 {
					t.Fatalf("expected 3 lines, got %d", len(e.Lines))
				}
				if !e.Lines[0].Debit.Equal(dec("121")) || !e.Lines[1].Credit.Equal(dec("100")) || !e.Lines[2].Credit.Equal(dec("21")) {
					t.Fatalf("unexpected amounts: %+v", e.Lines)
				}
				return e, nil
			},
		)

		if _, err := uc.PostInvoice(context.Background(), actor, "inv-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("zero tax omits the tax line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJournalRepository(ctrl)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJournalUseCase(repo, accounts, invoices, testLedgerCodes)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Number: "INV-000123", Subtotal: dec("50"), Total: dec("50"),
		}, nil)
		accounts.EXPECT().GetByCode(gomock.Any(), gomock.Any()).DoAndReturn(byCode).Times(3)
		accounts.EXPECT().MissingActive(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return("JE-000002", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.JournalEntry) (entities.JournalEntry, error) {
				if len(e.Lines) != 2 {
					t.Fatalf("expected 2 lines, got %d", len(e.Lines))
				}
				return e, nil
			},
		)

		if _, err := uc.PostInvoice(context.Background(), actor, "inv-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("zero total has nothing to post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJournalUseCase(nil, nil, invoices, testLedgerCodes)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Number: "INV-000124", Subtotal: dec("0"), Total: dec("0"),
		}, nil)

		if _, err := uc.PostInvoice(context.Background(), actor, "inv-1"); !errors.Is(err, ErrNothingToPost) {
			t.Fatalf("expected ErrNothingToPost, got %v", err)
		}
	})

	t.Run("missing ledger account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJournalUseCase(nil, accounts, invoices, testLedgerCodes)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Subtotal: dec("10"), Total: dec("10")}, nil)
		accounts.EXPECT().GetByCode(gomock.Any(), "1200").Return(entities.Account{}, nil)

		_, err := uc.PostInvoice(context.Background(), actor, "inv-1")
		if !errors.Is(err, ErrLedgerAccountMissing) {
			t.Fatalf("expected ErrLedgerAccountMissing, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJournalUseCase(nil, nil, invoices, testLedgerCodes)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		if _, err := uc.PostInvoice(context.Background(), actor, "inv-1"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
