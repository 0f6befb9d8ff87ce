package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"efectivio/internal/domain/entities"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func passthroughTx(tx *mock_interfaces.MockITransactor) *gomock.Call {
	return tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

type quoteMocks struct {
	repo     *mock_interfaces.MockIQuoteRepository
	invoices *mock_interfaces.MockIInvoiceRepository
	clients  *mock_interfaces.MockIClientRepository
	tx       *mock_interfaces.MockITransactor
}

func newQuoteUseCaseWithMocks(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		repo:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		invoices: mock_interfaces.NewMockIInvoiceRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		tx:       mock_interfaces.NewMockITransactor(ctrl),
	}
	uc := NewQuoteUseCase(m.repo, m.invoices, m.clients, m.tx)
	return uc, m
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestQuoteUseCase_Create(t *testing.T) {
	actor := entities.Actor{UserID: "user-1", Role: entities.RoleUser}

	t.Run("computes totals and fills defaults", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		uc.now = func() time.Time { return fixedNow }

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: true}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Number == "" || q.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected quote header: %+v", q)
				}
				if !q.IssueDate.Equal(fixedNow) || q.CreatedBy != "user-1" {
					t.Fatalf("unexpected issue date or creator: %+v", q)
				}
				if !q.Subtotal.Equal(dec("100")) || !q.TaxAmount.Equal(dec("10")) || !q.Total.Equal(dec("110")) {
					t.Fatalf("unexpected totals: %s %s %s", q.Subtotal, q.TaxAmount, q.Total)
				}
				if len(q.Items) != 1 || q.Items[0].ID == "" || q.Items[0].DocumentID != q.ID || !q.Items[0].Amount.Equal(dec("100")) {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				return q, nil
			},
		)

		_, err := uc.Create(context.Background(), actor, entities.Quote{
			ClientID: "client-1",
			Items:    []entities.LineItem{{Description: "Design", Quantity: dec("2"), UnitPrice: dec("50"), TaxRate: dec("10")}},
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("rejects mismatching totals", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: true}, nil)

		total := dec("999")
		_, err := uc.Create(context.Background(), actor, entities.Quote{
			ClientID:  "client-1",
			Items:     []entities.LineItem{{Quantity: dec("2"), UnitPrice: dec("50"), TaxRate: dec("10")}},
			Submitted: entities.Submitted{Total: &total},
		})
		if !errors.Is(err, ErrTotalsMismatch) {
			t.Fatalf("expected ErrTotalsMismatch, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields["total"] != "expected 110.00" {
			t.Fatalf("expected total field message, got %v", err)
		}
	})

	t.Run("explicit zero total is checked", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: true}, nil)

		zero := dec("0.00")
		_, err := uc.Create(context.Background(), actor, entities.Quote{
			ClientID:  "client-1",
			Items:     []entities.LineItem{{Quantity: dec("2"), UnitPrice: dec("50"), TaxRate: dec("10")}},
			Submitted: entities.Submitted{Total: &zero},
		})
		var verr *ValidationError
		if !errors.Is(err, ErrTotalsMismatch) || !errors.As(err, &verr) || verr.Fields["total"] != "expected 110.00" {
			t.Fatalf("expected total mismatch, got %v", err)
		}
	})

	t.Run("inactive client", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: false}, nil)

		_, err := uc.Create(context.Background(), actor, entities.Quote{ClientID: "client-1"})
		if !errors.Is(err, ErrClientInactive) {
			t.Fatalf("expected ErrClientInactive, got %v", err)
		}
	})
}

func TestQuoteUseCase_ConvertToInvoice(t *testing.T) {
	quote := entities.Quote{
		ID:        "quote-1",
		ClientID:  "client-1",
		Status:    entities.QuoteStatusAccepted,
		Subtotal:  dec("100"),
		TaxAmount: dec("10"),
		Total:     dec("110"),
		Notes:     "thanks",
		CreatedBy: "user-1",
		Items: []entities.LineItem{
			{ID: "item-a", DocumentID: "quote-1", Description: "A", Quantity: dec("1"), UnitPrice: dec("60"), TaxRate: dec("10"), Amount: dec("60")},
			{ID: "item-b", DocumentID: "quote-1", Description: "B", Quantity: dec("1"), UnitPrice: dec("40"), TaxRate: dec("10"), Amount: dec("40")},
		},
	}

	t.Run("missing quote performs no writes", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "missing")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("creates draft invoice in one transaction", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		uc.now = func() time.Time { return fixedNow }

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		passthroughTx(m.tx)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusConverted).Return(entities.Quote{ID: "quote-1"}, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusDraft || inv.QuoteID != "quote-1" || inv.ClientID != "client-1" || inv.Notes != "thanks" {
					t.Fatalf("unexpected invoice header: %+v", inv)
				}
				if inv.Number != invoiceNumber(fixedNow) {
					t.Fatalf("unexpected number %s", inv.Number)
				}
				if !inv.DueDate.Equal(fixedNow.Add(30 * 24 * time.Hour)) {
					t.Fatalf("unexpected due date %s", inv.DueDate)
				}
				if !inv.Total.Equal(quote.Total) || !inv.Subtotal.Equal(quote.Subtotal) || !inv.TaxAmount.Equal(quote.TaxAmount) {
					t.Fatalf("totals not copied: %+v", inv)
				}
				if len(inv.Items) != 2 || inv.Items[0].Description != "A" || inv.Items[1].Description != "B" {
					t.Fatalf("items not copied in order: %+v", inv.Items)
				}
				for _, it := range inv.Items {
					if it.ID == "item-a" || it.ID == "item-b" || it.DocumentID != inv.ID {
						t.Fatalf("expected fresh item ids bound to the invoice: %+v", it)
					}
				}
				return inv, nil
			},
		)
		m.repo.EXPECT().SetConvertedInvoice(gomock.Any(), "quote-1", gomock.Any()).Return(nil)

		inv, err := uc.ConvertToInvoice(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected invoice id")
		}
	})

	t.Run("converting twice yields two invoices", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		var linked []string
		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil).Times(2)
		passthroughTx(m.tx).Times(2)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusConverted).Return(entities.Quote{ID: "quote-1"}, nil).Times(2)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		).Times(2)
		m.repo.EXPECT().SetConvertedInvoice(gomock.Any(), "quote-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, invoiceID string) error {
				linked = append(linked, invoiceID)
				return nil
			},
		).Times(2)

		first, err := uc.ConvertToInvoice(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("first conversion: %v", err)
		}
		second, err := uc.ConvertToInvoice(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("second conversion: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("expected distinct invoices, got %s twice", first.ID)
		}
		if len(linked) != 2 || linked[1] != second.ID {
			t.Fatalf("expected quote to point at the second invoice, got %v", linked)
		}
	})

	t.Run("invoice insert failure aborts before back-link", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		passthroughTx(m.tx)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusConverted).Return(entities.Quote{ID: "quote-1"}, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.ConvertToInvoice(context.Background(), "quote-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.repo.EXPECT().Delete(gomock.Any(), "quote-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "quote-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.repo.EXPECT().Delete(gomock.Any(), "quote-1").Return(true, nil)

		if err := uc.Delete(context.Background(), " quote-1 "); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestQuoteUseCase_ExpireStale(t *testing.T) {
	uc, m := newQuoteUseCaseWithMocks(t)

	m.repo.EXPECT().ListExpirable(gomock.Any(), fixedNow).Return([]entities.Quote{{ID: "q1"}, {ID: "q2"}}, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusExpired).Return(entities.Quote{ID: "q1"}, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), "q2", entities.QuoteStatusExpired).Return(entities.Quote{ID: "q2"}, nil)

	n, err := uc.ExpireStale(context.Background(), fixedNow)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 expired, got %d err=%v", n, err)
	}
}
