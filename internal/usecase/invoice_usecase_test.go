package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"efectivio/internal/domain/entities"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Create(t *testing.T) {
	actor := entities.Actor{UserID: "user-1"}
	activeClientRow := entities.Client{ID: "client-1", IsActive: true}

	t.Run("due date defaults to issue date plus thirty days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewInvoiceUseCase(repo, clients)
		uc.now = func() time.Time { return fixedNow }

		issue := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(activeClientRow, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		)

		inv, err := uc.Create(context.Background(), actor, entities.Invoice{ClientID: "client-1", IssueDate: issue})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if want := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC); !inv.DueDate.Equal(want) {
			t.Fatalf("expected due date %s, got %s", want, inv.DueDate)
		}
		if inv.Status != entities.InvoiceStatusDraft || inv.Number == "" || inv.PaidAt != nil {
			t.Fatalf("unexpected defaults: %+v", inv)
		}
	})

	t.Run("missing issue date uses now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewInvoiceUseCase(repo, clients)
		uc.now = func() time.Time { return fixedNow }

		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(activeClientRow, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		)

		inv, err := uc.Create(context.Background(), actor, entities.Invoice{ClientID: "client-1"})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !inv.IssueDate.Equal(fixedNow) || !inv.DueDate.Equal(fixedNow.Add(entities.DefaultPaymentTerm)) {
			t.Fatalf("unexpected dates issue=%s due=%s", inv.IssueDate, inv.DueDate)
		}
	})

	t.Run("due date before issue date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewInvoiceUseCase(nil, clients)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(activeClientRow, nil)

		_, err := uc.Create(context.Background(), actor, entities.Invoice{
			ClientID:  "client-1",
			IssueDate: fixedNow,
			DueDate:   fixedNow.Add(-time.Hour),
		})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields["due_date"] == "" {
			t.Fatalf("expected due_date validation error, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewInvoiceUseCase(nil, clients)

		clients.EXPECT().GetByID(gomock.Any(), "client-9").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), actor, entities.Invoice{ClientID: "client-9"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Update(t *testing.T) {
	t.Run("keeps paid_at of a paid invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		paidAt := fixedNow.Add(-48 * time.Hour)
		existing := entities.Invoice{
			ID: "inv-1", ClientID: "client-1", Number: "INV-000001", QuoteID: "quote-1",
			Status: entities.InvoiceStatusPaid, IssueDate: fixedNow.Add(-72 * time.Hour),
			DueDate: fixedNow, PaidAt: &paidAt, CreatedBy: "user-1",
		}
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.PaidAt == nil || !inv.PaidAt.Equal(paidAt) {
					t.Fatalf("expected paid_at to be preserved, got %v", inv.PaidAt)
				}
				if inv.QuoteID != "quote-1" || inv.Number != "INV-000001" || inv.CreatedBy != "user-1" {
					t.Fatalf("expected immutable fields preserved: %+v", inv)
				}
				return inv, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Invoice{ID: "inv-1", Notes: "updated"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		if _, err := uc.Update(context.Background(), entities.Invoice{ID: "inv-1"}); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "inv-1", "lost"); !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusSent).Return(entities.Invoice{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusSent); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_MarkOverdue(t *testing.T) {
	t.Run("marks every listed invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().ListOverdue(gomock.Any(), fixedNow).Return([]entities.Invoice{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "a", entities.InvoiceStatusOverdue).Return(entities.Invoice{ID: "a"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "b", entities.InvoiceStatusOverdue).Return(entities.Invoice{ID: "b"}, nil)

		n, err := uc.MarkOverdue(context.Background(), fixedNow)
		if err != nil || n != 2 {
			t.Fatalf("expected 2 marked, got %d err=%v", n, err)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().ListOverdue(gomock.Any(), fixedNow).Return([]entities.Invoice{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "a", entities.InvoiceStatusOverdue).Return(entities.Invoice{}, errors.New("db"))

		n, err := uc.MarkOverdue(context.Background(), fixedNow)
		if err == nil || n != 0 {
			t.Fatalf("expected error after 0 marked, got %d err=%v", n, err)
		}
	})
}
