package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

type IInvoiceUseCase interface {
	Create(ctx context.Context, actor entities.Actor, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	clientRepo interfaces.IClientRepository
	now        func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, now: time.Now}
}

// Create fills the issue date with now and the due date with issue date + 30
// days when they are omitted.
func (u *InvoiceUseCase) Create(ctx context.Context, actor entities.Actor, inv entities.Invoice) (entities.Invoice, error) {
	if _, err := activeClient(ctx, u.clientRepo, inv.ClientID); err != nil {
		return entities.Invoice{}, err
	}

	now := u.now().UTC()
	inv.ID = uuid.NewString()
	inv.ClientID = strings.TrimSpace(inv.ClientID)
	inv.Number = strings.TrimSpace(inv.Number)
	if inv.Number == "" {
		inv.Number = invoiceNumber(now)
	}
	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusDraft
	}
	if !inv.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = now
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.Add(entities.DefaultPaymentTerm)
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return entities.Invoice{}, invalidField("due_date", "must not be before issue_date")
	}
	if err := priceInvoice(&inv); err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		inv.PaidAt = &now
	} else {
		inv.PaidAt = nil
	}

	inv.CreatedBy = actor.UserID
	inv.CreatedAt = now
	inv.UpdatedAt = now

	log.Printf("[invoice][usecase] create invoice_id=%s client_id=%s items=%d total=%s", inv.ID, inv.ClientID, len(inv.Items), inv.Total.StringFixed(2))
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidInvoiceStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *InvoiceUseCase) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	existing, err := u.GetByID(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ClientID != "" && inv.ClientID != existing.ClientID {
		if _, err := activeClient(ctx, u.clientRepo, inv.ClientID); err != nil {
			return entities.Invoice{}, err
		}
	} else {
		inv.ClientID = existing.ClientID
	}

	if inv.Number = strings.TrimSpace(inv.Number); inv.Number == "" {
		inv.Number = existing.Number
	}
	if inv.Status == "" {
		inv.Status = existing.Status
	}
	if !inv.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = existing.IssueDate
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = existing.DueDate
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return entities.Invoice{}, invalidField("due_date", "must not be before issue_date")
	}

	inv.ID = existing.ID
	if err := priceInvoice(&inv); err != nil {
		return entities.Invoice{}, err
	}

	now := u.now().UTC()
	switch {
	case inv.Status != entities.InvoiceStatusPaid:
		inv.PaidAt = nil
	case existing.PaidAt != nil:
		inv.PaidAt = existing.PaidAt
	default:
		inv.PaidAt = &now
	}
	inv.QuoteID = existing.QuoteID
	inv.CreatedBy = existing.CreatedBy
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = now

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	return nil
}

// MarkOverdue flags sent invoices whose due date is before asOf.
func (u *InvoiceUseCase) MarkOverdue(ctx context.Context, asOf time.Time) (int, error) {
	invoices, err := u.repo.ListOverdue(ctx, asOf)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, inv := range invoices {
		if _, err := u.repo.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusOverdue); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

func priceInvoice(inv *entities.Invoice) error {
	items, totals, mismatches := entities.Reconcile(inv.Items, inv.Submitted)
	if mismatches != nil {
		return newValidationError(ErrTotalsMismatch, mismatches)
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].DocumentID = inv.ID
		items[i].Description = strings.TrimSpace(items[i].Description)
	}
	inv.Items = items
	inv.SetTotals(totals)
	return nil
}
