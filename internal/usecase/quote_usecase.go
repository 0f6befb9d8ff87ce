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
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

// IQuoteUseCase exposes quote operations, including conversion into an invoice.
type IQuoteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	ConvertToInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ExpireStale(ctx context.Context, asOf time.Time) (int, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	invoiceRepo interfaces.IInvoiceRepository
	clientRepo  interfaces.IClientRepository
	tx          interfaces.ITransactor
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, invoiceRepo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, tx interfaces.ITransactor) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, invoiceRepo: invoiceRepo, clientRepo: clientRepo, tx: tx, now: time.Now}
}

func (u *QuoteUseCase) Create(ctx context.Context, actor entities.Actor, q entities.Quote) (entities.Quote, error) {
	if _, err := activeClient(ctx, u.clientRepo, q.ClientID); err != nil {
		return entities.Quote{}, err
	}

	now := u.now().UTC()
	q.ID = uuid.NewString()
	q.ClientID = strings.TrimSpace(q.ClientID)
	q.Number = strings.TrimSpace(q.Number)
	if q.Number == "" {
		q.Number = quoteNumber(now)
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if !q.Status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if q.IssueDate.IsZero() {
		q.IssueDate = now
	}
	if q.ValidUntil != nil && q.ValidUntil.Before(q.IssueDate) {
		return entities.Quote{}, invalidField("valid_until", "must not be before issue_date")
	}
	if err := priceQuote(&q); err != nil {
		return entities.Quote{}, err
	}

	q.ConvertedToInvoiceID = ""
	q.CreatedBy = actor.UserID
	q.CreatedAt = now
	q.UpdatedAt = now

	log.Printf("[quote][usecase] create quote_id=%s client_id=%s items=%d total=%s", q.ID, q.ClientID, len(q.Items), q.Total.StringFixed(2))
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidQuoteStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *QuoteUseCase) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	existing, err := u.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ClientID != "" && q.ClientID != existing.ClientID {
		if _, err := activeClient(ctx, u.clientRepo, q.ClientID); err != nil {
			return entities.Quote{}, err
		}
	} else {
		q.ClientID = existing.ClientID
	}

	if q.Number = strings.TrimSpace(q.Number); q.Number == "" {
		q.Number = existing.Number
	}
	if q.Status == "" {
		q.Status = existing.Status
	}
	if !q.Status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if q.IssueDate.IsZero() {
		q.IssueDate = existing.IssueDate
	}
	if q.ValidUntil != nil && q.ValidUntil.Before(q.IssueDate) {
		return entities.Quote{}, invalidField("valid_until", "must not be before issue_date")
	}
	q.ID = existing.ID
	if err := priceQuote(&q); err != nil {
		return entities.Quote{}, err
	}

	q.ConvertedToInvoiceID = existing.ConvertedToInvoiceID
	q.CreatedBy = existing.CreatedBy
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	return nil
}

// ConvertToInvoice creates a draft invoice from a quote. The quote status
// update, the invoice with its items and the back-link are written in one
// transaction. There is no status guard: converting twice yields two invoices
// and the quote keeps pointing at the latest one.
func (u *QuoteUseCase) ConvertToInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[quote][usecase] convert start quote_id=%s status=%s", q.ID, q.Status)

	now := u.now().UTC()
	inv := entities.Invoice{
		ID:        uuid.NewString(),
		Number:    invoiceNumber(now),
		ClientID:  q.ClientID,
		QuoteID:   q.ID,
		Status:    entities.InvoiceStatusDraft,
		IssueDate: now,
		DueDate:   now.Add(entities.DefaultPaymentTerm),
		Subtotal:  q.Subtotal,
		TaxAmount: q.TaxAmount,
		Total:     q.Total,
		Notes:     q.Notes,
		CreatedBy: q.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inv.Items = make([]entities.LineItem, len(q.Items))
	for i, it := range q.Items {
		it.ID = uuid.NewString()
		it.DocumentID = inv.ID
		it.Position = i
		inv.Items[i] = it
	}

	var created entities.Invoice
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := u.repo.UpdateStatus(ctx, q.ID, entities.QuoteStatusConverted); err != nil {
			return err
		}
		var err error
		created, err = u.invoiceRepo.Create(ctx, inv)
		if err != nil {
			return err
		}
		return u.repo.SetConvertedInvoice(ctx, q.ID, created.ID)
	})
	if err != nil {
		log.Printf("[quote][usecase] convert failed quote_id=%s err=%v", q.ID, err)
		return entities.Invoice{}, err
	}

	log.Printf("[quote][usecase] convert success quote_id=%s invoice_id=%s number=%s", q.ID, created.ID, created.Number)
	return created, nil
}

// ExpireStale marks sent quotes whose validity ended before asOf as expired.
func (u *QuoteUseCase) ExpireStale(ctx context.Context, asOf time.Time) (int, error) {
	quotes, err := u.repo.ListExpirable(ctx, asOf)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, q := range quotes {
		if _, err := u.repo.UpdateStatus(ctx, q.ID, entities.QuoteStatusExpired); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}

func priceQuote(q *entities.Quote) error {
	items, totals, mismatches := entities.Reconcile(q.Items, q.Submitted)
	if mismatches != nil {
		return newValidationError(ErrTotalsMismatch, mismatches)
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].DocumentID = q.ID
		items[i].Description = strings.TrimSpace(items[i].Description)
	}
	q.Items = items
	q.SetTotals(totals)
	return nil
}
