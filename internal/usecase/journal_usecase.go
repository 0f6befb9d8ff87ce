package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrJournalEntryNotFound  = errors.New("journal entry not found")
	ErrInvalidJournalEntryID = errors.New("invalid journal entry id")
	ErrUnbalancedEntry       = errors.New("journal entry is not balanced")
	ErrLedgerAccountMissing  = errors.New("ledger account missing from chart of accounts")
	ErrNothingToPost         = errors.New("nothing to post")
)

// LedgerCodes are the chart-of-accounts codes used for automatic postings.
type LedgerCodes struct {
	Cash       string
	Receivable string
	Revenue    string
	TaxPayable string
}

type IJournalUseCase interface {
	Create(ctx context.Context, actor entities.Actor, e entities.JournalEntry) (entities.JournalEntry, error)
	GetByID(ctx context.Context, id string) (entities.JournalEntry, error)
	List(ctx context.Context, filter entities.JournalFilter) ([]entities.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	PostInvoice(ctx context.Context, actor entities.Actor, invoiceID string) (entities.JournalEntry, error)
	PostPayment(ctx context.Context, inv entities.Invoice, p entities.InvoicePayment) (entities.JournalEntry, error)
}

type JournalUseCase struct {
	repo        interfaces.IJournalRepository
	accountRepo interfaces.IAccountRepository
	invoiceRepo interfaces.IInvoiceRepository
	codes       LedgerCodes
	now         func() time.Time
}

var _ IJournalUseCase = (*JournalUseCase)(nil)

func NewJournalUseCase(repo interfaces.IJournalRepository, accountRepo interfaces.IAccountRepository, invoiceRepo interfaces.IInvoiceRepository, codes LedgerCodes) *JournalUseCase {
	return &JournalUseCase{repo: repo, accountRepo: accountRepo, invoiceRepo: invoiceRepo, codes: codes, now: time.Now}
}

// Create validates that the entry balances and that every referenced account
// exists and is active before persisting the entry with its lines.
func (u *JournalUseCase) Create(ctx context.Context, actor entities.Actor, e entities.JournalEntry) (entities.JournalEntry, error) {
	e.Description = strings.TrimSpace(e.Description)
	if problems := e.Validate(); problems != nil {
		// Structural problems take precedence over the balance.
		if _, unbalanced := problems["balance"]; unbalanced && len(problems) == 1 {
			return entities.JournalEntry{}, newValidationError(ErrUnbalancedEntry, problems)
		}
		return entities.JournalEntry{}, newValidationError(ErrInvalidInput, problems)
	}

	missing, err := u.accountRepo.MissingActive(ctx, e.AccountIDs())
	if err != nil {
		return entities.JournalEntry{}, err
	}
	if len(missing) > 0 {
		fields := make(map[string]string, len(missing))
		for _, id := range missing {
			fields["account:"+id] = "unknown or inactive account"
		}
		return entities.JournalEntry{}, newValidationError(ErrInvalidInput, fields)
	}

	now := u.now().UTC()
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.Number = strings.TrimSpace(e.Number); e.Number == "" {
		if e.Number, err = u.repo.NextNumber(ctx); err != nil {
			return entities.JournalEntry{}, err
		}
	}
	e.ID = uuid.NewString()
	for i := range e.Lines {
		e.Lines[i].ID = uuid.NewString()
		e.Lines[i].EntryID = e.ID
		e.Lines[i].Position = i
	}
	e.CreatedBy = actor.UserID
	e.CreatedAt = now
	e.UpdatedAt = now

	debit, _ := e.Totals()
	log.Printf("[journal][usecase] create entry_id=%s number=%s lines=%d amount=%s", e.ID, e.Number, len(e.Lines), debit.StringFixed(2))
	return u.repo.Create(ctx, e)
}

func (u *JournalUseCase) GetByID(ctx context.Context, id string) (entities.JournalEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JournalEntry{}, ErrInvalidJournalEntryID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JournalEntry{}, err
	}
	if e.ID == "" {
		return entities.JournalEntry{}, ErrJournalEntryNotFound
	}
	return e, nil
}

func (u *JournalUseCase) List(ctx context.Context, filter entities.JournalFilter) ([]entities.JournalEntry, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, invalidField("to", "must not be before from")
	}
	return u.repo.List(ctx, filter)
}

func (u *JournalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJournalEntryID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJournalEntryNotFound
	}
	return nil
}

// PostInvoice books an invoice: receivables are debited with the total,
// revenue is credited with the subtotal and tax payable with the tax. Zero
// lines are left out; an invoice with a zero total has nothing to post.
func (u *JournalUseCase) PostInvoice(ctx context.Context, actor entities.Actor, invoiceID string) (entities.JournalEntry, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.JournalEntry{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.JournalEntry{}, err
	}
	if inv.ID == "" {
		return entities.JournalEntry{}, ErrInvoiceNotFound
	}

	if !inv.Total.IsPositive() {
		return entities.JournalEntry{}, fmt.Errorf("%w: invoice %s has a zero total", ErrNothingToPost, inv.Number)
	}

	accounts, err := u.resolve(ctx, u.codes.Receivable, u.codes.Revenue, u.codes.TaxPayable)
	if err != nil {
		return entities.JournalEntry{}, err
	}

	candidates := []entities.JournalLine{
		{AccountID: accounts[u.codes.Receivable], Description: "Invoice " + inv.Number, Debit: inv.Total},
		{AccountID: accounts[u.codes.Revenue], Description: "Revenue", Credit: inv.Subtotal},
		{AccountID: accounts[u.codes.TaxPayable], Description: "Output tax", Credit: inv.TaxAmount},
	}
	lines := make([]entities.JournalLine, 0, len(candidates))
	for _, l := range candidates {
		if l.Debit.IsZero() && l.Credit.IsZero() {
			continue
		}
		lines = append(lines, l)
	}

	return u.Create(ctx, actor, entities.JournalEntry{
		Date:        inv.IssueDate,
		Description: fmt.Sprintf("Invoice %s issued", inv.Number),
		Reference:   inv.Number,
		SourceType:  entities.JournalSourceInvoice,
		SourceID:    inv.ID,
		Lines:       lines,
	})
}

// PostPayment books a collected payment: cash debited, receivables credited.
func (u *JournalUseCase) PostPayment(ctx context.Context, inv entities.Invoice, p entities.InvoicePayment) (entities.JournalEntry, error) {
	accounts, err := u.resolve(ctx, u.codes.Cash, u.codes.Receivable)
	if err != nil {
		return entities.JournalEntry{}, err
	}

	date := u.now().UTC()
	if p.PaidAt != nil {
		date = *p.PaidAt
	}
	return u.Create(ctx, entities.Actor{}, entities.JournalEntry{
		Date:        date,
		Description: fmt.Sprintf("Payment of invoice %s", inv.Number),
		Reference:   p.ProviderPaymentID,
		SourceType:  entities.JournalSourcePayment,
		SourceID:    p.ID,
		Lines: []entities.JournalLine{
			{AccountID: accounts[u.codes.Cash], Description: "Payment received", Debit: p.Amount},
			{AccountID: accounts[u.codes.Receivable], Description: "Invoice " + inv.Number, Credit: p.Amount},
		},
	})
}

func (u *JournalUseCase) resolve(ctx context.Context, codes ...string) (map[string]string, error) {
	ids := make(map[string]string, len(codes))
	for _, code := range codes {
		a, err := u.accountRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if a.ID == "" || !a.IsActive {
			return nil, fmt.Errorf("%w: code %s", ErrLedgerAccountMissing, code)
		}
		ids[code] = a.ID
	}
	return ids, nil
}
