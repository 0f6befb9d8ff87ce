package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidExpenseID = errors.New("invalid expense id")
)

type IExpenseUseCase interface {
	Create(ctx context.Context, actor entities.Actor, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context, filter entities.ExpenseFilter) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo        interfaces.IExpenseRepository
	accountRepo interfaces.IAccountRepository
	now         func() time.Time
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository, accountRepo interfaces.IAccountRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, accountRepo: accountRepo, now: time.Now}
}

func (u *ExpenseUseCase) Create(ctx context.Context, actor entities.Actor, e entities.Expense) (entities.Expense, error) {
	if err := u.validate(ctx, &e); err != nil {
		return entities.Expense{}, err
	}

	now := u.now().UTC()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.ID = uuid.NewString()
	e.CreatedBy = actor.UserID
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *ExpenseUseCase) List(ctx context.Context, filter entities.ExpenseFilter) ([]entities.Expense, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return u.repo.List(ctx, filter)
}

func (u *ExpenseUseCase) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	existing, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Expense{}, err
	}
	if err := u.validate(ctx, &e); err != nil {
		return entities.Expense{}, err
	}

	if e.Date.IsZero() {
		e.Date = existing.Date
	}
	e.ID = existing.ID
	e.CreatedBy = existing.CreatedBy
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	if updated.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return updated, nil
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func (u *ExpenseUseCase) validate(ctx context.Context, e *entities.Expense) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	fields := map[string]string{}
	if e.Category == "" {
		fields["category"] = "required"
	}
	if !e.Amount.IsPositive() {
		fields["amount"] = "must be greater than zero"
	}
	if e.TaxAmount.IsNegative() {
		fields["tax_amount"] = "must not be negative"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	e.Amount = e.Amount.Round(2)
	e.TaxAmount = e.TaxAmount.Round(2)

	if e.AccountID != "" {
		missing, err := u.accountRepo.MissingActive(ctx, []string{e.AccountID})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return invalidField("account_id", "unknown or inactive account")
		}
	}
	return nil
}
