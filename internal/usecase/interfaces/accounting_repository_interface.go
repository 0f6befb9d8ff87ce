package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context, filter entities.ExpenseFilter) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	GetByCode(ctx context.Context, code string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	Update(ctx context.Context, a entities.Account) (entities.Account, error)
	// MissingActive returns the ids that do not belong to an active account.
	MissingActive(ctx context.Context, ids []string) ([]string, error)
}

// IJournalRepository persists journal entries together with their lines.
type IJournalRepository interface {
	Create(ctx context.Context, e entities.JournalEntry) (entities.JournalEntry, error)
	GetByID(ctx context.Context, id string) (entities.JournalEntry, error)
	List(ctx context.Context, filter entities.JournalFilter) ([]entities.JournalEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
	NextNumber(ctx context.Context) (string, error)
}
