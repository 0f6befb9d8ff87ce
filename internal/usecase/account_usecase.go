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
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAccountID     = errors.New("invalid account id")
	ErrAccountCodeExists    = errors.New("account code already exists")
	ErrInvalidAccountParent = errors.New("invalid parent account")
)

type IAccountUseCase interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	Tree(ctx context.Context) ([]*entities.AccountNode, error)
	Update(ctx context.Context, a entities.Account) (entities.Account, error)
	SeedDefaultChart(ctx context.Context) (int, error)
}

type AccountUseCase struct {
	repo interfaces.IAccountRepository
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

func (u *AccountUseCase) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	if err := normalizeAccount(&a); err != nil {
		return entities.Account{}, err
	}

	existing, err := u.repo.GetByCode(ctx, a.Code)
	if err != nil {
		return entities.Account{}, err
	}
	if existing.ID != "" {
		return entities.Account{}, ErrAccountCodeExists
	}

	a.ID = uuid.NewString()
	if err := u.checkParent(ctx, a); err != nil {
		return entities.Account{}, err
	}

	now := time.Now().UTC()
	a.IsActive = true
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.repo.Create(ctx, a)
}

func (u *AccountUseCase) GetByID(ctx context.Context, id string) (entities.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Account{}, ErrInvalidAccountID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, err
	}
	if a.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (u *AccountUseCase) List(ctx context.Context) ([]entities.Account, error) {
	return u.repo.List(ctx)
}

func (u *AccountUseCase) Tree(ctx context.Context) ([]*entities.AccountNode, error) {
	accounts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entities.BuildAccountTree(accounts), nil
}

func (u *AccountUseCase) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	existing, err := u.GetByID(ctx, a.ID)
	if err != nil {
		return entities.Account{}, err
	}
	if err := normalizeAccount(&a); err != nil {
		return entities.Account{}, err
	}
	if a.Code != existing.Code {
		other, err := u.repo.GetByCode(ctx, a.Code)
		if err != nil {
			return entities.Account{}, err
		}
		if other.ID != "" {
			return entities.Account{}, ErrAccountCodeExists
		}
	}

	a.ID = existing.ID
	if err := u.checkParent(ctx, a); err != nil {
		return entities.Account{}, err
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Account{}, err
	}
	if updated.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return updated, nil
}

// SeedDefaultChart creates the default accounts whose codes are not taken yet.
func (u *AccountUseCase) SeedDefaultChart(ctx context.Context) (int, error) {
	created := 0
	for _, a := range entities.DefaultChart() {
		existing, err := u.repo.GetByCode(ctx, a.Code)
		if err != nil {
			return created, err
		}
		if existing.ID != "" {
			continue
		}
		if _, err := u.Create(ctx, a); err != nil {
			return created, err
		}
		created++
	}
	log.Printf("[account][usecase] seed default chart created=%d", created)
	return created, nil
}

// checkParent rejects unknown parents and parent chains that lead back to a.
func (u *AccountUseCase) checkParent(ctx context.Context, a entities.Account) error {
	parentID := a.ParentID
	for depth := 0; parentID != ""; depth++ {
		if parentID == a.ID || depth > 64 {
			return ErrInvalidAccountParent
		}
		parent, err := u.repo.GetByID(ctx, parentID)
		if err != nil {
			return err
		}
		if parent.ID == "" {
			return ErrInvalidAccountParent
		}
		parentID = parent.ParentID
	}
	return nil
}

func normalizeAccount(a *entities.Account) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.ParentID = strings.TrimSpace(a.ParentID)

	fields := map[string]string{}
	if a.Code == "" {
		fields["code"] = "required"
	}
	if a.Name == "" {
		fields["name"] = "required"
	}
	if !a.Type.Valid() {
		fields["type"] = "must be one of asset, liability, equity, revenue, expense"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	return nil
}
