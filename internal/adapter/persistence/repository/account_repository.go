package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type accountModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Code        string `gorm:"size:32;not null;uniqueIndex"`
	Name        string `gorm:"size:255;not null"`
	Type        string `gorm:"size:16;not null;index"`
	ParentID    string `gorm:"size:36;index"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (accountModel) TableName() string { return "accounts" }

// AccountRepository stores the chart of accounts.
type AccountRepository struct {
	db *gorm.DB
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	m := toAccountModel(a)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Account{}, err
	}
	return fromAccountModel(m), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AccountRepository) GetByCode(ctx context.Context, code string) (entities.Account, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *AccountRepository) List(ctx context.Context) ([]entities.Account, error) {
	var rows []accountModel
	if err := conn(ctx, r.db).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Account, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromAccountModel(m))
	}
	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	m := toAccountModel(a)
	res := conn(ctx, r.db).Model(&accountModel{ID: a.ID}).
		Select("code", "name", "type", "parent_id", "description", "is_active", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Account{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Account{}, nil
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AccountRepository) MissingActive(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []string
	err := conn(ctx, r.db).Model(&accountModel{}).
		Where("id IN ? AND is_active = ?", ids, true).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	active := make(map[string]struct{}, len(found))
	for _, id := range found {
		active[id] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := active[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *AccountRepository) first(ctx context.Context, query string, args ...any) (entities.Account, error) {
	var m accountModel
	err := conn(ctx, r.db).Where(query, args...).First(&m).Error
	if notFound(err) {
		return entities.Account{}, nil
	}
	if err != nil {
		return entities.Account{}, err
	}
	return fromAccountModel(m), nil
}

func toAccountModel(a entities.Account) accountModel {
	return accountModel{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		Type:        string(a.Type),
		ParentID:    a.ParentID,
		Description: a.Description,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func fromAccountModel(m accountModel) entities.Account {
	return entities.Account{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Type:        entities.AccountType(m.Type),
		ParentID:    m.ParentID,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
