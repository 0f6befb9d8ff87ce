package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	ExternalID   string `gorm:"size:255;not null;uniqueIndex"`
	Email        string `gorm:"size:255;index"`
	FirstName    string `gorm:"size:128"`
	LastName     string `gorm:"size:128"`
	Role         string `gorm:"size:16;not null"`
	IsActive     bool   `gorm:"not null"`
	LastSignInAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type UserRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return firstUser(conn(ctx, r.db), "id = ?", id)
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (entities.User, error) {
	return firstUser(conn(ctx, r.db), "external_id = ?", externalID)
}

func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := conn(ctx, r.db).Order("email ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromUserModel(m))
	}
	return out, nil
}

// Upsert keys on external_id. Role and is_active of an existing row are kept;
// the sign-in timestamp is refreshed.
func (r *UserRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	m := toUserModel(u)
	now := time.Now().UTC()
	m.LastSignInAt = &now

	db := conn(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "last_sign_in_at", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.User{}, err
	}
	return firstUser(db, "external_id = ?", u.ExternalID)
}

func (r *UserRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	m := toUserModel(u)
	res := conn(ctx, r.db).Model(&userModel{ID: u.ID}).
		Select("email", "first_name", "last_name", "role", "is_active", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.User{}, nil
	}
	return r.GetByID(ctx, u.ID)
}

func (r *UserRepository) DeleteByExternalID(ctx context.Context, externalID string) (bool, error) {
	res := conn(ctx, r.db).Where("external_id = ?", externalID).Delete(&userModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func firstUser(db *gorm.DB, query string, args ...any) (entities.User, error) {
	var m userModel
	err := db.Where(query, args...).First(&m).Error
	if notFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

func toUserModel(u entities.User) userModel {
	return userModel{
		ID:           u.ID,
		ExternalID:   u.ExternalID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		LastSignInAt: utcPtr(u.LastSignInAt),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserModel(m userModel) entities.User {
	return entities.User{
		ID:           m.ID,
		ExternalID:   m.ExternalID,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         entities.Role(m.Role),
		IsActive:     m.IsActive,
		LastSignInAt: utcPtr(m.LastSignInAt),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}
