package repository

import (
	"context"
	"errors"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type whiteLabelModel struct {
	ID             string `gorm:"primaryKey;size:36"`
	CompanyName    string `gorm:"size:255;not null"`
	LogoURL        string `gorm:"size:1024"`
	PrimaryColor   string `gorm:"size:7"`
	SecondaryColor string `gorm:"size:7"`
	Domain         string `gorm:"size:255"`
	SupportEmail   string `gorm:"size:255"`
	IsActive       bool   `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (whiteLabelModel) TableName() string { return "white_label_config" }

type WhiteLabelRepository struct {
	db *gorm.DB
}

var _ interfaces.IWhiteLabelRepository = (*WhiteLabelRepository)(nil)

func NewWhiteLabelRepository(db *gorm.DB) *WhiteLabelRepository {
	return &WhiteLabelRepository{db: db}
}

func (r *WhiteLabelRepository) Create(ctx context.Context, w entities.WhiteLabel) (entities.WhiteLabel, error) {
	m := toWhiteLabelModel(w)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.WhiteLabel{}, err
	}
	return fromWhiteLabelModel(m), nil
}

func (r *WhiteLabelRepository) GetByID(ctx context.Context, id string) (entities.WhiteLabel, error) {
	return firstWhiteLabel(conn(ctx, r.db), "id = ?", id)
}

func (r *WhiteLabelRepository) GetActive(ctx context.Context) (entities.WhiteLabel, error) {
	return firstWhiteLabel(conn(ctx, r.db).Order("updated_at DESC"), "is_active = ?", true)
}

func (r *WhiteLabelRepository) List(ctx context.Context) ([]entities.WhiteLabel, error) {
	var rows []whiteLabelModel
	if err := conn(ctx, r.db).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.WhiteLabel, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromWhiteLabelModel(m))
	}
	return out, nil
}

// Update leaves is_active alone; activation goes through Activate.
func (r *WhiteLabelRepository) Update(ctx context.Context, w entities.WhiteLabel) (entities.WhiteLabel, error) {
	m := toWhiteLabelModel(w)
	res := conn(ctx, r.db).Model(&whiteLabelModel{ID: w.ID}).
		Select("company_name", "logo_url", "primary_color", "secondary_color", "domain", "support_email", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.WhiteLabel{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.WhiteLabel{}, nil
	}
	return r.GetByID(ctx, w.ID)
}

func (r *WhiteLabelRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&whiteLabelModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *WhiteLabelRepository) Activate(ctx context.Context, id string) (entities.WhiteLabel, error) {
	var activated entities.WhiteLabel
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		err := tx.Model(&whiteLabelModel{}).
			Where("is_active = ? AND id <> ?", true, id).
			Updates(map[string]any{"is_active": false, "updated_at": now}).Error
		if err != nil {
			return err
		}

		res := tx.Model(&whiteLabelModel{}).Where("id = ?", id).
			Updates(map[string]any{"is_active": true, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoRows
		}

		activated, err = firstWhiteLabel(tx, "id = ?", id)
		return err
	})
	if errors.Is(err, errNoRows) {
		return entities.WhiteLabel{}, nil
	}
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	return activated, nil
}

func (r *WhiteLabelRepository) DeactivateAll(ctx context.Context) (int64, error) {
	res := conn(ctx, r.db).Model(&whiteLabelModel{}).Where("is_active = ?", true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

func firstWhiteLabel(db *gorm.DB, query string, args ...any) (entities.WhiteLabel, error) {
	var m whiteLabelModel
	err := db.Where(query, args...).First(&m).Error
	if notFound(err) {
		return entities.WhiteLabel{}, nil
	}
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	return fromWhiteLabelModel(m), nil
}

func toWhiteLabelModel(w entities.WhiteLabel) whiteLabelModel {
	return whiteLabelModel{
		ID:             w.ID,
		CompanyName:    w.CompanyName,
		LogoURL:        w.LogoURL,
		PrimaryColor:   w.PrimaryColor,
		SecondaryColor: w.SecondaryColor,
		Domain:         w.Domain,
		SupportEmail:   w.SupportEmail,
		IsActive:       w.IsActive,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func fromWhiteLabelModel(m whiteLabelModel) entities.WhiteLabel {
	return entities.WhiteLabel{
		ID:             m.ID,
		CompanyName:    m.CompanyName,
		LogoURL:        m.LogoURL,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		Domain:         m.Domain,
		SupportEmail:   m.SupportEmail,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}
