package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type systemConfigModel struct {
	Key         string `gorm:"primaryKey;size:128"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	IsPublic    bool   `gorm:"not null;index"`
	UpdatedBy   string `gorm:"size:36"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (systemConfigModel) TableName() string { return "system_config" }

type SystemConfigRepository struct {
	db *gorm.DB
}

var _ interfaces.ISystemConfigRepository = (*SystemConfigRepository)(nil)

func NewSystemConfigRepository(db *gorm.DB) *SystemConfigRepository {
	return &SystemConfigRepository{db: db}
}

func (r *SystemConfigRepository) List(ctx context.Context, publicOnly bool) ([]entities.SystemConfig, error) {
	q := conn(ctx, r.db).Model(&systemConfigModel{})
	if publicOnly {
		q = q.Where("is_public = ?", true)
	}

	var rows []systemConfigModel
	if err := q.Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.SystemConfig, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromSystemConfigModel(m))
	}
	return out, nil
}

func (r *SystemConfigRepository) Get(ctx context.Context, key string) (entities.SystemConfig, error) {
	var m systemConfigModel
	err := conn(ctx, r.db).Where("key = ?", key).First(&m).Error
	if notFound(err) {
		return entities.SystemConfig{}, nil
	}
	if err != nil {
		return entities.SystemConfig{}, err
	}
	return fromSystemConfigModel(m), nil
}

// Upsert inserts the setting or overwrites everything but created_at.
func (r *SystemConfigRepository) Upsert(ctx context.Context, c entities.SystemConfig) (entities.SystemConfig, error) {
	m := toSystemConfigModel(c)
	db := conn(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "is_public", "updated_by", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.SystemConfig{}, err
	}
	return r.Get(ctx, c.Key)
}

func (r *SystemConfigRepository) Delete(ctx context.Context, key string) (bool, error) {
	res := conn(ctx, r.db).Where("key = ?", key).Delete(&systemConfigModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toSystemConfigModel(c entities.SystemConfig) systemConfigModel {
	return systemConfigModel{
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		UpdatedBy:   c.UpdatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromSystemConfigModel(m systemConfigModel) entities.SystemConfig {
	return entities.SystemConfig{
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
		IsPublic:    m.IsPublic,
		UpdatedBy:   m.UpdatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
