package repository

import (
	"context"
	"encoding/json"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const defaultAuditListLimit = 100

type auditLogModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"size:36;index"`
	Action     string    `gorm:"size:16;not null"`
	EntityType string    `gorm:"size:64;not null;index:idx_audit_entity"`
	EntityID   string    `gorm:"size:128;index:idx_audit_entity"`
	Changes    string    `gorm:"type:text"`
	IPAddress  string    `gorm:"size:64"`
	UserAgent  string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"index"`
}

func (auditLogModel) TableName() string { return "audit_logs" }

// AuditLogRepository is the SQL audit store. Rows are append-only.
type AuditLogRepository struct {
	db *gorm.DB
}

var _ interfaces.IAuditLogRepository = (*AuditLogRepository)(nil)

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error) {
	m := toAuditLogModel(l)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.AuditLog{}, err
	}
	return fromAuditLogModel(m), nil
}

func (r *AuditLogRepository) List(ctx context.Context, filter entities.AuditLogFilter) ([]entities.AuditLog, error) {
	q := conn(ctx, r.db).Model(&auditLogModel{})
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}

	var rows []auditLogModel
	if err := q.Order("created_at DESC").Limit(auditLimit(filter.Limit)).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.AuditLog, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromAuditLogModel(m))
	}
	return out, nil
}

func auditLimit(n int) int {
	if n <= 0 || n > 1000 {
		return defaultAuditListLimit
	}
	return n
}

func toAuditLogModel(l entities.AuditLog) auditLogModel {
	return auditLogModel{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     string(l.Action),
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Changes:    string(l.Changes),
		IPAddress:  l.IPAddress,
		UserAgent:  l.UserAgent,
		CreatedAt:  l.CreatedAt.UTC(),
	}
}

func fromAuditLogModel(m auditLogModel) entities.AuditLog {
	var changes json.RawMessage
	if m.Changes != "" {
		changes = json.RawMessage(m.Changes)
	}
	return entities.AuditLog{
		ID:         m.ID,
		UserID:     m.UserID,
		Action:     entities.AuditAction(m.Action),
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Changes:    changes,
		IPAddress:  m.IPAddress,
		UserAgent:  m.UserAgent,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
