package usecase

import (
	"context"
	"encoding/json"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultAuditListLimit = 100

type IAuditUseCase interface {
	List(ctx context.Context, actor entities.Actor, filter entities.AuditLogFilter) ([]entities.AuditLog, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) List(ctx context.Context, actor entities.Actor, filter entities.AuditLogFilter) ([]entities.AuditLog, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = defaultAuditListLimit
	}
	return u.repo.List(ctx, filter)
}

// recordAudit writes one audit row. A failed write is logged and does not fail
// the operation that was audited.
func recordAudit(ctx context.Context, repo interfaces.IAuditLogRepository, actor entities.Actor, action entities.AuditAction, entityType, entityID string, before, after any) {
	if repo == nil {
		return
	}

	changes, err := json.Marshal(map[string]any{"before": before, "after": after})
	if err != nil {
		log.Printf("[audit][usecase] changes marshal failed entity=%s id=%s err=%v", entityType, entityID, err)
		changes = nil
	}

	entry := entities.AuditLog{
		ID:         uuid.NewString(),
		UserID:     actor.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := repo.Create(ctx, entry); err != nil {
		log.WithError(err).Warnf("[audit][usecase] record failed action=%s entity=%s id=%s", action, entityType, entityID)
	}
}
