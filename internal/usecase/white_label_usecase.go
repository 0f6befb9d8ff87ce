package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrWhiteLabelNotFound  = errors.New("white label profile not found")
	ErrInvalidWhiteLabelID = errors.New("invalid white label id")
)

const (
	whiteLabelEntityType = "white_label"
	whiteLabelActiveKey  = "white_label:active"
	whiteLabelCacheTTL   = 10 * time.Minute
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type IWhiteLabelUseCase interface {
	List(ctx context.Context) ([]entities.WhiteLabel, error)
	GetByID(ctx context.Context, id string) (entities.WhiteLabel, error)
	GetActive(ctx context.Context) (entities.WhiteLabel, error)
	Create(ctx context.Context, actor entities.Actor, w entities.WhiteLabel) (entities.WhiteLabel, error)
	Update(ctx context.Context, actor entities.Actor, w entities.WhiteLabel) (entities.WhiteLabel, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	Activate(ctx context.Context, actor entities.Actor, id string) (entities.WhiteLabel, error)
	DeactivateAll(ctx context.Context, actor entities.Actor) (int64, error)
}

type WhiteLabelUseCase struct {
	repo  interfaces.IWhiteLabelRepository
	audit interfaces.IAuditLogRepository
	cache interfaces.ICache
}

var _ IWhiteLabelUseCase = (*WhiteLabelUseCase)(nil)

func NewWhiteLabelUseCase(repo interfaces.IWhiteLabelRepository, audit interfaces.IAuditLogRepository, cache interfaces.ICache) *WhiteLabelUseCase {
	return &WhiteLabelUseCase{repo: repo, audit: audit, cache: cache}
}

func (u *WhiteLabelUseCase) List(ctx context.Context) ([]entities.WhiteLabel, error) {
	return u.repo.List(ctx)
}

func (u *WhiteLabelUseCase) GetByID(ctx context.Context, id string) (entities.WhiteLabel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WhiteLabel{}, ErrInvalidWhiteLabelID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	if w.ID == "" {
		return entities.WhiteLabel{}, ErrWhiteLabelNotFound
	}
	return w, nil
}

// GetActive is read on every page load of the frontend, so it is cached.
func (u *WhiteLabelUseCase) GetActive(ctx context.Context) (entities.WhiteLabel, error) {
	var cached entities.WhiteLabel
	if hit, err := u.cache.Get(ctx, whiteLabelActiveKey, &cached); err != nil {
		log.WithError(err).Warnf("[white-label][usecase] cache read failed")
	} else if hit && cached.ID != "" {
		return cached, nil
	}

	w, err := u.repo.GetActive(ctx)
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	if w.ID == "" {
		return entities.WhiteLabel{}, ErrWhiteLabelNotFound
	}
	if err := u.cache.Set(ctx, whiteLabelActiveKey, w, whiteLabelCacheTTL); err != nil {
		log.WithError(err).Warnf("[white-label][usecase] cache write failed")
	}
	return w, nil
}

func (u *WhiteLabelUseCase) Create(ctx context.Context, actor entities.Actor, w entities.WhiteLabel) (entities.WhiteLabel, error) {
	if !actor.IsAdmin() {
		return entities.WhiteLabel{}, ErrForbidden
	}
	if err := normalizeWhiteLabel(&w); err != nil {
		return entities.WhiteLabel{}, err
	}

	now := time.Now().UTC()
	w.ID = uuid.NewString()
	w.IsActive = false
	w.CreatedAt = now
	w.UpdatedAt = now
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.WhiteLabel{}, err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionCreate, whiteLabelEntityType, created.ID, nil, created)
	return created, nil
}

func (u *WhiteLabelUseCase) Update(ctx context.Context, actor entities.Actor, w entities.WhiteLabel) (entities.WhiteLabel, error) {
	if !actor.IsAdmin() {
		return entities.WhiteLabel{}, ErrForbidden
	}
	before, err := u.GetByID(ctx, w.ID)
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	if err := normalizeWhiteLabel(&w); err != nil {
		return entities.WhiteLabel{}, err
	}

	w.ID = before.ID
	w.IsActive = before.IsActive
	w.CreatedAt = before.CreatedAt
	w.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	if updated.ID == "" {
		return entities.WhiteLabel{}, ErrWhiteLabelNotFound
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionUpdate, whiteLabelEntityType, updated.ID, before, updated)
	u.invalidate(ctx)
	return updated, nil
}

func (u *WhiteLabelUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	before, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := u.repo.Delete(ctx, before.ID); err != nil {
		return err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionDelete, whiteLabelEntityType, before.ID, before, nil)
	u.invalidate(ctx)
	return nil
}

func (u *WhiteLabelUseCase) Activate(ctx context.Context, actor entities.Actor, id string) (entities.WhiteLabel, error) {
	if !actor.IsAdmin() {
		return entities.WhiteLabel{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WhiteLabel{}, ErrInvalidWhiteLabelID
	}

	activated, err := u.repo.Activate(ctx, id)
	if err != nil {
		return entities.WhiteLabel{}, err
	}
	if activated.ID == "" {
		return entities.WhiteLabel{}, ErrWhiteLabelNotFound
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionActivate, whiteLabelEntityType, activated.ID, nil, activated)
	u.invalidate(ctx)
	return activated, nil
}

func (u *WhiteLabelUseCase) DeactivateAll(ctx context.Context, actor entities.Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}

	n, err := u.repo.DeactivateAll(ctx)
	if err != nil {
		return 0, err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionDeactivate, whiteLabelEntityType, "*", nil, map[string]int64{"deactivated": n})
	u.invalidate(ctx)
	return n, nil
}

func (u *WhiteLabelUseCase) invalidate(ctx context.Context) {
	if err := u.cache.Delete(ctx, whiteLabelActiveKey); err != nil {
		log.WithError(err).Warnf("[white-label][usecase] cache invalidation failed")
	}
}

func normalizeWhiteLabel(w *entities.WhiteLabel) error {
	w.CompanyName = strings.TrimSpace(w.CompanyName)
	w.Domain = strings.ToLower(strings.TrimSpace(w.Domain))
	w.SupportEmail = strings.ToLower(strings.TrimSpace(w.SupportEmail))

	fields := map[string]string{}
	if w.CompanyName == "" {
		fields["company_name"] = "required"
	}
	if w.PrimaryColor != "" && !hexColor.MatchString(w.PrimaryColor) {
		fields["primary_color"] = "must be a hex color"
	}
	if w.SecondaryColor != "" && !hexColor.MatchString(w.SecondaryColor) {
		fields["secondary_color"] = "must be a hex color"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	return nil
}
