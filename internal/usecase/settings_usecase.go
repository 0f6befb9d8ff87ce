package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrSettingNotFound      = errors.New("setting not found")
	ErrSettingAlreadyExists = errors.New("setting already exists")
	ErrInvalidSettingKey    = errors.New("invalid setting key")
)

const (
	settingsEntityType = "system_config"
	settingsCacheTTL   = 10 * time.Minute
)

// SettingPatch holds the fields of a setting update. Nil leaves a field as is.
type SettingPatch struct {
	Value       *string
	Description *string
	IsPublic    *bool
}

// ISettingsUseCase manages system settings. Mutations are admin-only and audited.
type ISettingsUseCase interface {
	List(ctx context.Context, actor entities.Actor) ([]entities.SystemConfig, error)
	Get(ctx context.Context, actor entities.Actor, key string) (entities.SystemConfig, error)
	Create(ctx context.Context, actor entities.Actor, c entities.SystemConfig) (entities.SystemConfig, error)
	Update(ctx context.Context, actor entities.Actor, key string, patch SettingPatch) (entities.SystemConfig, error)
	Delete(ctx context.Context, actor entities.Actor, key string) error
}

type SettingsUseCase struct {
	repo  interfaces.ISystemConfigRepository
	audit interfaces.IAuditLogRepository
	cache interfaces.ICache
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISystemConfigRepository, audit interfaces.IAuditLogRepository, cache interfaces.ICache) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, audit: audit, cache: cache}
}

func settingsCacheKey(publicOnly bool) string {
	if publicOnly {
		return "settings:public"
	}
	return "settings:all"
}

func (u *SettingsUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.SystemConfig, error) {
	publicOnly := !actor.IsAdmin()
	key := settingsCacheKey(publicOnly)

	var cached []entities.SystemConfig
	if hit, err := u.cache.Get(ctx, key, &cached); err != nil {
		log.WithError(err).Warnf("[settings][usecase] cache read failed key=%s", key)
	} else if hit {
		return cached, nil
	}

	list, err := u.repo.List(ctx, publicOnly)
	if err != nil {
		return nil, err
	}
	if err := u.cache.Set(ctx, key, list, settingsCacheTTL); err != nil {
		log.WithError(err).Warnf("[settings][usecase] cache write failed key=%s", key)
	}
	return list, nil
}

func (u *SettingsUseCase) Get(ctx context.Context, actor entities.Actor, key string) (entities.SystemConfig, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.SystemConfig{}, ErrInvalidSettingKey
	}

	c, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.SystemConfig{}, err
	}
	if c.Key == "" || (!c.IsPublic && !actor.IsAdmin()) {
		return entities.SystemConfig{}, ErrSettingNotFound
	}
	return c, nil
}

func (u *SettingsUseCase) Create(ctx context.Context, actor entities.Actor, c entities.SystemConfig) (entities.SystemConfig, error) {
	if !actor.IsAdmin() {
		return entities.SystemConfig{}, ErrForbidden
	}
	c.Key = strings.TrimSpace(c.Key)
	if c.Key == "" {
		return entities.SystemConfig{}, ErrInvalidSettingKey
	}

	existing, err := u.repo.Get(ctx, c.Key)
	if err != nil {
		return entities.SystemConfig{}, err
	}
	if existing.Key != "" {
		return entities.SystemConfig{}, ErrSettingAlreadyExists
	}

	now := time.Now().UTC()
	c.UpdatedBy = actor.UserID
	c.CreatedAt = now
	c.UpdatedAt = now
	created, err := u.repo.Upsert(ctx, c)
	if err != nil {
		return entities.SystemConfig{}, err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionCreate, settingsEntityType, created.Key, nil, created)
	u.invalidate(ctx)
	return created, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, actor entities.Actor, key string, patch SettingPatch) (entities.SystemConfig, error) {
	if !actor.IsAdmin() {
		return entities.SystemConfig{}, ErrForbidden
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.SystemConfig{}, ErrInvalidSettingKey
	}

	before, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.SystemConfig{}, err
	}
	if before.Key == "" {
		return entities.SystemConfig{}, ErrSettingNotFound
	}

	after := before
	if patch.Value != nil {
		after.Value = *patch.Value
	}
	if patch.Description != nil {
		after.Description = *patch.Description
	}
	if patch.IsPublic != nil {
		after.IsPublic = *patch.IsPublic
	}
	after.UpdatedBy = actor.UserID
	after.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Upsert(ctx, after)
	if err != nil {
		return entities.SystemConfig{}, err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionUpdate, settingsEntityType, key, before, updated)
	u.invalidate(ctx)
	return updated, nil
}

func (u *SettingsUseCase) Delete(ctx context.Context, actor entities.Actor, key string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidSettingKey
	}

	before, err := u.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if before.Key == "" {
		return ErrSettingNotFound
	}
	if _, err := u.repo.Delete(ctx, key); err != nil {
		return err
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionDelete, settingsEntityType, key, before, nil)
	u.invalidate(ctx)
	return nil
}

func (u *SettingsUseCase) invalidate(ctx context.Context) {
	for _, key := range []string{settingsCacheKey(true), settingsCacheKey(false)} {
		if err := u.cache.Delete(ctx, key); err != nil {
			log.WithError(err).Warnf("[settings][usecase] cache invalidation failed key=%s", key)
		}
	}
}
