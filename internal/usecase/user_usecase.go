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
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidRole   = errors.New("invalid role")
	ErrUserInactive  = errors.New("user is inactive")
)

const userEntityType = "user"

type IUserUseCase interface {
	Me(ctx context.Context, actor entities.Actor) (entities.User, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.User, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.User, error)
	UpdateRole(ctx context.Context, actor entities.Actor, id string, role entities.Role) (entities.User, error)
	SetActive(ctx context.Context, actor entities.Actor, id string, active bool) (entities.User, error)
	SyncFromProvider(ctx context.Context, event entities.IdentityEvent) error
}

type UserUseCase struct {
	repo  interfaces.IUserRepository
	audit interfaces.IAuditLogRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, audit interfaces.IAuditLogRepository) *UserUseCase {
	return &UserUseCase{repo: repo, audit: audit}
}

func (u *UserUseCase) Me(ctx context.Context, actor entities.Actor) (entities.User, error) {
	return u.get(ctx, actor.UserID)
}

func (u *UserUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return u.repo.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.User, error) {
	if !actor.IsAdmin() && actor.UserID != strings.TrimSpace(id) {
		return entities.User{}, ErrForbidden
	}
	return u.get(ctx, id)
}

func (u *UserUseCase) UpdateRole(ctx context.Context, actor entities.Actor, id string, role entities.Role) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrForbidden
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidRole
	}
	before, err := u.get(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	after := before
	after.Role = role
	after.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, after)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	recordAudit(ctx, u.audit, actor, entities.AuditActionUpdate, userEntityType, updated.ID, before, updated)
	return updated, nil
}

func (u *UserUseCase) SetActive(ctx context.Context, actor entities.Actor, id string, active bool) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrForbidden
	}
	before, err := u.get(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	after := before
	after.IsActive = active
	after.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, after)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	action := entities.AuditActionDeactivate
	if active {
		action = entities.AuditActionActivate
	}
	recordAudit(ctx, u.audit, actor, action, userEntityType, updated.ID, before, updated)
	return updated, nil
}

// SyncFromProvider applies an identity-provider webhook event to the local user table.
func (u *UserUseCase) SyncFromProvider(ctx context.Context, event entities.IdentityEvent) error {
	externalID := strings.TrimSpace(event.Identity.ExternalID)
	if externalID == "" {
		return invalidField("data.id", "required")
	}
	log.Printf("[user][usecase] sync event=%s external_id=%s", event.Type, externalID)

	switch event.Type {
	case entities.IdentityEventUserCreated, entities.IdentityEventUserUpdated:
		_, err := u.repo.Upsert(ctx, userFromIdentity(event.Identity, nil))
		return err
	case entities.IdentityEventUserDeleted:
		deleted, err := u.repo.DeleteByExternalID(ctx, externalID)
		if err != nil {
			return err
		}
		if !deleted {
			log.Printf("[user][usecase] sync delete ignored, unknown external_id=%s", externalID)
		}
		return nil
	default:
		log.Printf("[user][usecase] sync ignored event=%s", event.Type)
		return nil
	}
}

func (u *UserUseCase) get(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// userFromIdentity builds the row inserted for a first-seen identity. The role
// only applies on insert; Upsert keeps the stored role of existing users.
func userFromIdentity(id entities.Identity, adminEmails map[string]struct{}) entities.User {
	now := time.Now().UTC()
	email := strings.ToLower(strings.TrimSpace(id.Email))

	role := entities.RoleUser
	if id.Role.Valid() {
		role = id.Role
	}
	if _, ok := adminEmails[email]; ok {
		role = entities.RoleAdmin
	}

	return entities.User{
		ID:         uuid.NewString(),
		ExternalID: strings.TrimSpace(id.ExternalID),
		Email:      email,
		FirstName:  strings.TrimSpace(id.FirstName),
		LastName:   strings.TrimSpace(id.LastName),
		Role:       role,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
