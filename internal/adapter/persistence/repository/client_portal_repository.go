package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type clientInvitationModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	ClientID   string    `gorm:"size:36;not null;index"`
	Email      string    `gorm:"size:255;not null"`
	Token      string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt  time.Time `gorm:"not null"`
	AcceptedAt *time.Time
	InvitedBy  string `gorm:"size:36"`
	CreatedAt  time.Time
}

func (clientInvitationModel) TableName() string { return "client_invitations" }

type clientPortalUserModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	ClientID     string `gorm:"size:36;not null;index"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	IsActive     bool   `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

func (clientPortalUserModel) TableName() string { return "client_portal_users" }

type ClientInvitationRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientInvitationRepository = (*ClientInvitationRepository)(nil)

func NewClientInvitationRepository(db *gorm.DB) *ClientInvitationRepository {
	return &ClientInvitationRepository{db: db}
}

func (r *ClientInvitationRepository) Create(ctx context.Context, inv entities.ClientInvitation) (entities.ClientInvitation, error) {
	m := clientInvitationModel{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		Email:      inv.Email,
		Token:      inv.Token,
		ExpiresAt:  inv.ExpiresAt.UTC(),
		AcceptedAt: utcPtr(inv.AcceptedAt),
		InvitedBy:  inv.InvitedBy,
		CreatedAt:  inv.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.ClientInvitation{}, err
	}
	return fromClientInvitationModel(m), nil
}

func (r *ClientInvitationRepository) GetByToken(ctx context.Context, token string) (entities.ClientInvitation, error) {
	var m clientInvitationModel
	err := conn(ctx, r.db).Where("token = ?", token).First(&m).Error
	if notFound(err) {
		return entities.ClientInvitation{}, nil
	}
	if err != nil {
		return entities.ClientInvitation{}, err
	}
	return fromClientInvitationModel(m), nil
}

func (r *ClientInvitationRepository) MarkAccepted(ctx context.Context, id string) error {
	return conn(ctx, r.db).Model(&clientInvitationModel{}).Where("id = ?", id).
		Update("accepted_at", time.Now().UTC()).Error
}

func fromClientInvitationModel(m clientInvitationModel) entities.ClientInvitation {
	return entities.ClientInvitation{
		ID:         m.ID,
		ClientID:   m.ClientID,
		Email:      m.Email,
		Token:      m.Token,
		ExpiresAt:  m.ExpiresAt.UTC(),
		AcceptedAt: utcPtr(m.AcceptedAt),
		InvitedBy:  m.InvitedBy,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

type ClientPortalUserRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientPortalUserRepository = (*ClientPortalUserRepository)(nil)

func NewClientPortalUserRepository(db *gorm.DB) *ClientPortalUserRepository {
	return &ClientPortalUserRepository{db: db}
}

func (r *ClientPortalUserRepository) Create(ctx context.Context, u entities.ClientPortalUser) (entities.ClientPortalUser, error) {
	m := clientPortalUserModel{
		ID:           u.ID,
		ClientID:     u.ClientID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		LastLoginAt:  utcPtr(u.LastLoginAt),
		CreatedAt:    u.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.ClientPortalUser{}, err
	}
	return fromClientPortalUserModel(m), nil
}

func (r *ClientPortalUserRepository) GetByID(ctx context.Context, id string) (entities.ClientPortalUser, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ClientPortalUserRepository) GetByEmail(ctx context.Context, email string) (entities.ClientPortalUser, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *ClientPortalUserRepository) TouchLogin(ctx context.Context, id string) error {
	return conn(ctx, r.db).Model(&clientPortalUserModel{}).Where("id = ?", id).
		Update("last_login_at", time.Now().UTC()).Error
}

func (r *ClientPortalUserRepository) first(ctx context.Context, query string, args ...any) (entities.ClientPortalUser, error) {
	var m clientPortalUserModel
	err := conn(ctx, r.db).Where(query, args...).First(&m).Error
	if notFound(err) {
		return entities.ClientPortalUser{}, nil
	}
	if err != nil {
		return entities.ClientPortalUser{}, err
	}
	return fromClientPortalUserModel(m), nil
}

func fromClientPortalUserModel(m clientPortalUserModel) entities.ClientPortalUser {
	return entities.ClientPortalUser{
		ID:           m.ID,
		ClientID:     m.ClientID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		LastLoginAt:  utcPtr(m.LastLoginAt),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
