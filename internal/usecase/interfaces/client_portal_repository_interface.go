package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IClientInvitationRepository interface {
	Create(ctx context.Context, inv entities.ClientInvitation) (entities.ClientInvitation, error)
	GetByToken(ctx context.Context, token string) (entities.ClientInvitation, error)
	MarkAccepted(ctx context.Context, id string) error
}

type IClientPortalUserRepository interface {
	Create(ctx context.Context, u entities.ClientPortalUser) (entities.ClientPortalUser, error)
	GetByID(ctx context.Context, id string) (entities.ClientPortalUser, error)
	GetByEmail(ctx context.Context, email string) (entities.ClientPortalUser, error)
	TouchLogin(ctx context.Context, id string) error
}
