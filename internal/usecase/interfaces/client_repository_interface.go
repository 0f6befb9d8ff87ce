package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Client, error)
	SetPortalAccess(ctx context.Context, id string, enabled bool) error
}
