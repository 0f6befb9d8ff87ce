package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type ISystemConfigRepository interface {
	List(ctx context.Context, publicOnly bool) ([]entities.SystemConfig, error)
	Get(ctx context.Context, key string) (entities.SystemConfig, error)
	Upsert(ctx context.Context, c entities.SystemConfig) (entities.SystemConfig, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type IWhiteLabelRepository interface {
	Create(ctx context.Context, w entities.WhiteLabel) (entities.WhiteLabel, error)
	GetByID(ctx context.Context, id string) (entities.WhiteLabel, error)
	GetActive(ctx context.Context) (entities.WhiteLabel, error)
	List(ctx context.Context) ([]entities.WhiteLabel, error)
	Update(ctx context.Context, w entities.WhiteLabel) (entities.WhiteLabel, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Activate switches every other profile off in the same transaction.
	Activate(ctx context.Context, id string) (entities.WhiteLabel, error)
	DeactivateAll(ctx context.Context) (int64, error)
}

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	// Upsert inserts by external id or refreshes email and names of an existing row.
	Upsert(ctx context.Context, u entities.User) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	DeleteByExternalID(ctx context.Context, externalID string) (bool, error)
}

// IAuditLogRepository is implemented by the SQL store and by DynamoDB.
type IAuditLogRepository interface {
	Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error)
	List(ctx context.Context, filter entities.AuditLogFilter) ([]entities.AuditLog, error)
}
