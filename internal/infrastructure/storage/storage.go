package storage

import (
	"context"
	"fmt"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"
)

// New builds the object storage selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (interfaces.IObjectStorage, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3Storage(ctx, cfg)
	case "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
