package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IFileRepository interface {
	Create(ctx context.Context, f entities.File) (entities.File, error)
	GetByID(ctx context.Context, id string) (entities.File, error)
	List(ctx context.Context, filter entities.FileFilter) ([]entities.File, error)
	Delete(ctx context.Context, id string) (bool, error)
}
