package interfaces

import (
	"context"
	"time"
)

// ICache is a JSON value cache. Get reports false on a miss.
type ICache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
