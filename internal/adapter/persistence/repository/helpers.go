package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type txKey struct{}

// GormTransactor opens a gorm transaction and stores it in the context handed to fn.
type GormTransactor struct {
	db *gorm.DB
}

var _ interfaces.ITransactor = (*GormTransactor)(nil)

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction joins an outer transaction when ctx already carries one.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// errNoRows aborts a transaction whose target row is missing; callers turn it
// into a zero-value result.
var errNoRows = errors.New("no rows affected")

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
