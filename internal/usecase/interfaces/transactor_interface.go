package interfaces

import "context"

// ITransactor runs fn inside one database transaction. Repositories called
// with the context handed to fn take part in that transaction.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
