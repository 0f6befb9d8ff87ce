package interfaces

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
)

// IQuoteRepository persists quotes together with their items.
//
// Lookups of a missing quote return a zero-value Quote and a nil error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	// Update replaces the header fields and the full item list.
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	SetConvertedInvoice(ctx context.Context, id string, invoiceID string) error
	// Delete removes the items first and then the quote.
	Delete(ctx context.Context, id string) (bool, error)
	ListExpirable(ctx context.Context, before time.Time) ([]entities.Quote, error)
}
