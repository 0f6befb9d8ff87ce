package interfaces

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
)

// IInvoiceRepository persists invoices together with their items.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	// UpdateStatus stamps paid_at when the new status is paid.
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]entities.Invoice, error)
}

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
