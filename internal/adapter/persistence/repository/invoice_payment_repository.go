package repository

import (
	"context"
	"encoding/json"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoicePaymentModel struct {
	ID                string          `gorm:"primaryKey;size:36"`
	InvoiceID         string          `gorm:"size:36;not null;index"`
	ProviderPaymentID string          `gorm:"size:64;index"`
	Status            string          `gorm:"size:16;not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaidAt            *time.Time
	ProviderPayload   string `gorm:"type:text"`
	CreatedAt         time.Time
}

func (invoicePaymentModel) TableName() string { return "invoice_payments" }

// InvoicePaymentRepository keeps one row per provider payment attempt. The raw
// provider response is stored verbatim.
type InvoicePaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentRepository)(nil)

func NewInvoicePaymentRepository(db *gorm.DB) *InvoicePaymentRepository {
	return &InvoicePaymentRepository{db: db}
}

func (r *InvoicePaymentRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	m := toInvoicePaymentModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.InvoicePayment{}, err
	}
	return fromInvoicePaymentModel(m), nil
}

func (r *InvoicePaymentRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	var rows []invoicePaymentModel
	err := conn(ctx, r.db).Where("invoice_id = ?", invoiceID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.InvoicePayment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromInvoicePaymentModel(m))
	}
	return out, nil
}

func toInvoicePaymentModel(p entities.InvoicePayment) invoicePaymentModel {
	return invoicePaymentModel{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		Amount:            p.Amount,
		PaidAt:            utcPtr(p.PaidAt),
		ProviderPayload:   string(p.ProviderPayload),
		CreatedAt:         p.CreatedAt.UTC(),
	}
}

func fromInvoicePaymentModel(m invoicePaymentModel) entities.InvoicePayment {
	var payload json.RawMessage
	if m.ProviderPayload != "" {
		payload = json.RawMessage(m.ProviderPayload)
	}
	return entities.InvoicePayment{
		ID:                m.ID,
		InvoiceID:         m.InvoiceID,
		ProviderPaymentID: m.ProviderPaymentID,
		Status:            entities.PaymentStatus(m.Status),
		Amount:            m.Amount,
		PaidAt:            utcPtr(m.PaidAt),
		ProviderPayload:   payload,
		CreatedAt:         m.CreatedAt.UTC(),
	}
}
