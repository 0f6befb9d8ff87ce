package repository

import (
	"context"
	"errors"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	Number    string          `gorm:"size:32;index"`
	ClientID  string          `gorm:"size:36;not null;index"`
	QuoteID   string          `gorm:"size:36;index"`
	Status    string          `gorm:"size:16;not null;index"`
	IssueDate time.Time       `gorm:"not null"`
	DueDate   time.Time       `gorm:"not null;index"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Total     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaidAt    *time.Time
	Notes     string `gorm:"type:text"`
	CreatedBy string `gorm:"size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []invoiceItemModel `gorm:"foreignKey:InvoiceID"`
}

func (invoiceModel) TableName() string { return "invoices" }

type invoiceItemModel struct {
	LineItemColumns `gorm:"embedded"`
	InvoiceID string `gorm:"size:36;not null;index"`
}

func (invoiceItemModel) TableName() string { return "invoice_items" }

type InvoiceRepository struct {
	db *gorm.DB
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	m := toInvoiceModel(inv)
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return insertInvoiceItems(tx, m.ID, m.Items)
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceModel(m), nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return getInvoice(conn(ctx, r.db), id)
}

func (r *InvoiceRepository) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	q := conn(ctx, r.db).Preload("Items", byPosition)
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []invoiceModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromInvoiceModels(rows), nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	m := toInvoiceModel(inv)
	header := m
	header.Items = nil
	var updated entities.Invoice
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&invoiceModel{ID: inv.ID}).
			Select("number", "client_id", "status", "issue_date", "due_date", "subtotal",
				"tax_amount", "total", "paid_at", "notes", "updated_at").
			Updates(&header)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoRows
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&invoiceItemModel{}).Error; err != nil {
			return err
		}
		if err := insertInvoiceItems(tx, inv.ID, m.Items); err != nil {
			return err
		}

		var err error
		updated, err = getInvoice(tx, inv.ID)
		return err
	})
	if errors.Is(err, errNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return updated, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC()
	changes := map[string]any{"status": string(status), "updated_at": now}
	if status == entities.InvoiceStatusPaid {
		changes["paid_at"] = now
	}

	db := conn(ctx, r.db)
	res := db.Model(&invoiceModel{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return entities.Invoice{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Invoice{}, nil
	}
	return getInvoice(db, id)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&invoiceItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&invoiceModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ListOverdue returns sent invoices due before asOf, without items.
func (r *InvoiceRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.Invoice, error) {
	var rows []invoiceModel
	err := conn(ctx, r.db).
		Where("status = ? AND due_date < ?", string(entities.InvoiceStatusSent), asOf.UTC()).
		Order("due_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return fromInvoiceModels(rows), nil
}

func getInvoice(db *gorm.DB, id string) (entities.Invoice, error) {
	var m invoiceModel
	err := db.Preload("Items", byPosition).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceModel(m), nil
}

func insertInvoiceItems(tx *gorm.DB, invoiceID string, items []invoiceItemModel) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].InvoiceID = invoiceID
	}
	return tx.Create(&items).Error
}

func toInvoiceModel(inv entities.Invoice) invoiceModel {
	items := make([]invoiceItemModel, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, invoiceItemModel{LineItemColumns: toLineItemColumns(it), InvoiceID: inv.ID})
	}
	return invoiceModel{
		ID:        inv.ID,
		Number:    inv.Number,
		ClientID:  inv.ClientID,
		QuoteID:   inv.QuoteID,
		Status:    string(inv.Status),
		IssueDate: inv.IssueDate.UTC(),
		DueDate:   inv.DueDate.UTC(),
		Subtotal:  inv.Subtotal,
		TaxAmount: inv.TaxAmount,
		Total:     inv.Total,
		PaidAt:    utcPtr(inv.PaidAt),
		Notes:     inv.Notes,
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
		Items:     items,
	}
}

func fromInvoiceModel(m invoiceModel) entities.Invoice {
	items := make([]entities.LineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, fromLineItemColumns(it.LineItemColumns, m.ID))
	}
	return entities.Invoice{
		ID:        m.ID,
		Number:    m.Number,
		ClientID:  m.ClientID,
		QuoteID:   m.QuoteID,
		Status:    entities.InvoiceStatus(m.Status),
		IssueDate: m.IssueDate.UTC(),
		DueDate:   m.DueDate.UTC(),
		Subtotal:  m.Subtotal,
		TaxAmount: m.TaxAmount,
		Total:     m.Total,
		PaidAt:    utcPtr(m.PaidAt),
		Notes:     m.Notes,
		Items:     items,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func fromInvoiceModels(rows []invoiceModel) []entities.Invoice {
	out := make([]entities.Invoice, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromInvoiceModel(m))
	}
	return out
}
