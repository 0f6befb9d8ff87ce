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

type quoteModel struct {
	ID                   string          `gorm:"primaryKey;size:36"`
	Number               string          `gorm:"size:32;index"`
	ClientID             string          `gorm:"size:36;not null;index"`
	Status               string          `gorm:"size:16;not null;index"`
	IssueDate            time.Time       `gorm:"not null"`
	ValidUntil           *time.Time      `gorm:"index"`
	Subtotal             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxAmount            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Total                decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Notes                string          `gorm:"type:text"`
	ConvertedToInvoiceID string          `gorm:"size:36"`
	CreatedBy            string          `gorm:"size:36"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Items                []quoteItemModel `gorm:"foreignKey:QuoteID"`
}

func (quoteModel) TableName() string { return "quotes" }

type quoteItemModel struct {
	LineItemColumns `gorm:"embedded"`
	QuoteID string `gorm:"size:36;not null;index"`
}

func (quoteItemModel) TableName() string { return "quote_items" }

// QuoteRepository persists quotes and their items. Multi-row writes run in a
// transaction, joining the caller's one when the context carries it.
type QuoteRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	m := toQuoteModel(q)
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return insertQuoteItems(tx, m.ID, m.Items)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteModel(m), nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return getQuote(conn(ctx, r.db), id)
}

func (r *QuoteRepository) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	q := conn(ctx, r.db).Preload("Items", byPosition)
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []quoteModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromQuoteModel(m))
	}
	return out, nil
}

func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	m := toQuoteModel(q)
	header := m
	header.Items = nil
	var updated entities.Quote
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&quoteModel{ID: q.ID}).
			Select("number", "client_id", "status", "issue_date", "valid_until", "subtotal",
				"tax_amount", "total", "notes", "updated_at").
			Updates(&header)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoRows
		}
		if err := tx.Where("quote_id = ?", q.ID).Delete(&quoteItemModel{}).Error; err != nil {
			return err
		}
		if err := insertQuoteItems(tx, q.ID, m.Items); err != nil {
			return err
		}

		var err error
		updated, err = getQuote(tx, q.ID)
		return err
	})
	if errors.Is(err, errNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return updated, nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	db := conn(ctx, r.db)
	res := db.Model(&quoteModel{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.Quote{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return getQuote(db, id)
}

func (r *QuoteRepository) SetConvertedInvoice(ctx context.Context, id string, invoiceID string) error {
	return conn(ctx, r.db).Model(&quoteModel{}).Where("id = ?", id).
		Updates(map[string]any{"converted_to_invoice_id": invoiceID, "updated_at": time.Now().UTC()}).Error
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&quoteItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&quoteModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *QuoteRepository) ListExpirable(ctx context.Context, before time.Time) ([]entities.Quote, error) {
	var rows []quoteModel
	err := conn(ctx, r.db).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", string(entities.QuoteStatusSent), before.UTC()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromQuoteModel(m))
	}
	return out, nil
}

func getQuote(db *gorm.DB, id string) (entities.Quote, error) {
	var m quoteModel
	err := db.Preload("Items", byPosition).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteModel(m), nil
}

func insertQuoteItems(tx *gorm.DB, quoteID string, items []quoteItemModel) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].QuoteID = quoteID
	}
	return tx.Create(&items).Error
}

func toQuoteModel(q entities.Quote) quoteModel {
	items := make([]quoteItemModel, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteItemModel{LineItemColumns: toLineItemColumns(it), QuoteID: q.ID})
	}
	return quoteModel{
		ID:                   q.ID,
		Number:               q.Number,
		ClientID:             q.ClientID,
		Status:               string(q.Status),
		IssueDate:            q.IssueDate.UTC(),
		ValidUntil:           utcPtr(q.ValidUntil),
		Subtotal:             q.Subtotal,
		TaxAmount:            q.TaxAmount,
		Total:                q.Total,
		Notes:                q.Notes,
		ConvertedToInvoiceID: q.ConvertedToInvoiceID,
		CreatedBy:            q.CreatedBy,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
		Items:                items,
	}
}

func fromQuoteModel(m quoteModel) entities.Quote {
	items := make([]entities.LineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, fromLineItemColumns(it.LineItemColumns, m.ID))
	}
	return entities.Quote{
		ID:                   m.ID,
		Number:               m.Number,
		ClientID:             m.ClientID,
		Status:               entities.QuoteStatus(m.Status),
		IssueDate:            m.IssueDate.UTC(),
		ValidUntil:           utcPtr(m.ValidUntil),
		Subtotal:             m.Subtotal,
		TaxAmount:            m.TaxAmount,
		Total:                m.Total,
		Notes:                m.Notes,
		ConvertedToInvoiceID: m.ConvertedToInvoiceID,
		Items:                items,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}
