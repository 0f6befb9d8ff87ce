package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type expenseModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	ClientID      string          `gorm:"size:36;index"`
	Category      string          `gorm:"size:64;index"`
	Description   string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Vendor        string          `gorm:"size:255"`
	PaymentMethod string          `gorm:"size:32"`
	AccountID     string          `gorm:"size:36"`
	ReceiptFileID string          `gorm:"size:36"`
	CreatedBy     string          `gorm:"size:36"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (expenseModel) TableName() string { return "expenses" }

type ExpenseRepository struct {
	db *gorm.DB
}

var _ interfaces.IExpenseRepository = (*ExpenseRepository)(nil)

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	m := toExpenseModel(e)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseModel(m), nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	var m expenseModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Expense{}, nil
	}
	if err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseModel(m), nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter entities.ExpenseFilter) ([]entities.Expense, error) {
	q := conn(ctx, r.db).Model(&expenseModel{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.UTC())
	}

	var rows []expenseModel
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Expense, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromExpenseModel(m))
	}
	return out, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	m := toExpenseModel(e)
	res := conn(ctx, r.db).Model(&expenseModel{ID: e.ID}).
		Select("client_id", "category", "description", "amount", "tax_amount", "date", "vendor",
			"payment_method", "account_id", "receipt_file_id", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Expense{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Expense{}, nil
	}
	return r.GetByID(ctx, e.ID)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&expenseModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toExpenseModel(e entities.Expense) expenseModel {
	return expenseModel{
		ID:            e.ID,
		ClientID:      e.ClientID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		TaxAmount:     e.TaxAmount,
		Date:          e.Date.UTC(),
		Vendor:        e.Vendor,
		PaymentMethod: e.PaymentMethod,
		AccountID:     e.AccountID,
		ReceiptFileID: e.ReceiptFileID,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func fromExpenseModel(m expenseModel) entities.Expense {
	return entities.Expense{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		TaxAmount:     m.TaxAmount,
		Date:          m.Date.UTC(),
		Vendor:        m.Vendor,
		PaymentMethod: m.PaymentMethod,
		AccountID:     m.AccountID,
		ReceiptFileID: m.ReceiptFileID,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}
