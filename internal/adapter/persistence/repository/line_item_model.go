package repository

import (
	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemColumns is embedded by the quote and invoice item tables. It must
// stay exported: gorm ignores the fields of unexported embedded structs.
type LineItemColumns struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Position    int             `gorm:"not null"`
	Description string          `gorm:"type:text"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxRate     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func toLineItemColumns(it entities.LineItem) LineItemColumns {
	return LineItemColumns{
		ID:          it.ID,
		Position:    it.Position,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TaxRate:     it.TaxRate,
		Amount:      it.Amount,
	}
}

func fromLineItemColumns(c LineItemColumns, documentID string) entities.LineItem {
	return entities.LineItem{
		ID:          c.ID,
		DocumentID:  documentID,
		Position:    c.Position,
		Description: c.Description,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		TaxRate:     c.TaxRate,
		Amount:      c.Amount,
	}
}
