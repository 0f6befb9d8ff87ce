package repository

import (
	"context"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type clientModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Type         string `gorm:"size:16;not null"`
	Name         string `gorm:"size:255;not null;index"`
	CompanyName  string `gorm:"size:255"`
	TaxID        string `gorm:"size:64"`
	Email        string `gorm:"size:255;index"`
	Phone        string `gorm:"size:64"`
	Address      string `gorm:"type:text"`
	City         string `gorm:"size:128"`
	PostalCode   string `gorm:"size:32"`
	Country      string `gorm:"size:64"`
	PaymentTerms int    `gorm:"not null"`
	PortalAccess bool   `gorm:"not null"`
	IsActive     bool   `gorm:"not null;index"`
	Notes        string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (clientModel) TableName() string { return "clients" }

// ClientRepository persists clients. Rows are never hard-deleted.
type ClientRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Client{}, err
	}
	return fromClientModel(m), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var m clientModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientModel(m), nil
}

func (r *ClientRepository) List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	q := conn(ctx, r.db).Model(&clientModel{})
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(tax_id) LIKE ?", like, like, like, like)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	var rows []clientModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromClientModel(m))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	res := conn(ctx, r.db).Model(&clientModel{ID: c.ID}).
		Select("type", "name", "company_name", "tax_id", "email", "phone", "address", "city",
			"postal_code", "country", "payment_terms", "notes", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Client{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *ClientRepository) SetActive(ctx context.Context, id string, active bool) (entities.Client, error) {
	res := conn(ctx, r.db).Model(&clientModel{}).Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.Client{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ClientRepository) SetPortalAccess(ctx context.Context, id string, enabled bool) error {
	return conn(ctx, r.db).Model(&clientModel{}).Where("id = ?", id).
		Updates(map[string]any{"portal_access": enabled, "updated_at": time.Now().UTC()}).Error
}

func toClientModel(c entities.Client) clientModel {
	return clientModel{
		ID:           c.ID,
		Type:         string(c.Type),
		Name:         c.Name,
		CompanyName:  c.CompanyName,
		TaxID:        c.TaxID,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		PaymentTerms: c.PaymentTerms,
		PortalAccess: c.PortalAccess,
		IsActive:     c.IsActive,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromClientModel(m clientModel) entities.Client {
	return entities.Client{
		ID:           m.ID,
		Type:         entities.ClientType(m.Type),
		Name:         m.Name,
		CompanyName:  m.CompanyName,
		TaxID:        m.TaxID,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		PostalCode:   m.PostalCode,
		Country:      m.Country,
		PaymentTerms: m.PaymentTerms,
		PortalAccess: m.PortalAccess,
		IsActive:     m.IsActive,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}
