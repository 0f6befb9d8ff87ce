package entities

import "time"

type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCompany    ClientType = "company"
)

func (t ClientType) Valid() bool {
	return t == ClientTypeIndividual || t == ClientTypeCompany
}

// Client is a customer that receives quotes and invoices.
// Clients are never hard-deleted; IsActive switches them off.
type Client struct {
	ID           string     `json:"id"`
	Type         ClientType `json:"type"`
	Name         string     `json:"name"`
	CompanyName  string     `json:"company_name"`
	TaxID        string     `json:"tax_id"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	PostalCode   string     `json:"postal_code"`
	Country      string     `json:"country"`
	PaymentTerms int        `json:"payment_terms"`
	PortalAccess bool       `json:"portal_access"`
	IsActive     bool       `json:"is_active"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ClientFilter struct {
	Search string
	Active *bool
}
