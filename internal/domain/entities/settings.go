package entities

import "time"

// SystemConfig is a key/value application setting.
// Non-public settings are only visible to admins.
type SystemConfig struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WhiteLabel is a branding profile. At most one is active at a time.
type WhiteLabel struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	LogoURL        string    `json:"logo_url"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	Domain         string    `json:"domain"`
	SupportEmail   string    `json:"support_email"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultSettings are created by the seed command.
func DefaultSettings() []SystemConfig {
	return []SystemConfig{
		{Key: "company.name", Value: "Efectivio", Description: "Company name printed on documents", IsPublic: true},
		{Key: "invoice.payment_terms_days", Value: "30", Description: "Default days until an invoice is due", IsPublic: true},
		{Key: "invoice.default_tax_rate", Value: "21", Description: "Default tax rate for new lines", IsPublic: true},
		{Key: "currency", Value: "EUR", Description: "Currency code used on documents", IsPublic: true},
		{Key: "portal.invitation_ttl_days", Value: "7", Description: "Days a client portal invitation stays valid"},
	}
}
