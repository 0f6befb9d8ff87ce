package request

import (
	"fmt"
	"strings"

	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClientRequest struct {
	Type         string `json:"type" validate:"in:individual,company"`
	Name         string `json:"name" validate:"required|maxLen:200"`
	CompanyName  string `json:"company_name" validate:"maxLen:200"`
	TaxID        string `json:"tax_id" validate:"maxLen:50"`
	Email        string `json:"email" validate:"email"`
	Phone        string `json:"phone" validate:"maxLen:50"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code" validate:"maxLen:20"`
	Country      string `json:"country"`
	PaymentTerms int    `json:"payment_terms" validate:"min:0|max:365"`
	Notes        string `json:"notes"`
}

func (r ClientRequest) ToEntity() (entities.Client, map[string]string) {
	if problems := Validate(&r); problems != nil {
		return entities.Client{}, problems
	}
	return entities.Client{
		Type:         entities.ClientType(r.Type),
		Name:         r.Name,
		CompanyName:  r.CompanyName,
		TaxID:        r.TaxID,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		City:         r.City,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
	}, nil
}

// ActiveRequest toggles is_active on clients and users.
type ActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r ActiveRequest) Resolve() (bool, map[string]string) {
	if r.IsActive == nil {
		return false, map[string]string{"is_active": "required"}
	}
	return *r.IsActive, nil
}

type ExpenseRequest struct {
	ClientID      string          `json:"client_id"`
	Category      string          `json:"category" validate:"required|maxLen:100"`
	Description   string          `json:"description" validate:"maxLen:1000"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Date          string          `json:"date"`
	Vendor        string          `json:"vendor" validate:"maxLen:200"`
	PaymentMethod string          `json:"payment_method" validate:"maxLen:50"`
	AccountID     string          `json:"account_id"`
	ReceiptFileID string          `json:"receipt_file_id"`
}

func (r ExpenseRequest) ToEntity() (entities.Expense, map[string]string) {
	problems := Validate(&r)
	if problems == nil {
		problems = map[string]string{}
	}
	e := entities.Expense{
		ClientID:      strings.TrimSpace(r.ClientID),
		Category:      strings.TrimSpace(r.Category),
		Description:   r.Description,
		Amount:        r.Amount,
		TaxAmount:     r.TaxAmount,
		Date:          parseDate("date", r.Date, problems),
		Vendor:        r.Vendor,
		PaymentMethod: r.PaymentMethod,
		AccountID:     strings.TrimSpace(r.AccountID),
		ReceiptFileID: strings.TrimSpace(r.ReceiptFileID),
	}
	return e, orNil(problems)
}

type AccountRequest struct {
	Code        string `json:"code" validate:"required|maxLen:20"`
	Name        string `json:"name" validate:"required|maxLen:200"`
	Type        string `json:"type" validate:"required|in:asset,liability,equity,revenue,expense"`
	ParentID    string `json:"parent_id"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ToEntity defaults is_active to true when omitted.
func (r AccountRequest) ToEntity() (entities.Account, map[string]string) {
	if problems := Validate(&r); problems != nil {
		return entities.Account{}, problems
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.Account{
		Code:        r.Code,
		Name:        r.Name,
		Type:        entities.AccountType(r.Type),
		ParentID:    r.ParentID,
		Description: r.Description,
		IsActive:    active,
	}, nil
}

type JournalLineRequest struct {
	AccountID   string          `json:"account_id"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type JournalEntryRequest struct {
	Date        string               `json:"date"`
	Description string               `json:"description" validate:"required|maxLen:500"`
	Reference   string               `json:"reference" validate:"maxLen:100"`
	Lines       []JournalLineRequest `json:"lines"`
}

// ToEntity maps the entry. Balancing is checked by the journal use case.
func (r JournalEntryRequest) ToEntity() (entities.JournalEntry, map[string]string) {
	problems := Validate(&r)
	if problems == nil {
		problems = map[string]string{}
	}
	e := entities.JournalEntry{
		Date:        parseDate("date", r.Date, problems),
		Description: strings.TrimSpace(r.Description),
		Reference:   strings.TrimSpace(r.Reference),
		Lines:       make([]entities.JournalLine, 0, len(r.Lines)),
	}
	for i, l := range r.Lines {
		if strings.TrimSpace(l.AccountID) == "" {
			problems[fmt.Sprintf("lines[%d].account_id", i)] = "required"
		}
		e.Lines = append(e.Lines, entities.JournalLine{
			Position:    i,
			AccountID:   strings.TrimSpace(l.AccountID),
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return e, orNil(problems)
}
