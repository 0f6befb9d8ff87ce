package response

import (
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
)

type ExpenseResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id,omitempty"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	TaxAmount     string    `json:"tax_amount"`
	Date          time.Time `json:"date"`
	Vendor        string    `json:"vendor"`
	PaymentMethod string    `json:"payment_method"`
	AccountID     string    `json:"account_id,omitempty"`
	ReceiptFileID string    `json:"receipt_file_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		ClientID:      e.ClientID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        money(e.Amount),
		TaxAmount:     money(e.TaxAmount),
		Date:          e.Date,
		Vendor:        e.Vendor,
		PaymentMethod: e.PaymentMethod,
		AccountID:     e.AccountID,
		ReceiptFileID: e.ReceiptFileID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromExpenses(es []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromExpense(e))
	}
	return out
}

type JournalLineResponse struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	AccountID   string `json:"account_id"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

type JournalEntryResponse struct {
	ID          string                `json:"id"`
	Number      string                `json:"number"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Reference   string                `json:"reference"`
	SourceType  string                `json:"source_type,omitempty"`
	SourceID    string                `json:"source_id,omitempty"`
	TotalDebit  string                `json:"total_debit"`
	TotalCredit string                `json:"total_credit"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"created_at"`
}

func FromJournalEntry(e entities.JournalEntry) JournalEntryResponse {
	debit, credit := e.Totals()
	res := JournalEntryResponse{
		ID:          e.ID,
		Number:      e.Number,
		Date:        e.Date,
		Description: e.Description,
		Reference:   e.Reference,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		TotalDebit:  money(debit),
		TotalCredit: money(credit),
		Lines:       make([]JournalLineResponse, 0, len(e.Lines)),
		CreatedAt:   e.CreatedAt,
	}
	for _, l := range e.Lines {
		res.Lines = append(res.Lines, JournalLineResponse{
			ID:          l.ID,
			Position:    l.Position,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       money(l.Debit),
			Credit:      money(l.Credit),
		})
	}
	return res
}

func FromJournalEntries(es []entities.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromJournalEntry(e))
	}
	return out
}

type ProjectResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClientID    string     `json:"client_id,omitempty"`
	Status      string     `json:"status"`
	Budget      string     `json:"budget"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		Status:      string(p.Status),
		Budget:      money(p.Budget),
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type FileResponse struct {
	entities.File
	URL string `json:"url,omitempty"`
}

type SignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      entities.User `json:"user"`
}

type PortalSessionResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt time.Time                 `json:"expires_at"`
	User      entities.ClientPortalUser `json:"user"`
}

func FromPortalSession(s usecase.PortalSession) PortalSessionResponse {
	return PortalSessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: s.User}
}

// InvitationResponse omits the token; it only travels by email.
type InvitationResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func FromInvitation(i entities.ClientInvitation) InvitationResponse {
	return InvitationResponse{ID: i.ID, ClientID: i.ClientID, Email: i.Email, ExpiresAt: i.ExpiresAt, CreatedAt: i.CreatedAt}
}

type InvitationViewResponse struct {
	Valid      bool      `json:"valid"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
}

func FromInvitationView(v usecase.InvitationView) InvitationViewResponse {
	name := v.Client.CompanyName
	if name == "" {
		name = v.Client.Name
	}
	return InvitationViewResponse{
		Valid:      true,
		Email:      v.Invitation.Email,
		ExpiresAt:  v.Invitation.ExpiresAt,
		ClientID:   v.Client.ID,
		ClientName: name,
	}
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
