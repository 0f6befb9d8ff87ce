package request

import (
	"strings"

	"efectivio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProjectRequest struct {
	Name        string          `json:"name" validate:"required|maxLen:200"`
	ClientID    string          `json:"client_id"`
	Status      string          `json:"status" validate:"in:active,on_hold,completed"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
}

func (r ProjectRequest) ToEntity() (entities.Project, map[string]string) {
	problems := Validate(&r)
	if problems == nil {
		problems = map[string]string{}
	}
	p := entities.Project{
		Name:        r.Name,
		ClientID:    strings.TrimSpace(r.ClientID),
		Status:      entities.ProjectStatus(r.Status),
		Budget:      r.Budget,
		Description: r.Description,
		StartDate:   parseOptionalDate("start_date", r.StartDate, problems),
		EndDate:     parseOptionalDate("end_date", r.EndDate, problems),
	}
	return p, orNil(problems)
}

type TaskRequest struct {
	Title    string `json:"title" validate:"required|maxLen:300"`
	Status   string `json:"status" validate:"in:todo,in_progress,done"`
	Assignee string `json:"assignee" validate:"maxLen:200"`
	DueDate  string `json:"due_date"`
}

func (r TaskRequest) ToEntity() (entities.Task, map[string]string) {
	problems := Validate(&r)
	if problems == nil {
		problems = map[string]string{}
	}
	t := entities.Task{
		Title:    r.Title,
		Status:   entities.TaskStatus(r.Status),
		Assignee: r.Assignee,
		DueDate:  parseOptionalDate("due_date", r.DueDate, problems),
	}
	return t, orNil(problems)
}

type AppointmentRequest struct {
	ClientID string `json:"client_id"`
	Title    string `json:"title" validate:"required|maxLen:300"`
	StartsAt string `json:"starts_at" validate:"required"`
	EndsAt   string `json:"ends_at"`
	Location string `json:"location" validate:"maxLen:300"`
	Notes    string `json:"notes"`
}

func (r AppointmentRequest) ToEntity() (entities.Appointment, map[string]string) {
	problems := Validate(&r)
	if problems == nil {
		problems = map[string]string{}
	}
	a := entities.Appointment{
		ClientID: strings.TrimSpace(r.ClientID),
		Title:    r.Title,
		StartsAt: parseDate("starts_at", r.StartsAt, problems),
		EndsAt:   parseDate("ends_at", r.EndsAt, problems),
		Location: r.Location,
		Notes:    r.Notes,
	}
	return a, orNil(problems)
}

// IdentityWebhookRequest is the user event body sent by the identity provider.
type IdentityWebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PublicMetadata struct {
			Role string `json:"role"`
		} `json:"public_metadata"`
	} `json:"data"`
}

func (r IdentityWebhookRequest) ToEvent() entities.IdentityEvent {
	identity := entities.Identity{
		ExternalID: strings.TrimSpace(r.Data.ID),
		FirstName:  r.Data.FirstName,
		LastName:   r.Data.LastName,
		Role:       entities.Role(r.Data.PublicMetadata.Role),
	}
	if len(r.Data.EmailAddresses) > 0 {
		identity.Email = strings.ToLower(strings.TrimSpace(r.Data.EmailAddresses[0].EmailAddress))
	}
	return entities.IdentityEvent{Type: entities.IdentityEventType(r.Type), Identity: identity}
}
