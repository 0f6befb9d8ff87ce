package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusActive || s == ProjectStatusOnHold || s == ProjectStatusCompleted
}

type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ClientID    string          `json:"client_id,omitempty"`
	Status      ProjectStatus   `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusDone
}

type Task struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	Assignee  string     `json:"assignee,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Appointment struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id,omitempty"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentFilter struct {
	ClientID string
	From     *time.Time
	To       *time.Time
}
