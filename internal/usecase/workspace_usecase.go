package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTaskID        = errors.New("invalid task id")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
)

type IWorkspaceUseCase interface {
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	DeleteTask(ctx context.Context, id string) error

	CreateAppointment(ctx context.Context, actor entities.Actor, a entities.Appointment) (entities.Appointment, error)
	GetAppointment(ctx context.Context, id string) (entities.Appointment, error)
	ListAppointments(ctx context.Context, filter entities.AppointmentFilter) ([]entities.Appointment, error)
	UpdateAppointment(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type WorkspaceUseCase struct {
	projects     interfaces.IProjectRepository
	tasks        interfaces.ITaskRepository
	appointments interfaces.IAppointmentRepository
}

var _ IWorkspaceUseCase = (*WorkspaceUseCase)(nil)

func NewWorkspaceUseCase(projects interfaces.IProjectRepository, tasks interfaces.ITaskRepository, appointments interfaces.IAppointmentRepository) *WorkspaceUseCase {
	return &WorkspaceUseCase{projects: projects, tasks: tasks, appointments: appointments}
}

func (u *WorkspaceUseCase) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := normalizeProject(&p); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.projects.Create(ctx, p)
}

func (u *WorkspaceUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *WorkspaceUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.projects.List(ctx)
}

func (u *WorkspaceUseCase) UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	existing, err := u.GetProject(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := normalizeProject(&p); err != nil {
		return entities.Project{}, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *WorkspaceUseCase) DeleteProject(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	deleted, err := u.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

func (u *WorkspaceUseCase) CreateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	if _, err := u.GetProject(ctx, t.ProjectID); err != nil {
		return entities.Task{}, err
	}
	if err := normalizeTask(&t); err != nil {
		return entities.Task{}, err
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.tasks.Create(ctx, t)
}

func (u *WorkspaceUseCase) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	if _, err := u.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return u.tasks.ListByProject(ctx, strings.TrimSpace(projectID))
}

func (u *WorkspaceUseCase) UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	existing, err := u.tasks.GetByID(ctx, t.ID)
	if err != nil {
		return entities.Task{}, err
	}
	if existing.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	if err := normalizeTask(&t); err != nil {
		return entities.Task{}, err
	}

	t.ProjectID = existing.ProjectID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	updated, err := u.tasks.Update(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *WorkspaceUseCase) DeleteTask(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaskID
	}
	deleted, err := u.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (u *WorkspaceUseCase) CreateAppointment(ctx context.Context, actor entities.Actor, a entities.Appointment) (entities.Appointment, error) {
	if err := normalizeAppointment(&a); err != nil {
		return entities.Appointment{}, err
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedBy = actor.UserID
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.appointments.Create(ctx, a)
}

func (u *WorkspaceUseCase) GetAppointment(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *WorkspaceUseCase) ListAppointments(ctx context.Context, filter entities.AppointmentFilter) ([]entities.Appointment, error) {
	return u.appointments.List(ctx, filter)
}

func (u *WorkspaceUseCase) UpdateAppointment(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	existing, err := u.GetAppointment(ctx, a.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := normalizeAppointment(&a); err != nil {
		return entities.Appointment{}, err
	}

	a.ID = existing.ID
	a.CreatedBy = existing.CreatedBy
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	updated, err := u.appointments.Update(ctx, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *WorkspaceUseCase) DeleteAppointment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	deleted, err := u.appointments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	return nil
}

func normalizeProject(p *entities.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Status == "" {
		p.Status = entities.ProjectStatusActive
	}

	fields := map[string]string{}
	if p.Name == "" {
		fields["name"] = "required"
	}
	if !p.Status.Valid() {
		fields["status"] = "must be one of active, on_hold, completed"
	}
	if p.Budget.IsNegative() {
		fields["budget"] = "must not be negative"
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	p.Budget = p.Budget.Round(2)
	return nil
}

func normalizeTask(t *entities.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Status == "" {
		t.Status = entities.TaskStatusTodo
	}

	fields := map[string]string{}
	if t.Title == "" {
		fields["title"] = "required"
	}
	if !t.Status.Valid() {
		fields["status"] = "must be one of todo, in_progress, done"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	return nil
}

func normalizeAppointment(a *entities.Appointment) error {
	a.Title = strings.TrimSpace(a.Title)

	fields := map[string]string{}
	if a.Title == "" {
		fields["title"] = "required"
	}
	if a.StartsAt.IsZero() {
		fields["starts_at"] = "required"
	}
	if a.EndsAt.IsZero() {
		a.EndsAt = a.StartsAt.Add(time.Hour)
	} else if a.EndsAt.Before(a.StartsAt) {
		fields["ends_at"] = "must not be before starts_at"
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidInput, fields)
	}
	return nil
}
