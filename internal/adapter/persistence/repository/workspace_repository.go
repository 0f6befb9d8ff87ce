package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type projectModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Name        string          `gorm:"size:255;not null"`
	ClientID    string          `gorm:"size:36;index"`
	Status      string          `gorm:"size:16;not null;index"`
	Budget      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string          `gorm:"type:text"`
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectModel) TableName() string { return "projects" }

type taskModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	ProjectID string `gorm:"size:36;not null;index"`
	Title     string `gorm:"size:255;not null"`
	Status    string `gorm:"size:16;not null"`
	Assignee  string `gorm:"size:36"`
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (taskModel) TableName() string { return "tasks" }

type appointmentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	ClientID  string    `gorm:"size:36;index"`
	Title     string    `gorm:"size:255;not null"`
	StartsAt  time.Time `gorm:"not null;index"`
	EndsAt    time.Time `gorm:"not null"`
	Location  string    `gorm:"size:255"`
	Notes     string    `gorm:"type:text"`
	CreatedBy string    `gorm:"size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (appointmentModel) TableName() string { return "appointments" }

type ProjectRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Project{}, err
	}
	return fromProjectModel(m), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var m projectModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return fromProjectModel(m), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entities.Project, error) {
	var rows []projectModel
	if err := conn(ctx, r.db).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromProjectModel(m))
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	res := conn(ctx, r.db).Model(&projectModel{ID: p.ID}).
		Select("name", "client_id", "status", "budget", "description", "start_date", "end_date", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Project{}, nil
	}
	return r.GetByID(ctx, p.ID)
}

// Delete removes the project together with its tasks.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&taskModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&projectModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

type TaskRepository struct {
	db *gorm.DB
}

var _ interfaces.ITaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	m := toTaskModel(t)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Task{}, err
	}
	return fromTaskModel(m), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	var m taskModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Task{}, nil
	}
	if err != nil {
		return entities.Task{}, err
	}
	return fromTaskModel(m), nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Task, error) {
	var rows []taskModel
	if err := conn(ctx, r.db).Where("project_id = ?", projectID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Task, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromTaskModel(m))
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, t entities.Task) (entities.Task, error) {
	m := toTaskModel(t)
	res := conn(ctx, r.db).Model(&taskModel{ID: t.ID}).
		Select("title", "status", "assignee", "due_date", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Task{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Task{}, nil
	}
	return r.GetByID(ctx, t.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&taskModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type AppointmentRepository struct {
	db *gorm.DB
}

var _ interfaces.IAppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	m := toAppointmentModel(a)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentModel(m), nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	var m appointmentModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.Appointment{}, nil
	}
	if err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentModel(m), nil
}

// List returns appointments starting inside [From, To], earliest first.
func (r *AppointmentRepository) List(ctx context.Context, filter entities.AppointmentFilter) ([]entities.Appointment, error) {
	q := conn(ctx, r.db).Model(&appointmentModel{})
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.From != nil {
		q = q.Where("starts_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("starts_at <= ?", filter.To.UTC())
	}

	var rows []appointmentModel
	if err := q.Order("starts_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromAppointmentModel(m))
	}
	return out, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	m := toAppointmentModel(a)
	res := conn(ctx, r.db).Model(&appointmentModel{ID: a.ID}).
		Select("client_id", "title", "starts_at", "ends_at", "location", "notes", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Appointment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Appointment{}, nil
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&appointmentModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toProjectModel(p entities.Project) projectModel {
	return projectModel{
		ID:          p.ID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		Status:      string(p.Status),
		Budget:      p.Budget,
		Description: p.Description,
		StartDate:   utcPtr(p.StartDate),
		EndDate:     utcPtr(p.EndDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromProjectModel(m projectModel) entities.Project {
	return entities.Project{
		ID:          m.ID,
		Name:        m.Name,
		ClientID:    m.ClientID,
		Status:      entities.ProjectStatus(m.Status),
		Budget:      m.Budget,
		Description: m.Description,
		StartDate:   utcPtr(m.StartDate),
		EndDate:     utcPtr(m.EndDate),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toTaskModel(t entities.Task) taskModel {
	return taskModel{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Status:    string(t.Status),
		Assignee:  t.Assignee,
		DueDate:   utcPtr(t.DueDate),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromTaskModel(m taskModel) entities.Task {
	return entities.Task{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Title:     m.Title,
		Status:    entities.TaskStatus(m.Status),
		Assignee:  m.Assignee,
		DueDate:   utcPtr(m.DueDate),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toAppointmentModel(a entities.Appointment) appointmentModel {
	return appointmentModel{
		ID:        a.ID,
		ClientID:  a.ClientID,
		Title:     a.Title,
		StartsAt:  a.StartsAt.UTC(),
		EndsAt:    a.EndsAt.UTC(),
		Location:  a.Location,
		Notes:     a.Notes,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func fromAppointmentModel(m appointmentModel) entities.Appointment {
	return entities.Appointment{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Title:     m.Title,
		StartsAt:  m.StartsAt.UTC(),
		EndsAt:    m.EndsAt.UTC(),
		Location:  m.Location,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
