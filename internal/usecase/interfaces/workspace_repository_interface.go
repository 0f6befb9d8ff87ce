package interfaces

import (
	"context"

	"efectivio/internal/domain/entities"
)

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Task, error)
	Update(ctx context.Context, t entities.Task) (entities.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context, filter entities.AppointmentFilter) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
