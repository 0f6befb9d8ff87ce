package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "efectivio/internal/adapter/http/dto/request"
	response "efectivio/internal/adapter/http/dto/response"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler serves projects with their tasks, and appointments.
type WorkspaceHandler struct {
	usecase usecase.IWorkspaceUseCase
}

func NewWorkspaceHandler(uc usecase.IWorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{usecase: uc}
}

func (h *WorkspaceHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindJSON(c, &payload) {
		return
	}
	p, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.usecase.CreateProject(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *WorkspaceHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *WorkspaceHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *WorkspaceHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindJSON(c, &payload) {
		return
	}
	p, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	p.ID = c.Param("id")

	updated, err := h.usecase.UpdateProject(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

// DeleteProject removes the project and its tasks.
func (h *WorkspaceHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if !bindJSON(c, &payload) {
		return
	}
	t, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	t.ProjectID = c.Param("id")

	created, err := h.usecase.CreateTask(c.Request.Context(), t)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *WorkspaceHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *WorkspaceHandler) UpdateTask(c *gin.Context) {
	var payload request.TaskRequest
	if !bindJSON(c, &payload) {
		return
	}
	t, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	t.ID = c.Param("id")

	updated, err := h.usecase.UpdateTask(c.Request.Context(), t)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *WorkspaceHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	a, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.usecase.CreateAppointment(c.Request.Context(), middleware.ActorFrom(c), a)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAppointments accepts ?client_id=, ?from= and ?to=.
func (h *WorkspaceHandler) ListAppointments(c *gin.Context) {
	from, to, problems := queryRange(c)
	if validationFailed(c, problems) {
		return
	}
	filter := entities.AppointmentFilter{ClientID: strings.TrimSpace(c.Query("client_id")), From: from, To: to}

	appointments, err := h.usecase.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *WorkspaceHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *WorkspaceHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	a, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	a.ID = c.Param("id")

	updated, err := h.usecase.UpdateAppointment(c.Request.Context(), a)
	if err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *WorkspaceHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapWorkspaceError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkspaceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidAppointmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
