package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"efectivio/internal/adapter/http/handlers/mocks"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newWorkspaceRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkspaceUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkspaceUseCase(ctrl)
	h := NewWorkspaceHandler(uc)

	r := gin.New()
	r.POST("/api/projects", h.CreateProject)
	r.GET("/api/projects/:id", h.GetProject)
	r.DELETE("/api/projects/:id", h.DeleteProject)
	r.POST("/api/projects/:id/tasks", h.CreateTask)
	r.GET("/api/projects/:id/tasks", h.ListTasks)
	r.POST("/api/appointments", h.CreateAppointment)
	r.GET("/api/appointments", h.ListAppointments)
	return r, uc
}

func TestWorkspaceHandler_Projects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		r, _ := newWorkspaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(`{"name":"Audit","status":"paused"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
			if p.Name != "Audit" || p.StartDate == nil || !p.Budget.Equal(decimal.NewFromInt(1500)) {
				t.Fatalf("unexpected project: %+v", p)
			}
			p.ID = "p-1"
			p.Status = entities.ProjectStatusActive
			return p, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(`{"name":"Audit","budget":"1500","start_date":"2024-04-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["budget"] != "1500.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().GetProject(gomock.Any(), "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().DeleteProject(gomock.Any(), "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestWorkspaceHandler_Tasks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("project id comes from the path", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task entities.Task) (entities.Task, error) {
			if task.ProjectID != "p-1" || task.Title != "Collect receipts" {
				t.Fatalf("unexpected task: %+v", task)
			}
			task.ID = "t-1"
			return task, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/projects/p-1/tasks", bytes.NewBufferString(`{"title":"Collect receipts","project_id":"other"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list for unknown project", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().ListTasks(gomock.Any(), "missing").Return(nil, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/missing/tasks", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkspaceHandler_Appointments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("starts_at required", func(t *testing.T) {
		r, _ := newWorkspaceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(`{"title":"Quarterly review"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list with range", func(t *testing.T) {
		r, uc := newWorkspaceRouter(t)

		uc.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.AppointmentFilter) ([]entities.Appointment, error) {
			if f.ClientID != "c-1" || f.From == nil || f.To == nil {
				t.Fatalf("unexpected filter: %+v", f)
			}
			if !f.From.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) || f.To.Day() != 31 || f.To.Hour() != 23 {
				t.Fatalf("unexpected range: %v - %v", f.From, f.To)
			}
			return []entities.Appointment{{ID: "a-1"}}, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/appointments?client_id=c-1&from=2024-05-01&to=2024-05-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		db     Pinger
		want   int
		status string
	}{
		{"no database", nil, http.StatusOK, "ok"},
		{"database up", fakePinger{}, http.StatusOK, "ok"},
		{"database down", fakePinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/api/health", NewHealthHandler(tc.db).Health)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["status"] != tc.status {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
