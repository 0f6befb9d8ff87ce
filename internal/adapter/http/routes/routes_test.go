package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"efectivio/internal/adapter/http/handlers"
	"efectivio/internal/adapter/http/handlers/mocks"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	auth       *mocks.MockIAuthUseCase
	portal     *mocks.MockIClientPortalUseCase
	whiteLabel *mocks.MockIWhiteLabelUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routerMocks{
		auth:       mocks.NewMockIAuthUseCase(ctrl),
		portal:     mocks.NewMockIClientPortalUseCase(ctrl),
		whiteLabel: mocks.NewMockIWhiteLabelUseCase(ctrl),
	}
	users := mocks.NewMockIUserUseCase(ctrl)
	accounting := handlers.NewAccountingHandler(mocks.NewMockIExpenseUseCase(ctrl), mocks.NewMockIAccountUseCase(ctrl), mocks.NewMockIJournalUseCase(ctrl))

	h := Handlers{
		Health:    handlers.NewHealthHandler(nil),
		Auth:      handlers.NewAuthHandler(m.auth, users, nil),
		Clients:   handlers.NewClientHandler(mocks.NewMockIClientUseCase(ctrl)),
		Quotes:    handlers.NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl)),
		Invoices:  handlers.NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl)),
		Payments:  handlers.NewInvoicePaymentHandler(mocks.NewMockIInvoicePaymentUseCase(ctrl)),
		Accounts:  accounting,
		Files:     handlers.NewFileHandler(mocks.NewMockIFileUseCase(ctrl), nil, time.Hour),
		Admin:     handlers.NewAdminHandler(mocks.NewMockISettingsUseCase(ctrl), m.whiteLabel, users, mocks.NewMockIAuditUseCase(ctrl)),
		Portal:    handlers.NewClientPortalHandler(m.portal),
		Workspace: handlers.NewWorkspaceHandler(mocks.NewMockIWorkspaceUseCase(ctrl)),
	}
	return NewRouter(h, Guards{Auth: m.auth, Portal: m.portal}), m
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"GET /api/health",
		"POST /api/auth/sign-in",
		"GET /api/auth/me",
		"PATCH /api/clients/:id/active",
		"POST /api/quotes/:id/convert",
		"POST /api/invoices/:id/payments",
		"POST /api/invoices/:id/journal",
		"GET /api/accounts/tree",
		"DELETE /api/journal-entries/:id",
		"GET /api/files/category/:category",
		"GET /api/files/download/:token",
		"PUT /api/settings/:key",
		"GET /api/white-label/active",
		"POST /api/white-label/deactivate-all",
		"GET /api/audit-logs",
		"GET /api/client-portal/verify-token/:token",
		"GET /api/client-portal/invoices",
		"POST /api/webhooks/identity",
		"POST /api/projects/:id/tasks",
		"PUT /api/tasks/:id",
		"GET /api/appointments",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewRouter_Authentication(t *testing.T) {
	t.Run("health is public", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("staff routes need a bearer token", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("admin routes refuse other roles", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.User{ID: "u-1", Role: entities.RoleAccountant, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("active white label is public", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.whiteLabel.EXPECT().GetActive(gomock.Any()).Return(entities.WhiteLabel{ID: "wl-1", IsActive: true}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/white-label/active", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"wl-1"`)
	})

	t.Run("portal routes reject staff tokens", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.portal.EXPECT().Authenticate(gomock.Any(), "staff-token").Return(entities.PortalClaims{}, interfaces.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/api/client-portal/invoices", nil)
		req.Header.Set("Authorization", "Bearer staff-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
