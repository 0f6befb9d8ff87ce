package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"efectivio/internal/adapter/http/handlers/mocks"
	"efectivio/internal/domain/entities"
	"efectivio/internal/infrastructure/identity"
	"efectivio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-in", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewBufferString(`{"email":"nope","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-in", h.SignIn)

		auth.EXPECT().SignIn(gomock.Any(), "a@b.com", "wrong").Return(entities.AuthSession{}, entities.User{}, interfaces.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("provider hosted sign-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-in", h.SignIn)

		auth.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret").Return(entities.AuthSession{}, entities.User{}, interfaces.ErrUnsupported)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotImplemented {
			t.Fatalf("expected 501, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-in", h.SignIn)

		auth.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret").Return(
			entities.AuthSession{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)},
			entities.User{ID: "u-1", Email: "a@b.com", Role: entities.RoleUser, IsActive: true},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"token":"tok"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_SignUpAndOut(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sign-up duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-up", h.SignUp)

		auth.EXPECT().SignUp(gomock.Any(), entities.SignUpInput{Email: "a@b.com", Password: "longenough"}).Return(entities.AuthSession{}, entities.User{}, interfaces.ErrIdentityExists)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", bytes.NewBufferString(`{"email":"a@b.com","password":"longenough"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("sign-out without token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-out", h.SignOut)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("sign-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/auth/sign-out", h.SignOut)

		auth.EXPECT().SignOut(gomock.Any(), "tok").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-out", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func signSvix(t *testing.T, key []byte, id string, ts time.Time, body string) http.Header {
	t.Helper()
	stamp := strconv.FormatInt(ts.Unix(), 10)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id + "." + stamp + "." + body))
	h := http.Header{}
	h.Set("svix-id", id)
	h.Set("svix-timestamp", stamp)
	h.Set("svix-signature", "v1,"+base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	return h
}

func TestAuthHandler_IdentityWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	key := []byte("webhook-signing-key")
	verifier, err := identity.NewSvixVerifier("whsec_" + base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	const body = `{"type":"user.created","data":{"id":"ext-1","first_name":"Ana","email_addresses":[{"email_address":"Ana@Example.com"}]}}`

	t.Run("no verifier configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/api/webhooks/identity", h.IdentityWebhook)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/identity", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl), verifier)

		r := gin.New()
		r.POST("/api/webhooks/identity", h.IdentityWebhook)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/identity", bytes.NewBufferString(body+" "))
		req.Header = signSvix(t, key, "msg_1", time.Now(), body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("stale timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl), verifier)

		r := gin.New()
		r.POST("/api/webhooks/identity", h.IdentityWebhook)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/identity", bytes.NewBufferString(body))
		req.Header = signSvix(t, key, "msg_1", time.Now().Add(-10*time.Minute), body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("syncs user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), users, verifier)

		r := gin.New()
		r.POST("/api/webhooks/identity", h.IdentityWebhook)

		users.EXPECT().SyncFromProvider(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.IdentityEvent) error {
			if ev.Type != entities.IdentityEventUserCreated || ev.Identity.ExternalID != "ext-1" || ev.Identity.Email != "ana@example.com" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/identity", bytes.NewBufferString(body))
		req.Header = signSvix(t, key, "msg_1", time.Now(), body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
