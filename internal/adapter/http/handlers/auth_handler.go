package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "efectivio/internal/adapter/http/dto/request"
	response "efectivio/internal/adapter/http/dto/response"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/usecase"
	"efectivio/internal/usecase/interfaces"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthHandler fronts the configured identity provider and its user webhooks.
type AuthHandler struct {
	auth     usecase.IAuthUseCase
	users    usecase.IUserUseCase
	verifier interfaces.IWebhookVerifier
}

// NewAuthHandler takes a nil verifier when no webhook secret is configured;
// webhook deliveries are then refused.
func NewAuthHandler(auth usecase.IAuthUseCase, users usecase.IUserUseCase, verifier interfaces.IWebhookVerifier) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, verifier: verifier}
}

// SignIn godoc
// @Summary Sign in with email and password
// @Description Only available with the dev identity provider.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.SignInRequest true "credentials"
// @Success 200 {object} response.SessionResponse
// @Failure 401 {object} pkg.HTTPError
// @Failure 501 {object} pkg.HTTPError
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	session, user, err := h.auth.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err, mapAuthError)
		return
	}
	c.JSON(http.StatusOK, response.SessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt, User: user})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	session, user, err := h.auth.SignUp(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err, mapAuthError)
		return
	}
	log.Printf("[auth][handler] sign-up success user_id=%s provider=%s", user.ID, h.auth.ProviderName())
	c.JSON(http.StatusCreated, response.SessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt, User: user})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		respondError(c, interfaces.ErrInvalidToken, mapAuthError)
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		respondError(c, err, mapAuthError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.Me(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err, mapAuthError)
		return
	}
	c.JSON(http.StatusOK, user)
}

// IdentityWebhook godoc
// @Summary Receive user events from the identity provider
// @Description svix-signed user.created, user.updated and user.deleted events.
// @Tags webhooks
// @Accept json
// @Success 204
// @Failure 401 {object} pkg.HTTPError
// @Router /webhooks/identity [post]
func (h *AuthHandler) IdentityWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if h.verifier == nil {
		respondError(c, interfaces.ErrInvalidSignature, mapAuthError)
		return
	}
	if err := h.verifier.Verify(c.Request.Header, body); err != nil {
		log.Printf("[webhook][handler] signature rejected svix_id=%s", c.GetHeader("svix-id"))
		respondError(c, err, mapAuthError)
		return
	}

	var payload request.IdentityWebhookRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	event := payload.ToEvent()
	log.Printf("[webhook][handler] received type=%s external_id=%s", event.Type, event.Identity.ExternalID)

	if err := h.users.SyncFromProvider(c.Request.Context(), event); err != nil {
		respondError(c, err, mapAuthError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidToken), errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", "User is inactive", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrIdentityExists):
		return pkg.NewDomainErrorSimple("IDENTITY_EXISTS", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, interfaces.ErrUnsupported):
		return pkg.NewDomainErrorSimple("NOT_SUPPORTED", "Operation not supported by the identity provider", http.StatusNotImplemented)
	default:
		return internalError(err)
	}
}
