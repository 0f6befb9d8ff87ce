package handlers

import (
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

var errPortalSession = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing portal session", http.StatusUnauthorized)

type ClientPortalHandler struct {
	usecase usecase.IClientPortalUseCase
}

func NewClientPortalHandler(uc usecase.IClientPortalUseCase) *ClientPortalHandler {
	return &ClientPortalHandler{usecase: uc}
}

// Invite godoc
// @Summary Invite a client contact to the portal
// @Description Emails a one-time registration link valid for 7 days.
// @Tags client-portal
// @Accept json
// @Produce json
// @Param body body request.PortalInviteRequest true "client and email"
// @Success 201 {object} response.InvitationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /client-portal/invite [post]
// @Security Bearer
func (h *ClientPortalHandler) Invite(c *gin.Context) {
	var payload request.PortalInviteRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	inv, err := h.usecase.Invite(c.Request.Context(), middleware.ActorFrom(c), payload.ClientID, payload.Email)
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	log.Printf("[portal][handler] invitation created id=%s client_id=%s", inv.ID, inv.ClientID)
	c.JSON(http.StatusCreated, response.FromInvitation(inv))
}

func (h *ClientPortalHandler) VerifyToken(c *gin.Context) {
	view, err := h.usecase.VerifyToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvitationView(view))
}

func (h *ClientPortalHandler) Register(c *gin.Context) {
	var payload request.PortalRegisterRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	session, err := h.usecase.Register(c.Request.Context(), payload.Token, payload.Password)
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	c.JSON(http.StatusCreated, response.FromPortalSession(session))
}

func (h *ClientPortalHandler) Login(c *gin.Context) {
	var payload request.PortalLoginRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	c.JSON(http.StatusOK, response.FromPortalSession(session))
}

func (h *ClientPortalHandler) MyInvoices(c *gin.Context) {
	claims, ok := middleware.PortalClaims(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errPortalSession.ToHTTPError())
		return
	}
	invoices, err := h.usecase.MyInvoices(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *ClientPortalHandler) MyQuotes(c *gin.Context) {
	claims, ok := middleware.PortalClaims(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errPortalSession.ToHTTPError())
		return
	}
	quotes, err := h.usecase.MyQuotes(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err, mapClientPortalError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapClientPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvitationInvalid):
		return pkg.NewDomainErrorSimple("INVITATION_INVALID", "Invitation is invalid or already used", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvitationExpired):
		return pkg.NewDomainErrorSimple("INVITATION_EXPIRED", "Invitation has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientInactive):
		return pkg.NewDomainErrorSimple("CLIENT_INACTIVE", "Client is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrPortalUserExists):
		return pkg.NewDomainErrorSimple("PORTAL_USER_EXISTS", "A portal account with this email already exists", http.StatusConflict)
	case errors.Is(err, interfaces.ErrInvalidCredentials), errors.Is(err, interfaces.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
