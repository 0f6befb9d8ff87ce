package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "efectivio/internal/adapter/http/dto/request"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), client)
	if err != nil {
		respondError(c, err, mapClientError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListClients accepts ?search= and ?active=true|false.
func (h *ClientHandler) ListClients(c *gin.Context) {
	filter := entities.ClientFilter{Search: strings.TrimSpace(c.Query("search"))}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			validationFailed(c, map[string]string{"active": "must be true or false"})
			return
		}
		filter.Active = &active
	}

	clients, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, mapClientError)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapClientError)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	client.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), client)
	if err != nil {
		respondError(c, err, mapClientError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetClientActive soft-disables or re-enables a client.
func (h *ClientHandler) SetClientActive(c *gin.Context) {
	var payload request.ActiveRequest
	if !bindJSON(c, &payload) {
		return
	}
	active, problems := payload.Resolve()
	if validationFailed(c, problems) {
		return
	}

	updated, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), active)
	if err != nil {
		respondError(c, err, mapClientError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
