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
	log "github.com/sirupsen/logrus"
)

// QuoteHandler handles HTTP requests for quotes and their conversion into invoices.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary Create a quote with its items
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body request.QuoteRequest true "quote and items"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quotes [post]
// @Security Bearer
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	q, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), q)
	if err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// ListQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param client_id query string false "client filter"
// @Param status query string false "status filter"
// @Success 200 {array} response.QuoteResponse
// @Router /quotes [get]
// @Security Bearer
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter := entities.QuoteFilter{
		ClientID: strings.TrimSpace(c.Query("client_id")),
		Status:   entities.QuoteStatus(strings.TrimSpace(c.Query("status"))),
	}
	quotes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote replaces the quote header and all of its items.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	q, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	q.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(strings.TrimSpace(payload.Status)))
	if err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapQuoteError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertQuote godoc
// @Summary Convert a quote into a new draft invoice
// @Description Not idempotent: every call creates a new invoice and the quote points at the latest one.
// @Tags quotes
// @Produce json
// @Param id path string true "quote id"
// @Success 201 {object} response.InvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{id}/convert [post]
// @Security Bearer
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote][handler] convert start quote_id=%s", quoteID)

	inv, err := h.usecase.ConvertToInvoice(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[quote][handler] convert failed quote_id=%s err=%v", quoteID, err)
		respondError(c, err, mapQuoteError)
		return
	}
	log.Printf("[quote][handler] convert success quote_id=%s invoice_id=%s", quoteID, inv.ID)
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientInactive):
		return pkg.NewDomainErrorSimple("CLIENT_INACTIVE", "Client is inactive", http.StatusConflict)
	default:
		return internalError(err)
	}
}
