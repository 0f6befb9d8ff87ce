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

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice godoc
// @Summary Create an invoice with its items
// @Description Issue date defaults to now and due date to issue date + 30 days.
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body request.InvoiceRequest true "invoice and items"
// @Success 201 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /invoices [post]
// @Security Bearer
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	inv, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), inv)
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := entities.InvoiceFilter{
		ClientID: strings.TrimSpace(c.Query("client_id")),
		Status:   entities.InvoiceStatus(strings.TrimSpace(c.Query("status"))),
	}
	invoices, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	inv, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	inv.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), inv)
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	if validationFailed(c, request.Validate(&payload)) {
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.InvoiceStatus(strings.TrimSpace(payload.Status)))
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid invoice status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientInactive):
		return pkg.NewDomainErrorSimple("CLIENT_INACTIVE", "Client is inactive", http.StatusConflict)
	default:
		return internalError(err)
	}
}
