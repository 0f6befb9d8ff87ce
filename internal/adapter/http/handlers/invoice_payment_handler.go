package handlers

import (
	"errors"
	"net/http"

	request "efectivio/internal/adapter/http/dto/request"
	response "efectivio/internal/adapter/http/dto/response"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// InvoicePaymentHandler charges invoices through the payment provider.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayInvoice godoc
// @Summary Pay an invoice
// @Description The amount charged is the invoice total. The body is the provider payment request, bare or wrapped in provider_payload.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "invoice id"
// @Param body body request.InvoicePaymentRequest false "provider payload"
// @Success 201 {object} response.InvoicePaymentResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /invoices/{id}/payments [post]
// @Security Bearer
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[payment][handler] create start invoice_id=%s", invoiceID)

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] read body failed invoice_id=%s err=%v", invoiceID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	payload, err := request.ParseInvoicePayment(raw)
	if err != nil {
		log.Printf("[payment][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Pay(c.Request.Context(), invoiceID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed invoice_id=%s err=%v", invoiceID, err)
		respondError(c, err, mapInvoicePaymentError)
		return
	}
	log.Printf("[payment][handler] create success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromInvoicePayment(created))
}

// ListInvoicePayments returns every payment attempt of an invoice, newest first.
func (h *InvoicePaymentHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID := c.Param("id")

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] list failed invoice_id=%s err=%v", invoiceID, err)
		respondError(c, err, mapInvoicePaymentError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice cannot be paid in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the credentials", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
