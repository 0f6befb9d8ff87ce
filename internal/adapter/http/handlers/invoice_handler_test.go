package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"invoice":{"client_id":"c-1","status":"bogus"},"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"invoice":{"client_id":"missing"},"items":[{"description":"Hours","quantity":"1","unit_price":"10"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		issue := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Invoice{
			ID:        "inv-1",
			Number:    "INV-0001",
			ClientID:  "c-1",
			Status:    entities.InvoiceStatusDraft,
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 0, 30),
			Subtotal:  decimal.NewFromInt(10),
			Total:     decimal.NewFromInt(10),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"invoice":{"client_id":"c-1","issue_date":"2024-03-01"},"items":[{"description":"Hours","quantity":"1","unit_price":"10"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" || body["tax_amount"] != "0.00" || body["due_date"] != "2024-03-31T00:00:00Z" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/api/invoices", h.ListInvoices)

	uc.EXPECT().List(gomock.Any(), entities.InvoiceFilter{ClientID: "c-1", Status: entities.InvoiceStatusOverdue}).Return([]entities.Invoice{{ID: "inv-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?client_id=c-1&status=overdue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "inv-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/api/invoices/:id", h.GetInvoice)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInvoicePaymentHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/api/invoices/:id/payments", h.PayInvoice)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/api/invoices/:id/payments", h.PayInvoice)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	mapped := []struct {
		err  error
		want int
	}{
		{usecase.ErrInvoiceAlreadyPaid, http.StatusConflict},
		{usecase.ErrInvoiceNotPayable, http.StatusConflict},
		{usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{fmt.Errorf("%w: timeout", usecase.ErrPaymentGatewayFailed), http.StatusBadGateway},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
	}
	for _, tc := range mapped {
		t.Run("maps "+tc.err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
			h := NewInvoicePaymentHandler(uc)

			r := gin.New()
			r.POST("/api/invoices/:id/payments", h.PayInvoice)

			uc.EXPECT().Pay(gomock.Any(), "inv-1", gomock.Any()).Return(entities.InvoicePayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success unwraps provider_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/api/invoices/:id/payments", h.PayInvoice)

		now := time.Now().UTC()
		uc.EXPECT().Pay(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.InvoicePayment, error) {
				var decoded map[string]any
				if err := json.Unmarshal(payload, &decoded); err != nil || decoded["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", string(payload))
				}
				return entities.InvoicePayment{
					ID:        "pay-1",
					InvoiceID: "inv-1",
					Status:    entities.PaymentStatusApproved,
					Amount:    decimal.RequireFromString("110"),
					PaidAt:    &now,
					CreatedAt: now,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "110.00" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoicePaymentHandler_ListInvoicePayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
	h := NewInvoicePaymentHandler(uc)

	r := gin.New()
	r.GET("/api/invoices/:id/payments", h.ListInvoicePayments)

	uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.InvoicePayment{{ID: "pay-2"}, {ID: "pay-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["payment_id"] != "pay-2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
