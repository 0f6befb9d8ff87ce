package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"efectivio/internal/adapter/http/handlers/mocks"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newAccountingRouter(t *testing.T) (*gin.Engine, *mocks.MockIExpenseUseCase, *mocks.MockIAccountUseCase, *mocks.MockIJournalUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	expenses := mocks.NewMockIExpenseUseCase(ctrl)
	accounts := mocks.NewMockIAccountUseCase(ctrl)
	journal := mocks.NewMockIJournalUseCase(ctrl)
	h := NewAccountingHandler(expenses, accounts, journal)

	r := gin.New()
	r.GET("/api/expenses", h.ListExpenses)
	r.POST("/api/expenses", h.CreateExpense)
	r.DELETE("/api/expenses/:id", h.DeleteExpense)
	r.POST("/api/accounts", h.CreateAccount)
	r.GET("/api/accounts/tree", h.AccountTree)
	r.POST("/api/journal-entries", h.CreateJournalEntry)
	r.GET("/api/journal-entries", h.ListJournalEntries)
	r.POST("/api/invoices/:id/journal", h.PostInvoice)
	return r, expenses, accounts, journal
}

func TestClientHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			if c.Name != "Acme" {
				t.Fatalf("unexpected client: %+v", c)
			}
			c.ID = "c-1"
			c.IsActive = true
			return c, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(`{"name":"Acme","type":"company"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list parses active filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/api/clients", h.ListClients)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.ClientFilter) ([]entities.Client, error) {
			if f.Search != "acme" || f.Active == nil || *f.Active {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return []entities.Client{}, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/clients?search=acme&active=false", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list rejects bad active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/api/clients", h.ListClients)

		req := httptest.NewRequest(http.MethodGet, "/api/clients?active=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set active requires flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.PATCH("/api/clients/:id/active", h.SetClientActive)

		req := httptest.NewRequest(http.MethodPatch, "/api/clients/c-1/active", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set active not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.PATCH("/api/clients/:id/active", h.SetClientActive)

		uc.EXPECT().SetActive(gomock.Any(), "missing", false).Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/clients/missing/active", bytes.NewBufferString(`{"is_active":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAccountingHandler_Expenses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with range", func(t *testing.T) {
		r, expenses, _, _ := newAccountingRouter(t)

		expenses.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.ExpenseFilter) ([]entities.Expense, error) {
			if f.Category != "travel" || f.From == nil || f.To == nil {
				t.Fatalf("unexpected filter: %+v", f)
			}
			if !f.To.After(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)) {
				t.Fatalf("expected to bound at end of day, got %s", f.To)
			}
			return []entities.Expense{{ID: "e-1", Amount: decimal.RequireFromString("12.5")}}, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?category=travel&from=2024-01-01&to=2024-01-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["amount"] != "12.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list rejects bad date", func(t *testing.T) {
		r, _, _, _ := newAccountingRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?from=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create requires category", func(t *testing.T) {
		r, _, _, _ := newAccountingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBufferString(`{"amount":"10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		r, expenses, _, _ := newAccountingRouter(t)

		expenses.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrExpenseNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAccountingHandler_Accounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate code", func(t *testing.T) {
		r, _, accounts, _ := newAccountingRouter(t)

		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, usecase.ErrAccountCodeExists)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewBufferString(`{"code":"1000","name":"Cash","type":"asset"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		r, _, _, _ := newAccountingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewBufferString(`{"code":"1000","name":"Cash","type":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("tree", func(t *testing.T) {
		r, _, accounts, _ := newAccountingRouter(t)

		root := &entities.AccountNode{Account: entities.Account{ID: "a-1", Code: "1000"}}
		root.Children = []*entities.AccountNode{{Account: entities.Account{ID: "a-2", Code: "1100", ParentID: "a-1"}}}
		accounts.EXPECT().Tree(gomock.Any()).Return([]*entities.AccountNode{root}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/tree", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"a-2"`)) {
			t.Fatalf("child missing: %s", w.Body.String())
		}
	})
}

func TestAccountingHandler_Journal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("line without account", func(t *testing.T) {
		r, _, _, _ := newAccountingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/journal-entries", bytes.NewBufferString(`{"description":"Opening","lines":[{"debit":"10"},{"account_id":"a-2","credit":"10"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Fields["lines[0].account_id"] == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		r, _, _, journal := newAccountingRouter(t)

		unbalanced := &usecase.ValidationError{Err: usecase.ErrUnbalancedEntry, Fields: map[string]string{"lines": "debits 10.00 != credits 5.00"}}
		journal.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.JournalEntry{}, unbalanced)

		req := httptest.NewRequest(http.MethodPost, "/api/journal-entries", bytes.NewBufferString(`{"description":"Opening","lines":[{"account_id":"a-1","debit":"10"},{"account_id":"a-2","credit":"5"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "UNBALANCED_ENTRY" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("post invoice missing ledger account", func(t *testing.T) {
		r, _, _, journal := newAccountingRouter(t)

		journal.EXPECT().PostInvoice(gomock.Any(), gomock.Any(), "inv-1").Return(entities.JournalEntry{}, fmt.Errorf("%w: 4000", usecase.ErrLedgerAccountMissing))

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/journal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("post invoice with zero total", func(t *testing.T) {
		r, _, _, journal := newAccountingRouter(t)

		journal.EXPECT().PostInvoice(gomock.Any(), gomock.Any(), "inv-1").Return(entities.JournalEntry{}, fmt.Errorf("%w: invoice INV-1 has a zero total", usecase.ErrNothingToPost))

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/journal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "NOTHING_TO_POST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("post invoice success", func(t *testing.T) {
		r, _, _, journal := newAccountingRouter(t)

		journal.EXPECT().PostInvoice(gomock.Any(), gomock.Any(), "inv-1").Return(entities.JournalEntry{
			ID:         "je-1",
			Number:     "JE-000001",
			SourceType: entities.JournalSourceInvoice,
			SourceID:   "inv-1",
			Lines: []entities.JournalLine{
				{AccountID: "ar", Debit: decimal.NewFromInt(110)},
				{AccountID: "rev", Credit: decimal.NewFromInt(100)},
				{AccountID: "tax", Credit: decimal.NewFromInt(10)},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/journal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_debit"] != "110.00" || body["total_credit"] != "110.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
