package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "efectivio/internal/adapter/http/dto/request"
	response "efectivio/internal/adapter/http/dto/response"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
)

// AccountingHandler serves expenses, the chart of accounts and journal entries.
type AccountingHandler struct {
	expenses usecase.IExpenseUseCase
	accounts usecase.IAccountUseCase
	journal  usecase.IJournalUseCase
}

func NewAccountingHandler(expenses usecase.IExpenseUseCase, accounts usecase.IAccountUseCase, journal usecase.IJournalUseCase) *AccountingHandler {
	return &AccountingHandler{expenses: expenses, accounts: accounts, journal: journal}
}

// queryRange reads ?from= and ?to= as dates. The upper bound is inclusive of
// the whole day when given as a calendar date.
func queryRange(c *gin.Context) (from, to *time.Time, problems map[string]string) {
	problems = map[string]string{}
	parse := func(key string) *time.Time {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return nil
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			if key == "to" {
				t = t.Add(24*time.Hour - time.Nanosecond)
			}
			return &t
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			t = t.UTC()
			return &t
		}
		problems[key] = "must be a date (2006-01-02) or an RFC 3339 timestamp"
		return nil
	}
	from, to = parse("from"), parse("to")
	if len(problems) == 0 {
		problems = nil
	}
	return from, to, problems
}

func (h *AccountingHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload) {
		return
	}
	e, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.expenses.Create(c.Request.Context(), middleware.ActorFrom(c), e)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(created))
}

func (h *AccountingHandler) ListExpenses(c *gin.Context) {
	from, to, problems := queryRange(c)
	if validationFailed(c, problems) {
		return
	}
	filter := entities.ExpenseFilter{Category: strings.TrimSpace(c.Query("category")), From: from, To: to}

	expenses, err := h.expenses.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *AccountingHandler) GetExpense(c *gin.Context) {
	e, err := h.expenses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(e))
}

func (h *AccountingHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload) {
		return
	}
	e, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	e.ID = c.Param("id")

	updated, err := h.expenses.Update(c.Request.Context(), e)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(updated))
}

func (h *AccountingHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountingHandler) CreateAccount(c *gin.Context) {
	var payload request.AccountRequest
	if !bindJSON(c, &payload) {
		return
	}
	a, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.accounts.Create(c.Request.Context(), a)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AccountingHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountingHandler) AccountTree(c *gin.Context) {
	tree, err := h.accounts.Tree(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *AccountingHandler) GetAccount(c *gin.Context) {
	a, err := h.accounts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AccountingHandler) UpdateAccount(c *gin.Context) {
	var payload request.AccountRequest
	if !bindJSON(c, &payload) {
		return
	}
	a, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}
	a.ID = c.Param("id")

	updated, err := h.accounts.Update(c.Request.Context(), a)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AccountingHandler) CreateJournalEntry(c *gin.Context) {
	var payload request.JournalEntryRequest
	if !bindJSON(c, &payload) {
		return
	}
	e, problems := payload.ToEntity()
	if validationFailed(c, problems) {
		return
	}

	created, err := h.journal.Create(c.Request.Context(), middleware.ActorFrom(c), e)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.FromJournalEntry(created))
}

func (h *AccountingHandler) ListJournalEntries(c *gin.Context) {
	from, to, problems := queryRange(c)
	if validationFailed(c, problems) {
		return
	}

	entries, err := h.journal.List(c.Request.Context(), entities.JournalFilter{From: from, To: to})
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, response.FromJournalEntries(entries))
}

func (h *AccountingHandler) GetJournalEntry(c *gin.Context) {
	e, err := h.journal.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, response.FromJournalEntry(e))
}

func (h *AccountingHandler) DeleteJournalEntry(c *gin.Context) {
	if err := h.journal.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.Status(http.StatusNoContent)
}

// PostInvoice books an invoice into the ledger: receivables against revenue and tax payable.
func (h *AccountingHandler) PostInvoice(c *gin.Context) {
	e, err := h.journal.PostInvoice(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.FromJournalEntry(e))
}

func mapAccountingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseID), errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrInvalidJournalEntryID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAccountParent):
		return pkg.NewDomainErrorSimple("INVALID_PARENT_ACCOUNT", "Invalid parent account", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJournalEntryNotFound):
		return pkg.NewDomainErrorSimple("JOURNAL_ENTRY_NOT_FOUND", "Journal entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountCodeExists):
		return pkg.NewDomainErrorSimple("ACCOUNT_CODE_EXISTS", "Account code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToPost):
		return pkg.NewDomainErrorSimple("NOTHING_TO_POST", "Invoice has nothing to post", http.StatusConflict)
	case errors.Is(err, usecase.ErrLedgerAccountMissing):
		return pkg.NewDomainErrorSimple("LEDGER_ACCOUNT_MISSING", "Ledger account missing from the chart of accounts", http.StatusConflict)
	default:
		return internalError(err)
	}
}
