package routes

import (
	"efectivio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathQuotes       = "/quotes"
	PathInvoices     = "/invoices"
	PathExpenses     = "/expenses"
	PathAccounts     = "/accounts"
	PathJournal      = "/journal-entries"
	PathFiles        = "/files"
	PathSettings     = "/settings"
	PathWhiteLabel   = "/white-label"
	PathClientPortal = "/client-portal"
	PathProjects     = "/projects"
	PathTasks        = "/tasks"
	PathAppointments = "/appointments"
)

func addDocumentRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, quoteHandler *handlers.QuoteHandler,
	invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler, accountingHandler *handlers.AccountingHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.PATCH("/:id/active", clientHandler.SetClientActive)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.POST("/:id/convert", quoteHandler.ConvertQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.POST("/:id/payments", paymentHandler.PayInvoice)
		invoices.GET("/:id/payments", paymentHandler.ListInvoicePayments)
		invoices.POST("/:id/journal", accountingHandler.PostInvoice)
	}
}

func addAccountingRoutes(rg *gin.RouterGroup, h *handlers.AccountingHandler) {
	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", h.ListExpenses)
		expenses.POST("", h.CreateExpense)
		expenses.GET("/:id", h.GetExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
	}

	accounts := rg.Group(PathAccounts)
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.GET("/tree", h.AccountTree)
		accounts.GET("/:id", h.GetAccount)
		accounts.PUT("/:id", h.UpdateAccount)
	}

	journal := rg.Group(PathJournal)
	{
		journal.GET("", h.ListJournalEntries)
		journal.POST("", h.CreateJournalEntry)
		journal.GET("/:id", h.GetJournalEntry)
		journal.DELETE("/:id", h.DeleteJournalEntry)
	}
}

func addFileRoutes(rg *gin.RouterGroup, h *handlers.FileHandler) {
	files := rg.Group(PathFiles)
	{
		files.POST("/upload", h.UploadFile)
		files.GET("", h.ListFiles)
		files.GET("/category/:category", h.ListFilesByCategory)
		files.GET("/signed-url/:id", h.SignedURL)
		files.DELETE("/:id", h.DeleteFile)
	}
}

func addWorkspaceRoutes(rg *gin.RouterGroup, h *handlers.WorkspaceHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.GET("/:id/tasks", h.ListTasks)
		projects.POST("/:id/tasks", h.CreateTask)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
