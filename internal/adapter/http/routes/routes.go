package routes

import (
	_ "efectivio/docs" // swagger docs
	"efectivio/internal/adapter/http/handlers"
	"efectivio/internal/adapter/http/middleware"
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Clients   *handlers.ClientHandler
	Quotes    *handlers.QuoteHandler
	Invoices  *handlers.InvoiceHandler
	Payments  *handlers.InvoicePaymentHandler
	Accounts  *handlers.AccountingHandler
	Files     *handlers.FileHandler
	Admin     *handlers.AdminHandler
	Portal    *handlers.ClientPortalHandler
	Workspace *handlers.WorkspaceHandler
}

// Guards are the use cases the authentication middleware resolves sessions with.
type Guards struct {
	Auth   usecase.IAuthUseCase
	Portal usecase.IClientPortalUseCase
}

// NewRouter builds the gin engine with middleware, swagger and every route under /api.
func NewRouter(h Handlers, g Guards) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)

	// Rotas publicas
	api.GET("/health", h.Health.Health)
	addPublicRoutes(api, h)

	authenticated := api.Group("")
	authenticated.Use(middleware.Authenticate(g.Auth))
	authenticated.GET("/auth/me", h.Auth.Me)
	authenticated.POST("/client-portal/invite", h.Portal.Invite)
	addDocumentRoutes(authenticated, h.Clients, h.Quotes, h.Invoices, h.Payments, h.Accounts)
	addAccountingRoutes(authenticated, h.Accounts)
	addFileRoutes(authenticated, h.Files)
	addAdminRoutes(authenticated, h.Admin)
	addWorkspaceRoutes(authenticated, h.Workspace)

	portal := api.Group(PathClientPortal)
	portal.Use(middleware.PortalAuthenticate(g.Portal))
	portal.GET("/invoices", h.Portal.MyInvoices)
	portal.GET("/quotes", h.Portal.MyQuotes)

	return router
}

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group("/auth")
	{
		auth.POST("/sign-in", h.Auth.SignIn)
		auth.POST("/sign-up", h.Auth.SignUp)
		auth.POST("/sign-out", h.Auth.SignOut)
	}

	rg.POST("/webhooks/identity", h.Auth.IdentityWebhook)

	portal := rg.Group(PathClientPortal)
	{
		portal.GET("/verify-token/:token", h.Portal.VerifyToken)
		portal.POST("/register", h.Portal.Register)
		portal.POST("/login", h.Portal.Login)
	}

	// Signed links are the credential; the local storage driver checks them.
	rg.GET(PathFiles+"/download/:token", h.Files.Download)
	rg.GET(PathWhiteLabel+"/active", h.Admin.ActiveWhiteLabel)
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.ListSettings)
		settings.POST("", h.CreateSetting)
		settings.GET("/:key", h.GetSetting)
		settings.PUT("/:key", h.UpdateSetting)
		settings.DELETE("/:key", h.DeleteSetting)
	}

	whiteLabel := rg.Group(PathWhiteLabel)
	{
		whiteLabel.GET("", h.ListWhiteLabels)
		whiteLabel.POST("", h.CreateWhiteLabel)
		whiteLabel.POST("/deactivate-all", h.DeactivateAllWhiteLabels)
		whiteLabel.GET("/:id", h.GetWhiteLabel)
		whiteLabel.PUT("/:id", h.UpdateWhiteLabel)
		whiteLabel.DELETE("/:id", h.DeleteWhiteLabel)
		whiteLabel.POST("/:id/activate", h.ActivateWhiteLabel)
	}

	admin := rg.Group("")
	admin.Use(middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PATCH("/users/:id/role", h.UpdateUserRole)
		admin.PATCH("/users/:id/active", h.SetUserActive)
		admin.GET("/audit-logs", h.ListAuditLogs)
	}
}
