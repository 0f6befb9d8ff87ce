package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"efectivio/internal/adapter/http/handlers"
	"efectivio/internal/adapter/http/routes"
	"efectivio/internal/adapter/persistence/repository"
	"efectivio/internal/infrastructure/cache"
	"efectivio/internal/infrastructure/config"
	"efectivio/internal/infrastructure/database"
	"efectivio/internal/infrastructure/identity"
	"efectivio/internal/infrastructure/jobs"
	"efectivio/internal/infrastructure/mail"
	"efectivio/internal/infrastructure/payments"
	"efectivio/internal/infrastructure/storage"
	"efectivio/internal/usecase"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, db)
		},
	}
}

func auditStore(ctx context.Context, cfg config.AuditConfig, db *gorm.DB) (interfaces.IAuditLogRepository, error) {
	if cfg.Store != "dynamodb" {
		return repository.NewAuditLogRepository(db), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect dynamodb: %w", err)
	}
	log.Printf("[audit] using dynamodb table=%s", cfg.Table)
	return repository.NewAuditLogDynamoRepository(ddb, cfg.Table), nil
}

func serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	audit, err := auditStore(ctx, cfg.Audit, db)
	if err != nil {
		return err
	}
	appCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	objectStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	var downloader handlers.Downloader
	if local, ok := objectStorage.(*storage.LocalStorage); ok {
		downloader = local
	}

	hasher := identity.NewBcryptHasher()
	provider, err := identity.NewProvider(cfg.Auth, hasher)
	if err != nil {
		return fmt.Errorf("failed to init identity provider: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	var verifier interfaces.IWebhookVerifier
	if cfg.Auth.WebhookSecret != "" {
		svix, err := identity.NewSvixVerifier(cfg.Auth.WebhookSecret)
		if err != nil {
			return fmt.Errorf("invalid webhook secret: %w", err)
		}
		verifier = svix
	} else {
		log.Warn("[auth] AUTH_WEBHOOK_SECRET not set, identity webhooks will be refused")
	}
	mailer, err := mail.New(ctx, cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to init mailer: %w", err)
	}
	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		return fmt.Errorf("failed to init payment gateway: %w", err)
	}

	tx := repository.NewGormTransactor(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	ledger := cfg.Business.Ledger
	journalUC := usecase.NewJournalUseCase(repository.NewJournalRepository(db), accountRepo, invoiceRepo, usecase.LedgerCodes{
		Cash:       ledger.Cash,
		Receivable: ledger.Receivable,
		Revenue:    ledger.Revenue,
		TaxPayable: ledger.TaxPayable,
	})
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, invoiceRepo, clientRepo, tx)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)
	authUC := usecase.NewAuthUseCase(provider, userRepo, cfg.Auth.AdminEmails)
	portalUC := usecase.NewClientPortalUseCase(usecase.ClientPortalDeps{
		Clients:     clientRepo,
		Invitations: repository.NewClientInvitationRepository(db),
		PortalUsers: repository.NewClientPortalUserRepository(db),
		Invoices:    invoiceRepo,
		Quotes:      quoteRepo,
		Hasher:      hasher,
		Tokens:      identity.NewPortalTokens(cfg.Auth.PortalSecret, cfg.Auth.PortalTokenTTL),
		Mailer:      mailer,
		Tx:          tx,
		BaseURL:     cfg.HTTP.PortalBaseURL,
	})
	userUC := usecase.NewUserUseCase(userRepo, audit)

	h := routes.Handlers{
		Health:   handlers.NewHealthHandler(sqlDB),
		Auth:     handlers.NewAuthHandler(authUC, userUC, verifier),
		Clients:  handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo, cfg.Business.DefaultPaymentTerms)),
		Quotes:   handlers.NewQuoteHandler(quoteUC),
		Invoices: handlers.NewInvoiceHandler(invoiceUC),
		Payments: handlers.NewInvoicePaymentHandler(usecase.NewInvoicePaymentUseCase(
			repository.NewInvoicePaymentRepository(db), invoiceRepo, gateway, tx, journalUC)),
		Accounts: handlers.NewAccountingHandler(
			usecase.NewExpenseUseCase(repository.NewExpenseRepository(db), accountRepo),
			usecase.NewAccountUseCase(accountRepo),
			journalUC,
		),
		Files: handlers.NewFileHandler(
			usecase.NewFileUseCase(repository.NewFileRepository(db), objectStorage, cfg.Storage.SignedURLTTL, cfg.Storage.MaxUploadSize),
			downloader,
			cfg.Storage.SignedURLTTL,
		),
		Admin: handlers.NewAdminHandler(
			usecase.NewSettingsUseCase(repository.NewSystemConfigRepository(db), audit, appCache),
			usecase.NewWhiteLabelUseCase(repository.NewWhiteLabelRepository(db), audit, appCache),
			userUC,
			usecase.NewAuditUseCase(audit),
		),
		Portal: handlers.NewClientPortalHandler(portalUC),
		Workspace: handlers.NewWorkspaceHandler(usecase.NewWorkspaceUseCase(
			repository.NewProjectRepository(db), repository.NewTaskRepository(db), repository.NewAppointmentRepository(db))),
	}
	router := routes.NewRouter(h, routes.Guards{Auth: authUC, Portal: portalUC})

	if cfg.Jobs.Enabled {
		sweeper := jobs.NewSweeper(invoiceUC, quoteUC)
		sweeper.Start(cfg.Jobs.IntervalMinutes)
		defer sweeper.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
