package main

import (
	"context"
	"errors"
	"fmt"

	"efectivio/internal/adapter/persistence/repository"
	"efectivio/internal/domain/entities"
	"efectivio/internal/infrastructure/cache"
	"efectivio/internal/usecase"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedActor = entities.Actor{Email: "seed@efectivio.local", Role: entities.RoleAdmin}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err := db.WithContext(cmd.Context()).AutoMigrate(repository.Models()...); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			log.Printf("[migrate] done tables=%d", len(repository.Models()))
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default chart of accounts, system settings and a white-label profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			accounts := usecase.NewAccountUseCase(repository.NewAccountRepository(db))
			n, err := accounts.SeedDefaultChart(ctx)
			if err != nil {
				return fmt.Errorf("seed chart of accounts: %w", err)
			}
			log.Printf("[seed] accounts created=%d", n)

			audit := repository.NewAuditLogRepository(db)
			settings := usecase.NewSettingsUseCase(repository.NewSystemConfigRepository(db), audit, cache.NoopCache{})
			defaults := []entities.SystemConfig{
				{Key: "company_name", Value: cfg.Business.CompanyName, Description: "Legal name printed on documents", IsPublic: true},
				{Key: "currency", Value: cfg.Business.Currency, Description: "Currency of every amount", IsPublic: true},
				{Key: "default_payment_terms", Value: fmt.Sprint(cfg.Business.DefaultPaymentTerms), Description: "Days until an invoice is due"},
				{Key: "default_tax_rate", Value: cfg.Business.DefaultTaxRate, Description: "Tax rate suggested for new items"},
			}
			created := 0
			for _, s := range defaults {
				if _, err := settings.Create(ctx, seedActor, s); err != nil {
					if errors.Is(err, usecase.ErrSettingAlreadyExists) {
						continue
					}
					return fmt.Errorf("seed setting %s: %w", s.Key, err)
				}
				created++
			}
			log.Printf("[seed] settings created=%d", created)

			whiteLabel := usecase.NewWhiteLabelUseCase(repository.NewWhiteLabelRepository(db), audit, cache.NoopCache{})
			profiles, err := whiteLabel.List(ctx)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				if _, err := whiteLabel.Create(ctx, seedActor, entities.WhiteLabel{CompanyName: cfg.Business.CompanyName}); err != nil {
					return fmt.Errorf("seed white label: %w", err)
				}
				log.Printf("[seed] white label profile created")
			}
			return nil
		},
	}
}
