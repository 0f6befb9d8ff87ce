package main

import (
	"fmt"
	"os"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/infrastructure/database"
	"efectivio/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// @title           Efectivio API
// @version         1.0
// @description     Accounting and invoicing backend: clients, quotes, invoices, ledger, files and client portal.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var envFile string

func main() {
	root := &cobra.Command{
		Use:           "efectivio",
		Short:         "Efectivio accounting and invoicing backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before the environment")

	root.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand())

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("[main] command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads and validates configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	db, err := database.OpenGorm(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, db, nil
}
