package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "efectivio.yaml")
	yamlDoc := `business:
  company_name: Acme SL
  currency: USD
  default_payment_terms: 15
  ledger:
    revenue: "4100"
jobs:
  enabled: true
  interval_minutes: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	t.Setenv("EFECTIVIO_CONFIG", path)
	t.Setenv("CURRENCY", "GBP")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("ADMIN_EMAILS", " boss@example.com, ,ops@example.com")
	t.Setenv("JOBS_INTERVAL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Acme SL", cfg.Business.CompanyName)
	assert.Equal(t, "GBP", cfg.Business.Currency, "environment overrides the file")
	assert.Equal(t, 15, cfg.Business.DefaultPaymentTerms)
	assert.Equal(t, "4100", cfg.Business.Ledger.Revenue)
	assert.Equal(t, "1200", cfg.Business.Ledger.Receivable)
	assert.True(t, cfg.Jobs.Enabled)
	assert.Equal(t, uint64(5), cfg.Jobs.IntervalMinutes)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, []string{"boss@example.com", "ops@example.com"}, cfg.Auth.AdminEmails)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("EFECTIVIO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Business.DefaultPaymentTerms)
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv("EFECTIVIO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("PORT", "eighty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate(t *testing.T) {
	t.Run("reports every missing key", func(t *testing.T) {
		cfg := defaults()
		cfg.Mail.Driver = "gmail"

		err := cfg.Validate()
		require.Error(t, err)
		for _, key := range []string{"DB_HOST", "AUTH_JWT_PUBLIC_KEY", "PORTAL_JWT_SECRET", "S3_BUCKET", "GMAIL_REFRESH_TOKEN", "MERCADOPAGO_ACCESS_TOKEN"} {
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("dev setup", func(t *testing.T) {
		cfg := defaults()
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = "file:efectivio.db"
		cfg.Auth.Provider = "dev"
		cfg.Auth.PortalSecret = "secret"
		cfg.Storage.Driver = "local"
		cfg.Storage.LocalSignKey = "sign"
		cfg.Payments.Mock = true

		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := defaults()
		cfg.Database.Driver = "mysql"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `DATABASE_DRIVER "mysql"`)
	})
}
