// Package config loads process configuration from the environment (and .env),
// with business defaults read from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "efectivio.yaml"

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Mail     MailConfig
	Cache    CacheConfig
	Payments PaymentsConfig
	Audit    AuditConfig
	Jobs     JobsConfig
	Business BusinessConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	PortalBaseURL string
}

type DatabaseConfig struct {
	Driver   string // postgres | sqlite
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type AuthConfig struct {
	Provider       string // jwt | dev
	PublicKeyPEM   string // base64 encoded
	Issuer         string
	WebhookSecret  string
	PortalSecret   string
	PortalTokenTTL time.Duration
	DevStorePath   string
	AdminEmails    []string
}

type StorageConfig struct {
	Driver        string // s3 | local
	Bucket        string
	Region        string
	Endpoint      string
	SignedURLTTL  time.Duration
	MaxUploadSize int64
	LocalDir      string
	LocalSignKey  string
	PublicBaseURL string
}

type MailConfig struct {
	Driver       string // gmail | log
	Sender       string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

type CacheConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (c CacheConfig) Enabled() bool {
	return c.Host != ""
}

type PaymentsConfig struct {
	AccessToken string
	Mock        bool
	Timeout     time.Duration
}

type AuditConfig struct {
	Store    string // sql | dynamodb
	Table    string
	Endpoint string
	Region   string
}

type JobsConfig struct {
	Enabled         bool
	IntervalMinutes uint64
}

// BusinessConfig comes from the YAML file; environment values override it.
type BusinessConfig struct {
	CompanyName         string       `yaml:"company_name"`
	Currency            string       `yaml:"currency"`
	DefaultPaymentTerms int          `yaml:"default_payment_terms"`
	DefaultTaxRate      string       `yaml:"default_tax_rate"`
	Ledger              LedgerConfig `yaml:"ledger"`
}

type LedgerConfig struct {
	Cash       string `yaml:"cash"`
	Receivable string `yaml:"receivable"`
	Revenue    string `yaml:"revenue"`
	TaxPayable string `yaml:"tax_payable"`
}

type LogConfig struct {
	Level  string
	Format string // json | text
}

type fileConfig struct {
	Business BusinessConfig `yaml:"business"`
	Jobs     struct {
		Enabled         *bool  `yaml:"enabled"`
		IntervalMinutes uint64 `yaml:"interval_minutes"`
	} `yaml:"jobs"`
}

// Load reads .env (when present), then the YAML file named by EFECTIVIO_CONFIG,
// then the environment. A missing YAML file is not an error.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	fc, err := loadFile(getEnvOrDefault("EFECTIVIO_CONFIG", defaultConfigFile))
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	cfg.Business = mergeBusiness(cfg.Business, fc.Business)
	if fc.Jobs.Enabled != nil {
		cfg.Jobs.Enabled = *fc.Jobs.Enabled
	}
	if fc.Jobs.IntervalMinutes > 0 {
		cfg.Jobs.IntervalMinutes = fc.Jobs.IntervalMinutes
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port:          8080,
			ReadTimeout:   15 * time.Second,
			WriteTimeout:  30 * time.Second,
			PortalBaseURL: "http://localhost:5173",
		},
		Database: DatabaseConfig{Driver: "postgres", Port: 5432, SSLMode: "disable"},
		Auth: AuthConfig{
			Provider:       "jwt",
			PortalTokenTTL: 24 * time.Hour,
			DevStorePath:   "efectivio-dev.db",
		},
		Storage: StorageConfig{
			Driver:        "s3",
			Region:        "us-east-1",
			SignedURLTTL:  time.Hour,
			MaxUploadSize: 20 << 20,
			LocalDir:      "uploads",
		},
		Mail:     MailConfig{Driver: "log"},
		Payments: PaymentsConfig{Timeout: 20 * time.Second},
		Audit:    AuditConfig{Store: "sql", Table: "audit_logs", Region: "us-east-1"},
		Jobs:     JobsConfig{IntervalMinutes: 60},
		Business: BusinessConfig{
			CompanyName:         "Efectivio",
			Currency:            "EUR",
			DefaultPaymentTerms: 30,
			DefaultTaxRate:      "21",
			Ledger: LedgerConfig{
				Cash:       "1000",
				Receivable: "1200",
				Revenue:    "4000",
				TaxPayable: "2100",
			},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config: %w", err)
	}
	return fc, nil
}

func mergeBusiness(base, file BusinessConfig) BusinessConfig {
	if file.CompanyName != "" {
		base.CompanyName = file.CompanyName
	}
	if file.Currency != "" {
		base.Currency = file.Currency
	}
	if file.DefaultPaymentTerms > 0 {
		base.DefaultPaymentTerms = file.DefaultPaymentTerms
	}
	if file.DefaultTaxRate != "" {
		base.DefaultTaxRate = file.DefaultTaxRate
	}
	if file.Ledger.Cash != "" {
		base.Ledger.Cash = file.Ledger.Cash
	}
	if file.Ledger.Receivable != "" {
		base.Ledger.Receivable = file.Ledger.Receivable
	}
	if file.Ledger.Revenue != "" {
		base.Ledger.Revenue = file.Ledger.Revenue
	}
	if file.Ledger.TaxPayable != "" {
		base.Ledger.TaxPayable = file.Ledger.TaxPayable
	}
	return base
}

func applyEnv(c *Config) error {
	var err error

	if c.HTTP.Port, err = parseIntEnv("PORT", c.HTTP.Port); err != nil {
		return err
	}
	if c.HTTP.ReadTimeout, err = parseDurationEnv("HTTP_READ_TIMEOUT", c.HTTP.ReadTimeout); err != nil {
		return err
	}
	if c.HTTP.WriteTimeout, err = parseDurationEnv("HTTP_WRITE_TIMEOUT", c.HTTP.WriteTimeout); err != nil {
		return err
	}
	c.HTTP.PortalBaseURL = getEnvOrDefault("PORTAL_BASE_URL", c.HTTP.PortalBaseURL)

	c.Database.Driver = strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", c.Database.Driver))
	c.Database.DSN = os.Getenv("DATABASE_URL")
	c.Database.Host = os.Getenv("DB_HOST")
	if c.Database.Port, err = parseIntEnv("DB_PORT", c.Database.Port); err != nil {
		return err
	}
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = os.Getenv("DB_NAME")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", c.Database.SSLMode)

	c.Auth.Provider = strings.ToLower(getEnvOrDefault("AUTH_PROVIDER", c.Auth.Provider))
	c.Auth.PublicKeyPEM = os.Getenv("AUTH_JWT_PUBLIC_KEY")
	c.Auth.Issuer = os.Getenv("AUTH_JWT_ISSUER")
	c.Auth.WebhookSecret = os.Getenv("AUTH_WEBHOOK_SECRET")
	c.Auth.PortalSecret = os.Getenv("PORTAL_JWT_SECRET")
	if c.Auth.PortalTokenTTL, err = parseDurationEnv("PORTAL_TOKEN_TTL", c.Auth.PortalTokenTTL); err != nil {
		return err
	}
	c.Auth.DevStorePath = getEnvOrDefault("AUTH_DEV_STORE", c.Auth.DevStorePath)
	c.Auth.AdminEmails = splitList(os.Getenv("ADMIN_EMAILS"))

	c.Storage.Driver = strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", c.Storage.Driver))
	c.Storage.Bucket = os.Getenv("S3_BUCKET")
	c.Storage.Region = getEnvOrDefault("S3_REGION", getEnvOrDefault("AWS_REGION", c.Storage.Region))
	c.Storage.Endpoint = os.Getenv("S3_ENDPOINT")
	if c.Storage.SignedURLTTL, err = parseDurationEnv("STORAGE_SIGNED_URL_TTL", c.Storage.SignedURLTTL); err != nil {
		return err
	}
	if c.Storage.MaxUploadSize, err = parseInt64Env("STORAGE_MAX_UPLOAD_BYTES", c.Storage.MaxUploadSize); err != nil {
		return err
	}
	c.Storage.LocalDir = getEnvOrDefault("STORAGE_LOCAL_DIR", c.Storage.LocalDir)
	c.Storage.LocalSignKey = os.Getenv("STORAGE_LOCAL_SIGNING_KEY")
	c.Storage.PublicBaseURL = getEnvOrDefault("PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%d", c.HTTP.Port))

	c.Mail.Driver = strings.ToLower(getEnvOrDefault("MAIL_DRIVER", c.Mail.Driver))
	c.Mail.Sender = os.Getenv("MAIL_SENDER")
	c.Mail.ClientID = os.Getenv("GMAIL_CLIENT_ID")
	c.Mail.ClientSecret = os.Getenv("GMAIL_CLIENT_SECRET")
	c.Mail.RefreshToken = os.Getenv("GMAIL_REFRESH_TOKEN")

	c.Cache.Host = os.Getenv("REDIS_HOST")
	c.Cache.Port = getEnvOrDefault("REDIS_PORT", "6379")
	c.Cache.Username = os.Getenv("REDIS_USERNAME")
	c.Cache.Password = os.Getenv("REDIS_PASSWORD")

	c.Payments.AccessToken = os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	c.Payments.Mock = isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK"))
	if c.Payments.Timeout, err = parseDurationEnv("PAYMENT_TIMEOUT", c.Payments.Timeout); err != nil {
		return err
	}

	c.Audit.Store = strings.ToLower(getEnvOrDefault("AUDIT_STORE", c.Audit.Store))
	c.Audit.Table = getEnvOrDefault("AUDIT_TABLE", c.Audit.Table)
	c.Audit.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	c.Audit.Region = getEnvOrDefault("AWS_REGION", c.Audit.Region)

	if v := os.Getenv("JOBS_ENABLED"); v != "" {
		c.Jobs.Enabled = isTruthy(v)
	}
	if v := os.Getenv("JOBS_INTERVAL_MINUTES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid JOBS_INTERVAL_MINUTES: %q", v)
		}
		c.Jobs.IntervalMinutes = n
	}

	c.Business.CompanyName = getEnvOrDefault("COMPANY_NAME", c.Business.CompanyName)
	c.Business.Currency = getEnvOrDefault("CURRENCY", c.Business.Currency)
	if c.Business.DefaultPaymentTerms, err = parseIntEnv("DEFAULT_PAYMENT_TERMS", c.Business.DefaultPaymentTerms); err != nil {
		return err
	}

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", c.Log.Format))
	return nil
}

// Validate reports every missing or invalid key for the selected drivers.
func (c *Config) Validate() error {
	var problems []string
	missing := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, key+" is required")
		}
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSN == "" {
			missing("DB_HOST", c.Database.Host)
			missing("DB_USER", c.Database.User)
			missing("DB_NAME", c.Database.Name)
		}
	case "sqlite":
		missing("DATABASE_URL", c.Database.DSN)
	default:
		problems = append(problems, fmt.Sprintf("DATABASE_DRIVER %q is not supported", c.Database.Driver))
	}

	switch c.Auth.Provider {
	case "jwt":
		missing("AUTH_JWT_PUBLIC_KEY", c.Auth.PublicKeyPEM)
	case "dev":
		missing("AUTH_DEV_STORE", c.Auth.DevStorePath)
	default:
		problems = append(problems, fmt.Sprintf("AUTH_PROVIDER %q is not supported", c.Auth.Provider))
	}
	missing("PORTAL_JWT_SECRET", c.Auth.PortalSecret)

	switch c.Storage.Driver {
	case "s3":
		missing("S3_BUCKET", c.Storage.Bucket)
	case "local":
		missing("STORAGE_LOCAL_DIR", c.Storage.LocalDir)
		missing("STORAGE_LOCAL_SIGNING_KEY", c.Storage.LocalSignKey)
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER %q is not supported", c.Storage.Driver))
	}

	switch c.Mail.Driver {
	case "gmail":
		missing("MAIL_SENDER", c.Mail.Sender)
		missing("GMAIL_CLIENT_ID", c.Mail.ClientID)
		missing("GMAIL_CLIENT_SECRET", c.Mail.ClientSecret)
		missing("GMAIL_REFRESH_TOKEN", c.Mail.RefreshToken)
	case "log":
	default:
		problems = append(problems, fmt.Sprintf("MAIL_DRIVER %q is not supported", c.Mail.Driver))
	}

	if !c.Payments.Mock {
		missing("MERCADOPAGO_ACCESS_TOKEN", c.Payments.AccessToken)
	}

	switch c.Audit.Store {
	case "sql":
	case "dynamodb":
		missing("AUDIT_TABLE", c.Audit.Table)
	default:
		problems = append(problems, fmt.Sprintf("AUDIT_STORE %q is not supported", c.Audit.Store))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseInt64Env(key string, defaultValue int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
