package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	TelegramToken string
	WebhookURL    string
	WebhookAddr   string
	HealthAddr    string

	StoreBackend string
	Sheets       SheetsConfig
	Database     DatabaseConfig

	SessionTTL   time.Duration
	StoreTimeout time.Duration
}

// SheetsConfig holds the Google Sheets backend settings
type SheetsConfig struct {
	CredentialsJSON string
	SpreadsheetID   string
	SheetName       string
}

// DatabaseConfig holds the Postgres backend settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	sessionTTL, err := envMinutes("SESSION_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	storeTimeout, err := envSeconds("STORE_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookAddr:   getEnv("WEBHOOK_ADDR", ":8443"),
		HealthAddr:    getEnv("HEALTH_ADDR", ":10000"),
		StoreBackend:  getEnv("STORE_BACKEND", BackendSheets),
		Sheets: SheetsConfig{
			CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS"),
			SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
			SheetName:       getEnv("SHEET_NAME", "Sheet1"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "cancelitnow"),
			User:     getEnv("DB_USER", "cancelitnow"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		SessionTTL:   sessionTTL,
		StoreTimeout: storeTimeout,
	}

	// Validate required fields
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	switch cfg.StoreBackend {
	case BackendSheets:
		if cfg.Sheets.CredentialsJSON == "" {
			return nil, fmt.Errorf("GOOGLE_CREDENTIALS is required for the sheets backend")
		}
		if cfg.Sheets.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID is required for the sheets backend")
		}
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envMinutes(key string, defaultValue int) (time.Duration, error) {
	return envDuration(key, defaultValue, time.Minute)
}

func envSeconds(key string, defaultValue int) (time.Duration, error) {
	return envDuration(key, defaultValue, time.Second)
}

func envDuration(key string, defaultValue int, unit time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultValue) * unit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return time.Duration(n) * unit, nil
}
