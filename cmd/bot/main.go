package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prachij94/CancelItNowBot/internal/config"
	"github.com/prachij94/CancelItNowBot/internal/handler"
	"github.com/prachij94/CancelItNowBot/internal/middleware"
	"github.com/prachij94/CancelItNowBot/internal/repository"
	"github.com/prachij94/CancelItNowBot/internal/repository/postgres"
	sheetsrepo "github.com/prachij94/CancelItNowBot/internal/repository/sheets"
	"github.com/prachij94/CancelItNowBot/internal/server"
	"github.com/prachij94/CancelItNowBot/internal/service"
	"github.com/prachij94/CancelItNowBot/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting CancelItNow Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("store_backend", cfg.StoreBackend),
	)

	// Initialize the subscription store
	repo, cleanup, err := buildRepository(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize subscription store", zap.Error(err))
	}
	defer cleanup()

	logger.Info("Subscription store ready")

	// Initialize services and session store
	subService := service.NewSubscriptionService(repo, cfg.StoreTimeout, logger)
	reportService := service.NewReportService(repo, cfg.StoreTimeout, logger)
	sessions := session.NewStore(cfg.SessionTTL)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: buildPoller(cfg),
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.Bool("webhook", cfg.WebhookURL != ""))

	bot.Use(middleware.Recover(logger))
	bot.Use(middleware.Metrics())
	bot.Use(middleware.PerUserLock(sessions))

	// Initialize handler
	h := handler.NewHandler(bot, subService, reportService, sessions, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start liveness/metrics server in background
	srv := server.New(logger)
	go func() {
		if err := srv.Start(cfg.HealthAddr); err != nil {
			logger.Error("Health server failed", zap.Error(err))
		}
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health server shutdown failed", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// buildRepository wires the configured store backend and returns it
// with a cleanup func
func buildRepository(cfg *config.Config, logger *zap.Logger) (repository.SubscriptionRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewSubscriptionRepo(db), func() { db.Close() }, nil

	default:
		repo, err := sheetsrepo.New(
			context.Background(),
			[]byte(cfg.Sheets.CredentialsJSON),
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.SheetName,
		)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

// buildPoller picks webhook delivery when a public URL is configured,
// long polling otherwise
func buildPoller(cfg *config.Config) tele.Poller {
	if cfg.WebhookURL != "" {
		return &tele.Webhook{
			Listen: cfg.WebhookAddr,
			Endpoint: &tele.WebhookEndpoint{
				PublicURL: cfg.WebhookURL,
			},
		}
	}
	return &tele.LongPoller{Timeout: 10 * time.Second}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
