package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"relationship-os/config"
	_ "relationship-os/docs" // Swagger docs
	"relationship-os/internal/dateinfer"
	"relationship-os/internal/httpserver"
	"relationship-os/pkg/datemath"
	"relationship-os/pkg/gcalendar"
	"relationship-os/pkg/llmprovider"
	"relationship-os/pkg/log"
)

// @title       Relationship OS API
// @description Personal relationship tracker: people, interactions with
// @description LLM-inferred conversation dates, FORD notes, follow-up
// @description suggestions, and sync-agent ingestion.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Relationship OS...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
	}
	defer db.Close()

	if cfg.Postgres.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	}
	if lifetime, err := time.ParseDuration(cfg.Postgres.ConnMaxLifetime); err == nil && lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet: %v", err)
	}
	cancel()

	// 4. LLM provider chain (optional; date inference and follow-ups degrade
	// without it)
	var llmManager *llmprovider.Manager
	var inferrer *dateinfer.Engine

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil || len(providers) == 0 {
		logger.Warnf(ctx, "No LLM providers available, date inference disabled: %v", err)
	} else {
		llmManager = llmprovider.NewManager(providers, llmprovider.NewConfigFromLLM(&cfg.LLM), logger)
		inferrer = dateinfer.New(llmManager, logger, time.Now)
		logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	}

	// 5. DateMath parser
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PostgresDB:  db,
		LLM:         llmManager,
		Inferrer:    inferrer,
		DateMath:    dateMathParser,
		Calendar:    calendarClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(ctx, "Relationship OS stopped")
}
