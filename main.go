package main

import (
	"database/sql"
	"net/http"
	"os"

	"audit-service/internal/config"
	"audit-service/internal/publisher"
	"audit-service/internal/repository"
	"audit-service/internal/server"
	"audit-service/internal/service"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn("Could not load .env file.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithField("error", err).Fatal("Could not load configuration")
	}

	// Pick the storage backend. Postgres when DATABASE_URL is set,
	// otherwise the in-memory store (submissions live for the process
	// lifetime only).
	var db *sql.DB
	var auditRequestRepo service.AuditRequestRepository

	if cfg.DB.URL != "" {
		log.Info("Starting database migration...")
		m, err := migrate.New("file://"+cfg.DB.MigrationsDir, cfg.DB.URL)
		if err != nil {
			log.WithField("error", err).Fatal("Could not create migrate instance")
		}

		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.WithField("error", err).Fatal("Could not apply migration")
		}
		log.Info("Database migration finished successfully.")

		db, err = sql.Open("postgres", cfg.DB.URL)
		if err != nil {
			log.WithField("error", err).Fatal("Could not connect to the database")
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

		if err := db.Ping(); err != nil {
			log.WithField("error", err).Fatal("Could not ping the database")
		}
		log.Info("Successfully connected to the PostgreSQL database.")

		auditRequestRepo = repository.NewPostgresRepository(db)
	} else {
		log.Info("DATABASE_URL is not set, using the in-memory store")
		auditRequestRepo = repository.NewMemoryRepository()
	}

	// Lead events are optional; without a broker the notifier is a no-op.
	var leadNotifier *service.LeadNotifier
	if cfg.Kafka.BootstrapServers != "" {
		leadPublisher, err := publisher.NewLeadPublisher(cfg.Kafka.BootstrapServers, cfg.Kafka.LeadTopic)
		if err != nil {
			log.WithField("error", err).Fatal("Could not create lead publisher")
		}
		defer leadPublisher.Close()

		leadNotifier = service.NewLeadNotifier(leadPublisher)
	}

	validate := validator.New()

	// Create service
	auditRequestService := service.NewAuditRequestService(auditRequestRepo, validate, leadNotifier)

	// Create server
	srv := server.NewServer(auditRequestService, db)

	// Setup Echo
	e := echo.New()

	// Health check
	e.GET("/health", srv.HealthCheck)

	// Intake endpoints
	api := e.Group("/api")
	auditRequests := api.Group("/audit-requests")
	auditRequests.POST("", srv.CreateAuditRequest)
	auditRequests.GET("", srv.ListAuditRequests)

	log.WithField("port", cfg.Server.Port).Info("Audit service is starting with Echo")

	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		log.WithField("error", err).Fatal("Echo server failed to start")
	}
}
