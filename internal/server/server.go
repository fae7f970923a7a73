package server

import (
	"database/sql"
	"net/http"

	"audit-service/internal/service"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

type Server struct {
	auditRequestService service.AuditRequestServiceInterface
	db                  *sql.DB
}

// NewServer wires handlers to the intake service. db is nil when the
// in-memory store is in use; the health check then only reports
// process liveness.
func NewServer(auditRequestService service.AuditRequestServiceInterface, db *sql.DB) *Server {
	return &Server{
		auditRequestService: auditRequestService,
		db:                  db,
	}
}

func (s *Server) HealthCheck(c echo.Context) error {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			log.WithField("error", err).Error("Health check failed: database is down")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database connection error",
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
