package server

import (
	"net/http"

	"audit-service/internal/apperror"
	"audit-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

// CreateAuditRequest handles POST /api/audit-requests. The body is
// validated against the insert schema before anything is stored;
// system fields (id, createdAt, isContacted) present in the body are
// ignored because the insert shape simply has no slots for them.
func (s *Server) CreateAuditRequest(c echo.Context) error {
	var input domain.InsertAuditRequest
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Validation error",
			"errors":  "invalid request body",
		})
	}

	ctx := c.Request().Context()
	auditRequest, err := s.auditRequestService.CreateAuditRequest(ctx, input)
	if err != nil {
		if apperror.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Validation error",
				"errors":  apperror.ValidationSummary(err),
			})
		}
		log.WithError(err).Error("Failed to create audit request")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to create audit request",
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Audit request received successfully",
		"auditRequest": auditRequest,
	})
}

// ListAuditRequests handles GET /api/audit-requests. It returns every
// stored request in insertion order as a raw array. Intended for admin
// use, but nothing restricts it; see the deployment notes.
func (s *Server) ListAuditRequests(c echo.Context) error {
	ctx := c.Request().Context()
	auditRequests, err := s.auditRequestService.GetAllAuditRequests(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch audit requests")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch audit requests",
		})
	}

	if auditRequests == nil {
		auditRequests = []domain.AuditRequest{}
	}

	return c.JSON(http.StatusOK, auditRequests)
}
