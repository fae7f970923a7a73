package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"audit-service/internal/domain"
	"audit-service/internal/repository"
	"audit-service/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() (*echo.Echo, *Server) {
	repo := repository.NewMemoryRepository()
	svc := service.NewAuditRequestService(repo, validator.New(), nil)
	return echo.New(), NewServer(svc, nil)
}

func postAuditRequest(e *echo.Echo, srv *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/audit-requests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = srv.CreateAuditRequest(c)
	return rec
}

func TestCreateAuditRequestEndToEnd(t *testing.T) {
	e, srv := newTestServer()

	// Invalid email is rejected with a message field.
	rec := postAuditRequest(e, srv, `{"name":"A B","email":"not-an-email","website":"https://x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Validation error", errBody["message"])
	assert.Contains(t, errBody["errors"], "email")

	// Fixing the email yields a created record.
	rec = postAuditRequest(e, srv, `{"name":"A B","email":"a@b.com","website":"https://x.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message      string              `json:"message"`
		AuditRequest domain.AuditRequest `json:"auditRequest"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Audit request received successfully", body.Message)
	assert.Equal(t, 1, body.AuditRequest.ID)
	assert.False(t, body.AuditRequest.IsContacted)
	assert.False(t, body.AuditRequest.CreatedAt.IsZero())
}

func TestCreateAuditRequestIgnoresSystemFields(t *testing.T) {
	e, srv := newTestServer()

	rec := postAuditRequest(e, srv, `{"name":"A B","email":"a@b.com","website":"https://x.com","id":999,"isContacted":true,"createdAt":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		AuditRequest domain.AuditRequest `json:"auditRequest"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.AuditRequest.ID, "service assigns the id")
	assert.False(t, body.AuditRequest.IsContacted)
	assert.NotEqual(t, 2000, body.AuditRequest.CreatedAt.Year())
}

func TestCreateAuditRequestMalformedBody(t *testing.T) {
	e, srv := newTestServer()

	rec := postAuditRequest(e, srv, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Validation error", errBody["message"])
}

func TestListAuditRequests(t *testing.T) {
	e, srv := newTestServer()

	// Empty store lists as an empty array, not null.
	req := httptest.NewRequest(http.MethodGet, "/api/audit-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, srv.ListAuditRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		res := postAuditRequest(e, srv, `{"name":"A B","email":"`+email+`","website":"https://x.com"}`)
		require.Equal(t, http.StatusCreated, res.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/audit-requests", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, srv.ListAuditRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var auditRequests []domain.AuditRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auditRequests))
	require.Len(t, auditRequests, 3)
	for i, email := range emails {
		assert.Equal(t, i+1, auditRequests[i].ID)
		assert.Equal(t, email, auditRequests[i].Email)
	}
}

func TestHealthCheckWithoutDatabase(t *testing.T) {
	e, srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, srv.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
