package apperror

import (
	"errors"
	"testing"

	"audit-service/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationSummary(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(domain.InsertAuditRequest{
		Name:    "J",
		Email:   "not-an-email",
		Website: "example.com",
	})
	require.Error(t, err)
	require.True(t, IsValidation(err))

	summary := ValidationSummary(err)
	assert.Contains(t, summary, "name must be at least 2 characters")
	assert.Contains(t, summary, "email must be a valid email address")
	assert.Contains(t, summary, "website must be a valid URL")
}

func TestValidationSummaryMissingFields(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(domain.InsertAuditRequest{})
	require.Error(t, err)

	summary := ValidationSummary(err)
	assert.Contains(t, summary, "name is required")
	assert.Contains(t, summary, "email is required")
	assert.Contains(t, summary, "website is required")
}

func TestIsValidationOtherErrors(t *testing.T) {
	err := errors.New("storage fault")
	assert.False(t, IsValidation(err))
	assert.Equal(t, "storage fault", ValidationSummary(err))
}
