// Package apperror maps validation failures to human-readable messages.
package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"InsertAuditRequest.Name.required":    "name is required",
	"InsertAuditRequest.Name.min":         "name must be at least 2 characters",
	"InsertAuditRequest.Email.required":   "email is required",
	"InsertAuditRequest.Email.email":      "email must be a valid email address",
	"InsertAuditRequest.Website.required": "website is required",
	"InsertAuditRequest.Website.url":      "website must be a valid URL",
	"InsertUser.Username.required":        "username is required",
	"InsertUser.Password.required":        "password is required",
}

// IsValidation reports whether err originated from schema validation.
func IsValidation(err error) bool {
	var validationErr validator.ValidationErrors
	return errors.As(err, &validationErr)
}

// ValidationSummary flattens validator errors into a single summary
// string suitable for the "errors" field of a 400 response.
func ValidationSummary(err error) string {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErr))
	for _, e := range validationErr {
		key := e.StructNamespace() + "." + e.Tag()
		msg, ok := fieldMessages[key]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", e.StructNamespace())
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
