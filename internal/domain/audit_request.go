package domain

import (
	"errors"
	"time"
)

// AuditRequest errors
var (
	ErrAuditRequestNotFound = errors.New("audit request not found")
)

// AuditRequest is one lead-capture submission from the free-audit form.
// Field names follow the public JSON contract of the intake API.
type AuditRequest struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Website     string    `json:"website"`
	Business    *string   `json:"business"`
	Goals       []string  `json:"goals"`
	CreatedAt   time.Time `json:"createdAt"`
	IsContacted bool      `json:"isContacted"`
}

// InsertAuditRequest is the caller-supplied shape of a new submission.
// It deliberately has no ID, CreatedAt or IsContacted fields: those are
// assigned by the service, and any values a caller sends for them are
// dropped on decode.
//
// The validate tags are the single source of the intake rules; every
// consumer (HTTP handler, admin tooling, tests) runs the same rule set.
// Goals stays an open list of tags: the form offers four canned choices
// but the server accepts any strings, including duplicates.
type InsertAuditRequest struct {
	Name     string   `json:"name" validate:"required,min=2"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    *string  `json:"phone"`
	Website  string   `json:"website" validate:"required,url"`
	Business *string  `json:"business"`
	Goals    []string `json:"goals"`
}
