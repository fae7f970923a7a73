package domain

import "errors"

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// User is an account row carried in the schema for an eventual admin
// login. No HTTP route consumes it yet; only the repositories do.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
