// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidInput       = errors.New("invalid input")
	ErrorServiceUnavailable = errors.New("service unavailable")

	// Authentication mismatches. Messages stay generic on purpose.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidCode        = errors.New("invalid verification code")
	ErrInvalidToken         = errors.New("invalid token")

	// Account state.
	ErrorAlreadyVerified = errors.New("email is already verified")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError describes a rejected input field. It matches
// ErrorInvalidInput with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorInvalidInput
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
