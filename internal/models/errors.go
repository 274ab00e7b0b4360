package models

import (
	"errors"
	"fmt"
)

// Error constants for application operations
var (
	ErrNotFound           = errors.New("application not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// ErrorKind classifies an AppError so callers can branch on it.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindUpload      ErrorKind = "upload"
	KindPersistence ErrorKind = "persistence"
	KindConfig      ErrorKind = "config"
)

// AppError is a structured error carrying the kind, the field it relates
// to (when there is one) and a human-readable message. The message is what
// reaches the presentation layer; Err keeps the underlying cause.
type AppError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
