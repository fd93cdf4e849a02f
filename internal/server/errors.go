// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a task or other owned record does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	switch gateway.KindOf(err) {
	case gateway.KindNotFound:
		return http.StatusNotFound
	case gateway.KindValidation:
		return http.StatusUnprocessableEntity
	case gateway.KindNetwork:
		return http.StatusServiceUnavailable
	}

	var (
		indexErr    *editor.IndexError
		fieldErr    *editor.FieldError
		sectionErr  *editor.SectionError
		templateErr *rendering.TemplateError
	)
	switch {
	case errors.Is(err, rendering.ErrPDFUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, editor.ErrLastEntry), errors.Is(err, editor.ErrStaleLoad), errors.Is(err, editor.ErrLoadPending):
		return http.StatusConflict
	case errors.Is(err, editor.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, config.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.As(err, &indexErr), errors.As(err, &fieldErr), errors.As(err, &sectionErr), errors.As(err, &templateErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
