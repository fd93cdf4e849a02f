package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"task not found", &ErrNotFound{Resource: "task", ID: "1"}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "Name", Message: "required"}, http.StatusBadRequest},
		{"gateway not found", gateway.NotFound("load resume", "1"), http.StatusNotFound},
		{"gateway validation", gateway.Validation("save resume", "", "bad", nil), http.StatusUnprocessableEntity},
		{"gateway network", gateway.Network("save resume", "", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"wrapped gateway error", fmt.Errorf("open session: %w", gateway.NotFound("load resume", "1")), http.StatusNotFound},
		{"index", &editor.IndexError{Section: types.SectionSkills, Index: 3, Len: 1}, http.StatusBadRequest},
		{"field", &editor.FieldError{Section: types.SectionPersonal, Field: "nickname"}, http.StatusBadRequest},
		{"section", &editor.SectionError{Section: types.SectionSummary, Op: "add item"}, http.StatusBadRequest},
		{"last entry", editor.ErrLastEntry, http.StatusConflict},
		{"stale load", editor.ErrStaleLoad, http.StatusConflict},
		{"load pending", editor.ErrLoadPending, http.StatusConflict},
		{"session", editor.ErrSessionNotFound, http.StatusNotFound},
		{"template", &rendering.TemplateError{Message: "unknown template"}, http.StatusBadRequest},
		{"pdf", rendering.ErrPDFUnavailable, http.StatusNotImplemented},
		{"weak password", fmt.Errorf("%w: too short", config.ErrWeakPassword), http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
