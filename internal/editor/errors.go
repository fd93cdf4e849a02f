// Package editor holds the editable résumé model: field edits, list items, suggestions and editing sessions.
package editor

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	// ErrLastEntry is returned by the guarded remove when only one entry is left.
	ErrLastEntry = errors.New("cannot remove the last remaining entry")
	// ErrStaleLoad is returned when a load finished after a newer load or reset.
	ErrStaleLoad = errors.New("load superseded by a newer request")
	// ErrLoadPending is returned for edits and saves attempted while a load is in flight.
	ErrLoadPending = errors.New("document is still loading")
	// ErrSessionNotFound is returned for unknown or foreign session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// IndexError reports an entry index outside the section's bounds.
type IndexError struct {
	Section types.Section
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %s (len %d)", e.Index, e.Section, e.Len)
}

// FieldError reports an unknown field or a value of the wrong type.
type FieldError struct {
	Section types.Section
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Section, e.Field, e.Message)
}

// SectionError reports an operation the section does not support.
type SectionError struct {
	Section types.Section
	Op      string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s is not supported for section %s", e.Op, e.Section)
}
