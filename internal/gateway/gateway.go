// Package gateway provides the persistence boundary for résumé documents.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Gateway loads, saves and deletes résumé documents.
type Gateway interface {
	// LoadResume returns the stored document. Fails with KindNotFound for an unknown id.
	LoadResume(ctx context.Context, id string) (*types.Document, error)
	// SaveResume creates the document when it has no ID and updates it otherwise.
	// The returned document carries the assigned ID.
	SaveResume(ctx context.Context, doc *types.Document) (*types.Document, error)
	// DeleteResume removes a stored document.
	DeleteResume(ctx context.Context, id string) error
}

// Kind classifies gateway failures.
type Kind int

// Failure kinds
const (
	KindUnknown Kind = iota
	KindNetwork
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is returned by every Gateway implementation.
type Error struct {
	Kind    Kind
	Op      string
	ID      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	prefix := e.Op
	if e.ID != "" {
		prefix = fmt.Sprintf("%s %s", e.Op, e.ID)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err. Errors that did not come from a gateway are KindUnknown.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindUnknown
}

// NotFound builds a KindNotFound error.
func NotFound(op, id string) *Error {
	return &Error{Kind: KindNotFound, Op: op, ID: id, Message: "resume not found"}
}

// Network builds a KindNetwork error wrapping the transport or storage failure.
func Network(op, id string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, ID: id, Message: "backend unreachable", Err: err}
}

// Validation builds a KindValidation error.
func Validation(op, id, message string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, ID: id, Message: message, Err: err}
}
