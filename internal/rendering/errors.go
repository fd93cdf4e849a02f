// Package rendering turns a résumé document into a template-specific view and
// exports that view as HTML, plain text or PDF.
package rendering

import "fmt"

// TemplateError reports a template name outside the four layouts, or a failed HTML page execution.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("résumé template: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("résumé template: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a document that cannot be turned into a view or file,
// such as a nil document or a missing PDF renderer.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("résumé export: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("résumé export: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
