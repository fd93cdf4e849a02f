// Package schemas provides JSON Schema validation for résumé documents.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ResumeSchema returns the embedded résumé schema source.
func ResumeSchema() string {
	return resumeSchema
}

func resumeValidator() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "resume.schema.json", Message: "invalid embedded schema", Cause: compileErr}
		}
	})
	return compiled, compileErr
}

// ValidateDocument checks a document against the résumé schema.
func ValidateDocument(doc *types.Document) error {
	if doc == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "document is required"}}}
	}
	schema, err := resumeValidator()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	return resultError(result)
}

// ValidateResumeJSON checks raw JSON content against the résumé schema.
func ValidateResumeJSON(content []byte) error {
	schema, err := resumeValidator()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	return resultError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
