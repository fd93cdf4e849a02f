package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.Document{
		ID:       "r-1",
		Title:    "Backend Engineer",
		Personal: types.PersonalInfo{FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
		Experience: []types.ExperienceEntry{
			{ID: "1", Title: "Engineer", Company: "Acme", Current: true},
		},
		Skills: []string{"Go", "SQL", "Docker", "Kubernetes", "Terraform", "gRPC", "Kafka"},
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Jane Smith")
	assert.Contains(t, output, "Engineer @ Acme (current)")
	assert.Contains(t, output, "Skills (7)")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "Kafka")
	assert.NotContains(t, output, "Education")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResumeList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeList(nil)
	assert.Contains(t, buf.String(), "No resumes")

	buf.Reset()
	p.PrintResumeList([]types.ResumeSummary{
		{ID: "a", Title: "First", UpdatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{ID: "b"},
	})
	output := buf.String()
	assert.Contains(t, output, "STORED RESUMES (2)")
	assert.Contains(t, output, "2024-03-01 09:30")
	assert.Contains(t, output, "(untitled)")
}

func TestPrintView(t *testing.T) {
	var buf bytes.Buffer
	view, err := rendering.Render(&types.Document{
		Personal: types.PersonalInfo{FirstName: "Jane"},
		Skills:   []string{"Go", "SQL"},
	}, types.TemplateMinimalist)
	require.NoError(t, err)

	NewPrinter(&buf).PrintView(view)
	output := buf.String()
	assert.Contains(t, output, "Template: minimalist")
	assert.Contains(t, output, "Skills: 2 badges")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(nil)
	assert.Contains(t, buf.String(), "✓ valid")

	buf.Reset()
	p.PrintValidation(&schemas.ValidationError{Errors: []schemas.FieldError{
		{Field: "title", Message: "String length must be less than or equal to 200"},
	}})
	assert.Contains(t, buf.String(), "1 problem(s)")
	assert.Contains(t, buf.String(), "• title:")

	buf.Reset()
	p.PrintValidation(errors.New("cannot read file"))
	assert.Contains(t, buf.String(), "✗ cannot read file")
}

func TestPrintBox_LineWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}
