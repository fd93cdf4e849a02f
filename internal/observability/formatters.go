// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", label, len(items))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
	sb.WriteString("\n")
}

// PrintDocument outputs a human-readable summary of a résumé document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	if doc.ID != "" {
		fmt.Fprintf(&sb, "ID:       %s\n", doc.ID)
	}
	fmt.Fprintf(&sb, "Title:    %s\n", doc.Title)
	fmt.Fprintf(&sb, "Name:     %s\n", doc.Personal.FullName())
	if doc.Personal.Email != "" {
		fmt.Fprintf(&sb, "Email:    %s\n", doc.Personal.Email)
	}
	if doc.Summary != "" {
		fmt.Fprintf(&sb, "Summary:  %s\n", doc.Summary)
	}
	sb.WriteString("\n")

	experience := make([]string, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		line := e.Title
		if e.Company != "" {
			line += " @ " + e.Company
		}
		if e.Current {
			line += " (current)"
		}
		experience = append(experience, line)
	}
	writeList(&sb, "Experience", experience)

	education := make([]string, 0, len(doc.Education))
	for _, e := range doc.Education {
		education = append(education, strings.TrimSpace(e.Degree+" "+e.School))
	}
	writeList(&sb, "Education", education)

	writeList(&sb, "Skills", doc.Skills)

	certs := make([]string, 0, len(doc.Certifications))
	for _, c := range doc.Certifications {
		certs = append(certs, c.Name)
	}
	writeList(&sb, "Certifications", certs)

	p.printBox("RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeList outputs stored résumés, most recent first.
func (p *Printer) PrintResumeList(list []types.ResumeSummary) {
	if len(list) == 0 {
		p.printBox("STORED RESUMES", "No resumes")
		return
	}

	var sb strings.Builder
	for i, r := range list {
		title := r.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&sb, "%s  %s\n", r.ID, title)
		fmt.Fprintf(&sb, "    updated %s", r.UpdatedAt.Format("2006-01-02 15:04"))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("STORED RESUMES (%d)", len(list)), sb.String())
}

// PrintView outputs the block headings and entry counts of a rendered view.
func (p *Printer) PrintView(view *rendering.View) {
	if view == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Template: %s\n", view.Template)
	fmt.Fprintf(&sb, "Header:   %s\n", view.Header.Name)
	if view.Header.Tagline != "" {
		fmt.Fprintf(&sb, "Tagline:  %s\n", view.Header.Tagline)
	}
	fmt.Fprintf(&sb, "Contacts: %d\n\n", len(view.Header.Contacts))
	for _, b := range view.Blocks {
		switch {
		case len(b.Items) > 0:
			fmt.Fprintf(&sb, "%s: %d entries\n", b.Heading, len(b.Items))
		case len(b.Badges) > 0:
			fmt.Fprintf(&sb, "%s: %d badges\n", b.Heading, len(b.Badges))
		default:
			fmt.Fprintf(&sb, "%s\n", b.Heading)
		}
	}
	p.printBox("RENDERED VIEW", strings.TrimRight(sb.String(), "\n"))
}

// PrintValidation outputs schema validation results.
func (p *Printer) PrintValidation(err error) {
	if err == nil {
		p.printBox("SCHEMA VALIDATION", "✓ valid")
		return
	}

	ve, ok := err.(*schemas.ValidationError)
	if !ok {
		p.printBox("SCHEMA VALIDATION", "✗ "+err.Error())
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✗ %d problem(s)\n\n", len(ve.Errors))
	count := min(len(ve.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "• %s: %s\n", ve.Errors[i].Field, ve.Errors[i].Message)
	}
	if len(ve.Errors) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more", len(ve.Errors)-maxItemsToShow)
	}
	p.printBox("SCHEMA VALIDATION", strings.TrimRight(sb.String(), "\n"))
}
