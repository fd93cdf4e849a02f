package rendering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Format is an export file format.
type Format string

// Export formats
const (
	FormatHTML Format = "html"
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
)

// ParseFormat converts a raw name into a Format. An empty name yields FormatHTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "txt", "text":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/html; charset=utf-8"
	}
}

// Exporter renders documents to files. PDF is nil when no browser is configured.
type Exporter struct {
	PDF PDFRenderer
}

// ErrPDFUnavailable is returned for PDF exports when no PDF renderer is configured.
var ErrPDFUnavailable = &RenderError{Message: "PDF export is not configured"}

// Export renders doc with tmpl and encodes it as format.
func (e *Exporter) Export(ctx context.Context, doc *types.Document, tmpl types.Template, format Format) ([]byte, error) {
	view, err := Render(doc, tmpl)
	if err != nil {
		return nil, err
	}
	page, err := HTML(view)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatHTML:
		return page, nil
	case FormatText:
		text, err := Text(page)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FormatPDF:
		if e == nil || e.PDF == nil {
			return nil, ErrPDFUnavailable
		}
		return e.PDF.RenderPDF(ctx, page)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// Filename suggests a download name for doc.
func Filename(doc *types.Document, format Format) string {
	base := doc.Title
	if base == "" {
		base = doc.Personal.FullName()
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, strings.TrimSpace(base))
	if base == "" {
		base = "resume"
	}
	return strings.ToLower(base) + "." + string(format)
}
