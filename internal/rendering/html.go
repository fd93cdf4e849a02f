package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed assets
var assets embed.FS

var contactIcons = map[string]string{
	"email":    "✉️",
	"phone":    "📱",
	"address":  "📍",
	"linkedIn": "🔗",
	"website":  "🌐",
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
	pageErr  error
)

type pageData struct {
	View  *View
	Style template.CSS
	Icons bool
}

func pageTemplate() (*template.Template, error) {
	pageOnce.Do(func() {
		pageTmpl, pageErr = template.New("resume.html.tmpl").
			Funcs(template.FuncMap{"icon": func(kind string) string { return contactIcons[kind] }}).
			ParseFS(assets, "assets/resume.html.tmpl")
	})
	return pageTmpl, pageErr
}

// Stylesheet returns the CSS for t: the shared base followed by the template's own rules.
func Stylesheet(t types.Template) (string, error) {
	if _, err := LayoutFor(t); err != nil {
		return "", err
	}
	base, err := assets.ReadFile("assets/base.css")
	if err != nil {
		return "", &TemplateError{Message: "failed to read base stylesheet", Cause: err}
	}
	own, err := assets.ReadFile("assets/" + string(t) + ".css")
	if err != nil {
		return "", &TemplateError{Message: "failed to read stylesheet for " + string(t), Cause: err}
	}
	return string(base) + "\n" + string(own), nil
}

// HTML renders v as a standalone HTML page with inline styles.
func HTML(v *View) ([]byte, error) {
	if v == nil {
		return nil, &RenderError{Message: "view is required"}
	}
	l, err := LayoutFor(v.Template)
	if err != nil {
		return nil, err
	}
	tmpl, err := pageTemplate()
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse page template", Cause: err}
	}
	css, err := Stylesheet(v.Template)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := pageData{View: v, Style: template.CSS(css), Icons: l.Icons()}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return buf.Bytes(), nil
}
