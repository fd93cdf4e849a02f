package types

import (
	"fmt"
	"strings"
)

// Template selects a presentation variant. It never affects Document data.
type Template string

// Available templates
const (
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateCreative     Template = "creative"
	TemplateMinimalist   Template = "minimalist"
)

// DefaultTemplate is used when a session or request does not name one.
const DefaultTemplate = TemplateModern

// Templates returns every template in picker order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateProfessional, TemplateCreative, TemplateMinimalist}
}

// ParseTemplate converts a raw name into a Template. An empty name yields DefaultTemplate.
func ParseTemplate(s string) (Template, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTemplate, nil
	}
	t := Template(s)
	for _, known := range Templates() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template %q", s)
}

func (t Template) String() string {
	return string(t)
}
