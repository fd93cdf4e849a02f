package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Layout decides how a template titles and orders the shared blocks.
type Layout interface {
	Template() types.Template
	// Heading returns the block title for a section.
	Heading(section types.Section) string
	// Order lists the sections rendered as blocks, top to bottom.
	Order() []types.Section
	// SummaryInHeader reports whether the summary is shown as a header tagline.
	SummaryInHeader() bool
	// Icons reports whether contacts carry a leading icon.
	Icons() bool
}

type layout struct {
	template        types.Template
	headings        map[types.Section]string
	uppercase       bool
	summaryInHeader bool
	icons           bool
}

func (l layout) Template() types.Template { return l.template }

func (l layout) Heading(section types.Section) string {
	h, ok := l.headings[section]
	if !ok {
		h = defaultHeadings[section]
	}
	if l.uppercase {
		return strings.ToUpper(h)
	}
	return h
}

func (l layout) Order() []types.Section {
	order := make([]types.Section, 0, len(bodyOrder))
	for _, s := range bodyOrder {
		if s == types.SectionSummary && l.summaryInHeader {
			continue
		}
		order = append(order, s)
	}
	return order
}

func (l layout) SummaryInHeader() bool { return l.summaryInHeader }

func (l layout) Icons() bool { return l.icons }

var bodyOrder = []types.Section{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionCertifications,
}

var defaultHeadings = map[types.Section]string{
	types.SectionSummary:        "Professional Summary",
	types.SectionExperience:     "Experience",
	types.SectionEducation:      "Education",
	types.SectionSkills:         "Skills",
	types.SectionCertifications: "Certifications",
}

var layouts = map[types.Template]Layout{
	types.TemplateModern: layout{template: types.TemplateModern, icons: true},
	types.TemplateProfessional: layout{
		template:  types.TemplateProfessional,
		uppercase: true,
		headings: map[types.Section]string{
			types.SectionExperience: "Professional Experience",
		},
	},
	types.TemplateCreative: layout{
		template:        types.TemplateCreative,
		summaryInHeader: true,
		icons:           true,
	},
	types.TemplateMinimalist: layout{
		template: types.TemplateMinimalist,
		headings: map[types.Section]string{
			types.SectionSummary: "Summary",
		},
	},
}

// LayoutFor returns the layout registered for t.
func LayoutFor(t types.Template) (Layout, error) {
	l, ok := layouts[t]
	if !ok {
		return nil, &TemplateError{Message: "unknown template: " + string(t)}
	}
	return l, nil
}
