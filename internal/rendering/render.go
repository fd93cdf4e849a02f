package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Render maps doc onto the layout of tmpl. doc is only read.
func Render(doc *types.Document, tmpl types.Template) (*View, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is required"}
	}
	l, err := LayoutFor(tmpl)
	if err != nil {
		return nil, err
	}

	v := &View{
		Template: tmpl,
		Title:    strings.TrimSpace(doc.Title),
		Header:   renderHeader(doc.Personal),
		Blocks:   []Block{},
	}
	if l.SummaryInHeader() {
		v.Header.Tagline = strings.TrimSpace(doc.Summary)
	}

	for _, section := range l.Order() {
		b := Block{Section: section, Heading: l.Heading(section)}
		switch section {
		case types.SectionSummary:
			b.Text = strings.TrimSpace(doc.Summary)
		case types.SectionExperience:
			b.Items = experienceItems(doc.Experience)
		case types.SectionEducation:
			b.Items = educationItems(doc.Education)
		case types.SectionSkills:
			b.Badges = badges(doc.Skills)
		case types.SectionCertifications:
			b.Items = certificationItems(doc.Certifications)
		}
		if b.Text == "" && len(b.Items) == 0 && len(b.Badges) == 0 {
			continue
		}
		v.Blocks = append(v.Blocks, b)
	}
	return v, nil
}

func renderHeader(p types.PersonalInfo) Header {
	h := Header{Name: strings.TrimSpace(p.FullName())}
	for _, c := range []Contact{
		{Kind: "email", Value: p.Email},
		{Kind: "phone", Value: p.Phone},
		{Kind: "address", Value: p.Address},
		{Kind: "linkedIn", Value: p.LinkedIn},
		{Kind: "website", Value: p.Website},
	} {
		if c.Value = strings.TrimSpace(c.Value); c.Value != "" {
			h.Contacts = append(h.Contacts, c)
		}
	}
	return h
}

func experienceItems(entries []types.ExperienceEntry) []Item {
	var items []Item
	for _, e := range entries {
		item := Item{
			Heading:    strings.TrimSpace(e.Title),
			Subheading: joinNonEmpty(", ", e.Company, e.Location),
			Period:     period(e.StartDate, e.EndDate, e.Current),
			Body:       strings.TrimSpace(e.Description),
		}
		if item != (Item{}) {
			items = append(items, item)
		}
	}
	return items
}

func educationItems(entries []types.EducationEntry) []Item {
	var items []Item
	for _, e := range entries {
		item := Item{
			Heading:    strings.TrimSpace(e.Degree),
			Subheading: joinNonEmpty(", ", e.School, e.Location),
			Period:     period(e.StartDate, e.EndDate, false),
			Body:       strings.TrimSpace(e.Description),
		}
		if item != (Item{}) {
			items = append(items, item)
		}
	}
	return items
}

func certificationItems(entries []types.CertificationEntry) []Item {
	var items []Item
	for _, c := range entries {
		item := Item{
			Heading:    strings.TrimSpace(c.Name),
			Subheading: joinNonEmpty(" • ", c.Issuer, FormatDate(c.Date)),
			Body:       strings.TrimSpace(c.Description),
		}
		if item != (Item{}) {
			items = append(items, item)
		}
	}
	return items
}

func badges(skills []string) []string {
	var out []string
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
