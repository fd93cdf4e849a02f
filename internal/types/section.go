package types

import (
	"fmt"
	"strings"
)

// Section identifies one independently editable part of a Document.
type Section string

// Editor panel sections
const (
	SectionPersonal       Section = "personal"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
)

// SectionTitle addresses the document title as a scalar for field edits.
// It is not a panel and cannot become the active section.
const SectionTitle Section = "title"

// Sections returns the editor panels in display order.
func Sections() []Section {
	return []Section{
		SectionPersonal,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionCertifications,
	}
}

// ParseSection converts a raw key into a Section.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	switch sec {
	case SectionPersonal, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionCertifications, SectionTitle:
		return sec, nil
	default:
		return "", fmt.Errorf("unknown section %q", s)
	}
}

// IsPanel reports whether the section has its own editor panel.
func (s Section) IsPanel() bool {
	switch s {
	case SectionPersonal, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionCertifications:
		return true
	}
	return false
}

// IsList reports whether the section holds repeated entries.
func (s Section) IsList() bool {
	switch s {
	case SectionExperience, SectionEducation, SectionSkills, SectionCertifications:
		return true
	}
	return false
}

func (s Section) String() string {
	return string(s)
}
