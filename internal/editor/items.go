package editor

import (
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// IDFunc generates entry identifiers.
type IDFunc func() string

// NewEntryID is the default IDFunc.
func NewEntryID() string {
	return uuid.NewString()
}

// NewDocument returns the seeded default used when starting a new résumé:
// every list holds one empty entry so each panel has something to edit.
func NewDocument() *types.Document {
	return &types.Document{
		Experience:     []types.ExperienceEntry{{ID: "1"}},
		Education:      []types.EducationEntry{{ID: "1"}},
		Skills:         []string{""},
		Certifications: []types.CertificationEntry{{ID: "1"}},
	}
}

// AddItem appends an empty entry with a fresh id to a list section.
func AddItem(doc *types.Document, section types.Section, newID IDFunc) (*types.Document, error) {
	if newID == nil {
		newID = NewEntryID
	}
	next := doc.Clone()
	switch section {
	case types.SectionExperience:
		next.Experience = append(next.Experience, types.ExperienceEntry{ID: newID()})
	case types.SectionEducation:
		next.Education = append(next.Education, types.EducationEntry{ID: newID()})
	case types.SectionCertifications:
		next.Certifications = append(next.Certifications, types.CertificationEntry{ID: newID()})
	case types.SectionSkills:
		next.Skills = append(next.Skills, "")
	default:
		return nil, &SectionError{Section: section, Op: "add item"}
	}
	return next, nil
}

// RemoveItem deletes the entry at index. It will empty a list; callers that
// present the document must use GuardedRemove or re-seed an entry.
func RemoveItem(doc *types.Document, section types.Section, index int) (*types.Document, error) {
	if !section.IsList() {
		return nil, &SectionError{Section: section, Op: "remove item"}
	}
	if err := checkIndex(doc, section, index); err != nil {
		return nil, err
	}
	next := doc.Clone()
	switch section {
	case types.SectionExperience:
		next.Experience = slices.Delete(next.Experience, index, index+1)
	case types.SectionEducation:
		next.Education = slices.Delete(next.Education, index, index+1)
	case types.SectionCertifications:
		next.Certifications = slices.Delete(next.Certifications, index, index+1)
	case types.SectionSkills:
		next.Skills = slices.Delete(next.Skills, index, index+1)
	}
	return next, nil
}

// GuardedRemove is RemoveItem that refuses to remove the last remaining entry.
func GuardedRemove(doc *types.Document, section types.Section, index int) (*types.Document, error) {
	if section.IsList() && sectionLen(doc, section) <= 1 {
		return nil, ErrLastEntry
	}
	return RemoveItem(doc, section, index)
}

// CanRemove reports whether GuardedRemove would accept a removal from section.
func CanRemove(doc *types.Document, section types.Section) bool {
	return section.IsList() && sectionLen(doc, section) > 1
}
