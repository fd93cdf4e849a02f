package editor

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ApplySuggestion merges suggestion text into doc and returns the result.
// Summary is overwritten, the first experience description is overwritten and
// skills parsed from a "label: a, b, c" text are appended. Any other section
// returns doc unchanged.
func ApplySuggestion(doc *types.Document, section types.Section, text string) *types.Document {
	switch section {
	case types.SectionSummary:
		next := doc.Clone()
		next.Summary = text
		return next
	case types.SectionExperience:
		if len(doc.Experience) == 0 {
			return doc
		}
		next := doc.Clone()
		next.Experience[0].Description = text
		return next
	case types.SectionSkills:
		skills := ParseSkillSuggestion(text)
		if len(skills) == 0 {
			return doc
		}
		next := doc.Clone()
		next.Skills = append(next.Skills, skills...)
		return next
	default:
		return doc
	}
}

// ParseSkillSuggestion extracts the comma-separated list that follows the first ": ".
// Text without that separator yields nil. No de-duplication is done.
func ParseSkillSuggestion(text string) []string {
	parts := strings.Split(text, ": ")
	if len(parts) < 2 {
		return nil
	}
	return strings.Split(parts[1], ", ")
}
