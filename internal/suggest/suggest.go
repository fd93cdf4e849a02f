// Package suggest produces suggestion text for a résumé section. The text is
// merged into the document by editor.ApplySuggestion.
package suggest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Source produces suggestion text for section based on doc.
type Source interface {
	Suggest(ctx context.Context, section types.Section, doc *types.Document) (string, error)
}

// Canned suggestion texts returned by Static.
const (
	SummaryText    = "Detail-oriented software engineer with 5+ years of experience in full-stack development. Proficient in React, Node.js, and cloud technologies with a track record of delivering scalable web applications that drive business growth."
	ExperienceText = "Improved application performance by 40% through code optimization and implementing efficient caching strategies. Collaborated with cross-functional teams to deliver features on time and within budget."
	SkillsText     = "Based on your experience, you might want to add: Redux, GraphQL, Docker, Kubernetes, CI/CD, Jest, React Testing Library, REST API design"
	DefaultText    = "AI suggestion will appear here based on your profile and job target."
)

// Static returns fixed texts and never fails.
type Static struct{}

// Suggest implements Source.
func (Static) Suggest(_ context.Context, section types.Section, _ *types.Document) (string, error) {
	switch section {
	case types.SectionSummary:
		return SummaryText, nil
	case types.SectionExperience:
		return ExperienceText, nil
	case types.SectionSkills:
		return SkillsText, nil
	default:
		return DefaultText, nil
	}
}

// Fallback tries Primary and answers from Secondary when it fails.
type Fallback struct {
	Primary   Source
	Secondary Source
}

// Suggest implements Source.
func (f Fallback) Suggest(ctx context.Context, section types.Section, doc *types.Document) (string, error) {
	text, err := f.Primary.Suggest(ctx, section, doc)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err == nil {
		err = fmt.Errorf("empty suggestion")
	}
	log.Printf("[suggest] primary source failed for %s, using fallback: %v", section, err)
	return f.Secondary.Suggest(ctx, section, doc)
}
