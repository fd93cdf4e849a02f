package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// LLM asks a language model for suggestions using the embedded prompts.
type LLM struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLM creates an LLM source. An empty tier uses llm.TierLite.
func NewLLM(client llm.Client, tier llm.ModelTier) *LLM {
	if tier == "" {
		tier = llm.TierLite
	}
	return &LLM{client: client, tier: tier}
}

// Suggest implements Source.
func (s *LLM) Suggest(ctx context.Context, section types.Section, doc *types.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is required")
	}
	template, err := prompts.GetOr(prompts.Suggestions, string(section), "default")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, promptData(section, doc))

	text, err := s.client.GenerateContent(ctx, prompt, s.tier)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s suggestion: %w", section, err)
	}
	text = llm.CleanText(text)
	if text == "" {
		return "", fmt.Errorf("model returned an empty %s suggestion", section)
	}
	return text, nil
}

func promptData(section types.Section, doc *types.Document) map[string]string {
	data := map[string]string{
		"Section":    section.String(),
		"Title":      orNone(doc.Title),
		"Name":       orNone(doc.Personal.FullName()),
		"Summary":    orNone(doc.Summary),
		"Skills":     orNone(strings.Join(nonEmpty(doc.Skills), ", ")),
		"Experience": orNone(describeExperience(doc.Experience)),
		"Position":   "(none)",
	}
	if len(doc.Experience) > 0 {
		data["Position"] = describeExperience(doc.Experience[:1])
	}
	return data
}

func describeExperience(entries []types.ExperienceEntry) string {
	var b strings.Builder
	for _, e := range entries {
		head := strings.Join(nonEmpty([]string{e.Title, e.Company}), " at ")
		if head == "" && e.Description == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s", head)
		if e.Description != "" {
			fmt.Fprintf(&b, ": %s", e.Description)
		}
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
