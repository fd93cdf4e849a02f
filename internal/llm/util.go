package llm

import "strings"

// CleanText strips the wrappers models like to add around a plain-text
// answer: code fences, a leading label line and surrounding quotes.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// drop a language tag on the fence line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			if first := text[:idx]; len(first) < 20 && !strings.Contains(first, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	for _, label := range []string{"Summary:", "Description:", "Suggestion:"} {
		if strings.HasPrefix(text, label) {
			text = strings.TrimSpace(strings.TrimPrefix(text, label))
			break
		}
	}

	if len(text) >= 2 {
		if (text[0] == '"' && text[len(text)-1] == '"') || (text[0] == '\'' && text[len(text)-1] == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}
