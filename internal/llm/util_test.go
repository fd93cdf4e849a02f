package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "  Seasoned engineer.  ", expected: "Seasoned engineer."},
		{name: "code fence", input: "```\nSeasoned engineer.\n```", expected: "Seasoned engineer."},
		{name: "fence with language", input: "```text\nSeasoned engineer.\n```", expected: "Seasoned engineer."},
		{name: "label", input: "Summary: Seasoned engineer.", expected: "Seasoned engineer."},
		{name: "quoted", input: `"Seasoned engineer."`, expected: "Seasoned engineer."},
		{name: "empty", input: "", expected: ""},
		{name: "single quote char", input: `"`, expected: `"`},
		{
			name:     "skills line untouched",
			input:    "Based on your experience, you might want to add: Go, gRPC",
			expected: "Based on your experience, you might want to add: Go, gRPC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
