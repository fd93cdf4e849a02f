package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	for _, s := range Sections() {
		got, err := ParseSection(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSection(" Skills ")
	require.NoError(t, err)
	assert.Equal(t, SectionSkills, got)

	got, err = ParseSection("title")
	require.NoError(t, err)
	assert.Equal(t, SectionTitle, got)

	_, err = ParseSection("hobbies")
	assert.Error(t, err)
}

func TestSectionKinds(t *testing.T) {
	assert.True(t, SectionExperience.IsList())
	assert.True(t, SectionSkills.IsList())
	assert.False(t, SectionPersonal.IsList())
	assert.False(t, SectionSummary.IsList())
	assert.False(t, SectionTitle.IsList())

	assert.True(t, SectionCertifications.IsPanel())
	assert.False(t, SectionTitle.IsPanel())
	assert.Len(t, Sections(), 6)
}

func TestParseTemplate(t *testing.T) {
	for _, tmpl := range Templates() {
		got, err := ParseTemplate(tmpl.String())
		require.NoError(t, err)
		assert.Equal(t, tmpl, got)
	}

	got, err := ParseTemplate("")
	require.NoError(t, err)
	assert.Equal(t, TemplateModern, got)

	_, err = ParseTemplate("baroque")
	assert.Error(t, err)
}

func TestTaskRequest_Validate(t *testing.T) {
	req := &TaskRequest{Title: "Update résumé"}
	require.NoError(t, req.Validate())
	req.Normalize()
	assert.Equal(t, string(TaskPending), req.Status)
	assert.Equal(t, string(PriorityMedium), req.Priority)

	bad := &TaskRequest{Title: "x", Status: "blocked"}
	assert.Error(t, bad.Validate())

	missing := &TaskRequest{}
	assert.Error(t, missing.Validate())
}
