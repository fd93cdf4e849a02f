package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/require"
)

// resetFlags restores package-level flag values between in-process runs.
func resetFlags() {
	configPath = ""
	servePort = 0
	renderTemplate = string(types.DefaultTemplate)
	renderFormat = "html"
	renderOutput = ""
	inspectTemplate = ""
	remoteURL = ""
	remoteEmail = ""
	remotePassword = ""
	pullOutput = ""
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func sampleDocument() *types.Document {
	return &types.Document{
		Title: "Backend Engineer",
		Personal: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
		},
		Summary: "Builds reliable services.",
		Experience: []types.ExperienceEntry{
			{ID: "exp-1", Title: "Senior Engineer", Company: "Acme", StartDate: "2020-01", Current: true},
		},
		Education:      []types.EducationEntry{},
		Skills:         []string{"Go", "PostgreSQL"},
		Certifications: []types.CertificationEntry{},
	}
}

// writeFixture writes v as JSON into a temp dir and returns the path.
func writeFixture(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
