package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *types.Document {
	return &types.Document{
		Title:    "Staff Engineer",
		Personal: types.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Website: "ada.dev"},
		Summary:  "Builds things.",
		Experience: []types.ExperienceEntry{
			{ID: "1", Title: "Engineer", Company: "Engines", StartDate: "2021-03", Current: true},
		},
		Education:      []types.EducationEntry{{ID: "1", Degree: "BSc", School: "London"}},
		Skills:         []string{"Go", "PostgreSQL"},
		Certifications: []types.CertificationEntry{{ID: "1", Name: "CKA", Issuer: "CNCF", Date: "2022-05"}},
	}
}

func TestResumeCRUD(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	uid, err := db.CreateUser(ctx, "Resume Tester", "resume-"+uuid.New().String()+"@test.com", "")
	require.NoError(t, err)
	defer db.DeleteUser(ctx, uid)

	// 1. Create
	doc := testDocument()
	created, err := db.CreateResume(ctx, uid, doc)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Staff Engineer", created.Title)
	assert.Equal(t, created.ID.String(), created.Document.ID)
	assert.Empty(t, doc.ID, "input document must not be modified")

	// 2. Get
	got, err := db.GetResume(ctx, created.ID, uid)
	require.NoError(t, err)
	require.NotNil(t, got)
	doc.ID = created.ID.String()
	assert.Equal(t, doc, got.Document)

	// Other owners cannot see it
	other, err := db.GetResume(ctx, created.ID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)

	// 3. Update
	doc.Summary = "Builds bigger things."
	doc.Skills = append(doc.Skills, "Kubernetes")
	updated, err := db.UpdateResume(ctx, created.ID, uid, doc)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Builds bigger things.", updated.Document.Summary)
	assert.Len(t, updated.Document.Skills, 3)

	// 4. List and stats
	list, err := db.ListResumes(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID.String(), list[0].ID)

	count, last, err := db.ResumeStats(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NotNil(t, last)

	// 5. Delete
	deleted, err := db.DeleteResume(ctx, created.ID, uid)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = db.DeleteResume(ctx, created.ID, uid)
	require.NoError(t, err)
	assert.False(t, deleted)

	missing, err := db.UpdateResume(ctx, created.ID, uid, doc)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
