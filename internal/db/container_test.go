//go:build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway PostgreSQL container and returns a migrated DB.
func startPostgres(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "resume",
			"POSTGRES_PASSWORD": "resume_dev",
			"POSTGRES_DB":       "resume_builder",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Skipping container test: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://resume:resume_dev@%s:%s/resume_builder?sslmode=disable", host, port.Port())
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func TestContainer_ResumeRoundTrip(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	uid, err := db.CreateUser(ctx, "Container", "container-"+uuid.New().String()+"@test.com", "")
	require.NoError(t, err)

	created, err := db.CreateResume(ctx, uid, testDocument())
	require.NoError(t, err)

	got, err := db.GetResume(ctx, created.ID, uid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Document, got.Document)

	applied, err := db.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
}
