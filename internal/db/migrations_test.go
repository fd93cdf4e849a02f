package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Migrations() {
		assert.NotEmpty(t, m.SQL, m.Name)
		assert.False(t, seen[m.Name], "duplicate migration %s", m.Name)
		seen[m.Name] = true
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	applied, err := db.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, applied, "setupTestDB already applied every migration")
}
