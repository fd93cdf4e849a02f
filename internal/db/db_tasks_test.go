package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCRUD(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	uid, err := db.CreateUser(ctx, "Task Tester", "task-"+uuid.New().String()+"@test.com", "")
	require.NoError(t, err)
	defer db.DeleteUser(ctx, uid)

	req := &types.TaskRequest{Title: "Tailor résumé", Priority: "high"}
	req.Normalize()

	task, err := db.CreateTask(ctx, uid, req)
	require.NoError(t, err)
	assert.Equal(t, types.TaskPending, task.Status)
	assert.Equal(t, types.PriorityHigh, task.Priority)

	tasks, err := db.ListTasks(ctx, uid, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	req.Status = string(types.TaskCompleted)
	updated, err := db.UpdateTask(ctx, task.ID, uid, req)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, types.TaskCompleted, updated.Status)

	pending, err := db.ListTasks(ctx, uid, string(types.TaskPending))
	require.NoError(t, err)
	assert.Empty(t, pending)

	counts, err := db.CountTasksByStatus(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[string(types.TaskCompleted)])
	assert.Equal(t, 0, counts[string(types.TaskPending)])

	deleted, err := db.DeleteTask(ctx, task.ID, uid)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := db.UpdateTask(ctx, task.ID, uid, req)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
