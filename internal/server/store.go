package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/types"
)

// DBClient is the user storage the auth services need.
type DBClient interface {
	CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u *db.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// Store is everything the HTTP API reads and writes. *db.DB implements it.
type Store interface {
	DBClient
	gateway.ResumeStore

	ListResumes(ctx context.Context, userID uuid.UUID) ([]types.ResumeSummary, error)
	ResumeStats(ctx context.Context, userID uuid.UUID) (int, *time.Time, error)

	CreateTask(ctx context.Context, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, status string) ([]types.Task, error)
	UpdateTask(ctx context.Context, id, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error)
	DeleteTask(ctx context.Context, id, userID uuid.UUID) (bool, error)
	CountTasksByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error)

	Ping(ctx context.Context) error
	Close()
}

var _ Store = (*db.DB)(nil)
