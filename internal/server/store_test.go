package server

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

// mockStore is an in-memory Store.
type mockStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db.User
	resumes map[uuid.UUID]*db.Resume
	tasks   map[uuid.UUID]*types.Task

	pingErr  error
	statsErr error
	closed   bool
}

func newMockStore() *mockStore {
	return &mockStore{
		users:   make(map[uuid.UUID]*db.User),
		resumes: make(map[uuid.UUID]*db.Resume),
		tasks:   make(map[uuid.UUID]*types.Task),
	}
}

func (m *mockStore) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	u := &db.User{ID: uuid.New(), Name: name, Email: strings.ToLower(email), Phone: phone, CreatedAt: now, UpdatedAt: now}
	m.users[u.ID] = u
	return u.ID, nil
}

func (m *mockStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *mockStore) UpdateUser(_ context.Context, u *db.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[u.ID]
	if !ok {
		return errors.New("user not found")
	}
	existing.Name, existing.Email, existing.Phone = u.Name, u.Email, u.Phone
	existing.UpdatedAt = time.Now()
	return nil
}

func (m *mockStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (m *mockStore) CreateResume(_ context.Context, userID uuid.UUID, doc *types.Document) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	r := &db.Resume{ID: uuid.New(), UserID: userID, Title: doc.Title, CreatedAt: now, UpdatedAt: now}
	r.Document = doc.Clone()
	r.Document.ID = r.ID.String()
	m.resumes[r.ID] = r
	return copyResume(r), nil
}

func (m *mockStore) GetResume(_ context.Context, id, userID uuid.UUID) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	return copyResume(r), nil
}

func (m *mockStore) UpdateResume(_ context.Context, id, userID uuid.UUID, doc *types.Document) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	r.Document = doc.Clone()
	r.Document.ID = id.String()
	r.Title = doc.Title
	r.UpdatedAt = time.Now()
	return copyResume(r), nil
}

func (m *mockStore) DeleteResume(_ context.Context, id, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(m.resumes, id)
	return true, nil
}

func (m *mockStore) ListResumes(_ context.Context, userID uuid.UUID) ([]types.ResumeSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []types.ResumeSummary
	for _, r := range m.resumes {
		if r.UserID == userID {
			list = append(list, types.ResumeSummary{ID: r.ID.String(), Title: r.Title, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (m *mockStore) ResumeStats(_ context.Context, userID uuid.UUID) (int, *time.Time, error) {
	if m.statsErr != nil {
		return 0, nil, m.statsErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	var last *time.Time
	for _, r := range m.resumes {
		if r.UserID != userID {
			continue
		}
		count++
		if last == nil || r.UpdatedAt.After(*last) {
			t := r.UpdatedAt
			last = &t
		}
	}
	return count, last, nil
}

func (m *mockStore) CreateTask(_ context.Context, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	t := &types.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      types.TaskStatus(req.Status),
		Priority:    types.TaskPriority(req.Priority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.tasks[t.ID] = t
	c := *t
	return &c, nil
}

func (m *mockStore) ListTasks(_ context.Context, userID uuid.UUID, status string) ([]types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []types.Task
	for _, t := range m.tasks {
		if t.UserID == userID && (status == "" || string(t.Status) == status) {
			list = append(list, *t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (m *mockStore) UpdateTask(_ context.Context, id, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	t.Title, t.Description, t.DueDate = req.Title, req.Description, req.DueDate
	t.Status, t.Priority = types.TaskStatus(req.Status), types.TaskPriority(req.Priority)
	t.UpdatedAt = time.Now()
	c := *t
	return &c, nil
}

func (m *mockStore) DeleteTask(_ context.Context, id, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

func (m *mockStore) CountTasksByStatus(_ context.Context, userID uuid.UUID) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int{
		string(types.TaskPending):    0,
		string(types.TaskInProgress): 0,
		string(types.TaskCompleted):  0,
	}
	for _, t := range m.tasks {
		if t.UserID == userID {
			counts[string(t.Status)]++
		}
	}
	return counts, nil
}

func (m *mockStore) Ping(context.Context) error {
	return m.pingErr
}

func (m *mockStore) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func copyResume(r *db.Resume) *db.Resume {
	c := *r
	c.Document = r.Document.Clone()
	return &c
}

var _ Store = (*mockStore)(nil)
