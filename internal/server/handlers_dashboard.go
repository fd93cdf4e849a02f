package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// handleDashboardStats gathers résumé, task and session counts concurrently.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	stats := types.DashboardStats{
		OpenSessions: s.sessions.Count(userID),
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		count, last, err := s.store.ResumeStats(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load resume stats: %w", err)
		}
		stats.Resumes = count
		stats.LastResumeEdit = last
		return nil
	})
	g.Go(func() error {
		counts, err := s.store.CountTasksByStatus(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		stats.Tasks = counts
		return nil
	})
	if err := g.Wait(); err != nil {
		writeError(w, err)
		return
	}

	if stats.Tasks == nil {
		stats.Tasks = map[string]int{}
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleListTasks lists the caller's tasks, optionally filtered by ?status=.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch types.TaskStatus(status) {
	case "", types.TaskPending, types.TaskInProgress, types.TaskCompleted:
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", status))
		return
	}

	tasks, err := s.store.ListTasks(r.Context(), currentUser(r), status)
	if err != nil {
		writeError(w, fmt.Errorf("failed to list tasks: %w", err))
		return
	}
	if tasks == nil {
		tasks = []types.Task{}
	}
	s.jsonResponse(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTask(w, r)
	if !ok {
		return
	}
	task, err := s.store.CreateTask(r.Context(), currentUser(r), req)
	if err != nil {
		writeError(w, fmt.Errorf("failed to create task: %w", err))
		return
	}
	s.jsonResponse(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeTask(w, r)
	if !ok {
		return
	}
	task, err := s.store.UpdateTask(r.Context(), id, currentUser(r), req)
	if err != nil {
		writeError(w, fmt.Errorf("failed to update task: %w", err))
		return
	}
	if task == nil {
		writeError(w, &ErrNotFound{Resource: "task", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteTask(r.Context(), id, currentUser(r))
	if err != nil {
		writeError(w, fmt.Errorf("failed to delete task: %w", err))
		return
	}
	if !deleted {
		writeError(w, &ErrNotFound{Resource: "task", ID: id.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) decodeTask(w http.ResponseWriter, r *http.Request) (*types.TaskRequest, bool) {
	var req types.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return nil, false
	}
	req.Normalize()
	return &req, true
}
