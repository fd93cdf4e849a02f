package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskStatus is the progress state of a dashboard task.
type TaskStatus string

// Task statuses
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority ranks dashboard tasks.
type TaskPriority string

// Task priorities
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a dashboard to-do item owned by a user.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskRequest is the body of task create and update calls.
type TaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty" validate:"max=2000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Validate validates the TaskRequest using the validator.
func (r *TaskRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize fills the defaults for omitted status and priority.
func (r *TaskRequest) Normalize() {
	if r.Status == "" {
		r.Status = string(TaskPending)
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
}

// DashboardStats aggregates counts for the dashboard landing page.
type DashboardStats struct {
	Resumes        int            `json:"resumes"`
	Tasks          map[string]int `json:"tasks"`
	OpenSessions   int            `json:"open_sessions"`
	LastResumeEdit *time.Time     `json:"last_resume_edit,omitempty"`
}
