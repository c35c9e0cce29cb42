package usecase

import (
	emaildomain "mailagent-backend/internal/email/domain"
	"mailagent-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task manually
	CreateTask(userID, title, description string, dueDate *string, priority string) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID with an ownership check
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves all tasks for a user with an optional status filter
	GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// ImportActionItems persists extracted email action items as pending
	// tasks linked to the source email. Re-importing for the same email
	// replaces the previous extraction.
	ImportActionItems(userID, emailID string, items []emaildomain.ActionItem) ([]*domain.Task, error)
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}
