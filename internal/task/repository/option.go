package repository

import (
	"time"

	"tasq/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task document.
// The store assigns the document id.
type CreateTaskOptions struct {
	Title     string
	Date      string
	Time      string
	Priority  model.Priority
	Category  string
	UserID    string
	CreatedAt time.Time
	CreatedBy string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// UserID, when set, restricts the lookup to that owner.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter parameters for listing tasks. Filtering and
// createdAt-descending ordering happen client-side; the backing collection
// needs no composite index.
type ListTasksOptions struct {
	UserID string
	Date   string // ISO day filter, empty for all days
}

// UpdateTaskOptions holds parameters for a partial task update. Nil pointer
// fields keep the stored value.
type UpdateTaskOptions struct {
	ID          string
	IsComplete  *bool
	CompletedAt *time.Time // pointer-to-zero clears the field
	Title       *string
	Date        *string
	Time        *string
	Priority    *model.Priority
	Category    *string
}
