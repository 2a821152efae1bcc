package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DefaultCategory is assigned when no category can be inferred from input.
const DefaultCategory = "Personal"

// ParsePriority maps a free-form priority string to a known level,
// defaulting to Medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Task is a task record as stored in the document database. The store assigns
// ID on creation.
type Task struct {
	ID          string     // Opaque document id assigned by the store
	Title       string     // Task title
	Date        string     // ISO date (YYYY-MM-DD) the task belongs to
	Time        string     // Free-form clock expression ("8pm"), empty when absent
	Priority    Priority   // High / Medium / Low
	Category    string     // "Work", "Personal", ...
	IsComplete  bool       // Completion flag
	CompletedAt *time.Time // Set when IsComplete flips to true, cleared otherwise
	UserID      string     // Owner uid from the identity provider
	CreatedAt   time.Time  // Creation timestamp
	CreatedBy   string     // "user" or "ai"
}

// HasReminderFields reports whether the task carries enough information to
// schedule a reminder.
func (t Task) HasReminderFields() bool {
	return t.Time != "" && t.Date != ""
}
