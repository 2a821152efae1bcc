package task

import "tasq/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title    string
	Date     string // free-form ("tomorrow") or ISO; resolved to ISO on create
	Time     string // free-form clock expression, empty when absent
	Priority string
	Category string
	// CreatedBy records whether the task came from the user directly or from
	// the assistant. Empty defaults to CreatedByUser.
	CreatedBy string
}

const (
	CreatedByUser = "user"
	CreatedByAI   = "ai"
)

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
	// NotificationID is set when a reminder was scheduled alongside the task.
	NotificationID string
}

type DetailOutput struct {
	Task model.Task
}

type ToggleOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
	Date  string // ISO day the listing covers
}

// TrendPoint is one day of the completion trend.
type TrendPoint struct {
	Date      string // ISO day
	Total     int
	Completed int
	Rate      float64 // 0 when Total is 0
}

type TrendOutput struct {
	Days []TrendPoint // oldest first, always 7 entries
}
