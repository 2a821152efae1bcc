package task

import (
	"context"

	"tasq/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create persists a new task for the caller and schedules its reminder
	// when the task carries a date and time and task reminders are enabled.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Detail returns a single task owned by the caller.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Toggle flips the completion flag, stamping or clearing CompletedAt,
	// and re-derives the task's reminder.
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleOutput, error)

	// Delete removes the task and cancels any scheduled reminder for it.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ListToday returns the caller's tasks for the current day, newest first.
	ListToday(ctx context.Context, sc model.Scope) (ListOutput, error)

	// ListByDate returns the caller's tasks for one calendar day, newest first.
	ListByDate(ctx context.Context, sc model.Scope, date string) (ListOutput, error)

	// Watch emits a full snapshot of the caller's tasks for today whenever the
	// underlying collection may have changed, until ctx is cancelled. The
	// channel is closed on cancellation. Consumers re-derive any sorted or
	// filtered views from each snapshot.
	Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error)

	// CompletionTrend reports per-day completion rates over the trailing week.
	CompletionTrend(ctx context.Context, sc model.Scope) (TrendOutput, error)
}
