package reminder

import (
	"context"

	"tasq/internal/model"
)

// UseCase maintains the invariant that a task with a future reminder time and
// reminders enabled has exactly one live scheduled notification, and a
// completed, deleted, or past-due task has none. External-service failures
// are logged and degraded, never surfaced as errors; returned errors indicate
// local store failures only.
type UseCase interface {
	// ScheduleTaskReminder registers a one-shot notification for the task and
	// records the task→notification mapping, cancelling any prior one. It
	// returns "" without side effects when date or time is missing, or when
	// the resolved instant is not strictly in the future.
	ScheduleTaskReminder(ctx context.Context, in ReminderInput) (string, error)

	// CancelTaskReminder cancels the task's scheduled notification and removes
	// its mapping. Unknown task ids are a no-op.
	CancelTaskReminder(ctx context.Context, taskID string) error

	// HandleToggle re-derives the task's reminder after a completion toggle:
	// newly-complete tasks with a time lose their reminder; newly-incomplete
	// ones regain it if task reminders are enabled in settings.
	HandleToggle(ctx context.Context, t model.Task) error

	// ScheduleDailySummary replaces the daily summary with a repeating
	// notification at the next occurrence of hour:00.
	ScheduleDailySummary(ctx context.Context, hour int) (string, error)

	// CancelDailySummary cancels the daily summary and clears the stored id.
	CancelDailySummary(ctx context.Context) error

	// Settings returns the current notification settings (defaults when unset).
	Settings(ctx context.Context) (model.NotificationSettings, error)

	// UpdateSettings merges the patch into stored settings and re-derives the
	// daily summary schedule when its hour or enablement changed.
	UpdateSettings(ctx context.Context, patch model.NotificationSettingsPatch) (model.NotificationSettings, error)

	// HandleResponse dispatches a notification tap or action button and
	// returns the route the app should navigate to.
	HandleResponse(ctx context.Context, resp NotificationResponse) (Route, error)
}
