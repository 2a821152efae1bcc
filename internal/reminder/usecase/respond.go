package usecase

import (
	"context"
	"fmt"
	"time"

	"tasq/internal/reminder"
	"tasq/pkg/notify"
)

// snoozeDelay is how far a snoozed reminder is pushed out.
const snoozeDelay = 10 * time.Minute

// HandleResponse dispatches a notification tap or action button.
func (uc *implUseCase) HandleResponse(ctx context.Context, resp reminder.NotificationResponse) (reminder.Route, error) {
	switch resp.Action {
	case reminder.ActionMarkComplete:
		if resp.TaskID == "" {
			return reminder.RouteNone, nil
		}
		if uc.complete == nil {
			uc.l.Infof(ctx, "reminder: mark-complete for task %s dropped (no completion hook installed)", resp.TaskID)
			return reminder.RouteNone, nil
		}
		if err := uc.complete(ctx, resp.TaskID); err != nil {
			uc.l.Errorf(ctx, "reminder: completion hook failed for task %s: %v", resp.TaskID, err)
		}
		return reminder.RouteNone, nil

	case reminder.ActionSnooze:
		if resp.TaskID == "" {
			return reminder.RouteNone, nil
		}
		return reminder.RouteNone, uc.snooze(ctx, resp.TaskID, resp.TaskTitle)

	case reminder.ActionViewTasks:
		return reminder.RouteTasks, nil

	case reminder.ActionDefault:
		switch resp.Type {
		case reminder.TypeTaskReminder:
			return reminder.RouteTasks, nil
		case reminder.TypeDailySummary:
			return reminder.RouteCalendar, nil
		}
		return reminder.RouteNone, nil

	default:
		uc.l.Warnf(ctx, "reminder: unhandled notification action %q", resp.Action)
		return reminder.RouteNone, nil
	}
}

// snooze registers a fresh one-shot notification ten minutes out, carrying the
// same payload. The mapping table is intentionally left untouched: a snooze is
// a transient extra delivery, not a rescheduled reminder.
func (uc *implUseCase) snooze(ctx context.Context, taskID, taskTitle string) error {
	_, err := uc.notifier.Schedule(ctx, notify.Content{
		Title:    reminder.ReminderSnoozedTitle,
		Body:     fmt.Sprintf("Time for: %s", taskTitle),
		Category: string(reminder.TypeTaskReminder),
		Data: map[string]string{
			reminder.DataKeyTaskID:    taskID,
			reminder.DataKeyTaskTitle: taskTitle,
			reminder.DataKeyType:      string(reminder.TypeTaskReminder),
		},
	}, notify.Trigger{At: uc.now().Add(snoozeDelay)})
	if err != nil {
		uc.l.Warnf(ctx, "reminder: failed to snooze task %s: %v", taskID, err)
	} else {
		uc.l.Infof(ctx, "reminder: snoozed task %s for %s", taskID, snoozeDelay)
	}
	return nil
}
