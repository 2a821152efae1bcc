package usecase

import (
	"context"
	"errors"
	"fmt"

	"tasq/internal/model"
	"tasq/internal/reminder"
	"tasq/pkg/notify"
)

// ScheduleTaskReminder registers a one-shot reminder notification for the task.
func (uc *implUseCase) ScheduleTaskReminder(ctx context.Context, in reminder.ReminderInput) (string, error) {
	if in.Time == "" || in.Date == "" {
		return "", nil
	}

	now := uc.now()
	fireAt, _ := uc.dateMath.ResolveDateTime(in.Date, in.Time, now)
	if !fireAt.After(now) {
		return "", nil
	}

	// The mapping table allows at most one live notification per task:
	// drop any prior entry before registering the new one.
	if err := uc.CancelTaskReminder(ctx, in.TaskID); err != nil {
		return "", err
	}

	notificationID, err := uc.notifier.Schedule(ctx, notify.Content{
		Title:    reminder.ReminderTitle,
		Body:     fmt.Sprintf("Time for: %s", in.Title),
		Category: string(reminder.TypeTaskReminder),
		Data: map[string]string{
			reminder.DataKeyTaskID:    in.TaskID,
			reminder.DataKeyTaskTitle: in.Title,
			reminder.DataKeyType:      string(reminder.TypeTaskReminder),
		},
	}, notify.Trigger{At: fireAt})
	if err != nil {
		if errors.Is(err, notify.ErrPermissionDenied) {
			uc.l.Debugf(ctx, "reminder: notifications not permitted, skipping task %s", in.TaskID)
		} else {
			uc.l.Warnf(ctx, "reminder: failed to register notification for task %s: %v", in.TaskID, err)
		}
		return "", nil
	}

	if err := uc.repo.StoreMapping(ctx, in.TaskID, notificationID); err != nil {
		// Don't leave an untracked notification behind.
		_ = uc.notifier.Cancel(ctx, notificationID)
		return "", err
	}

	uc.l.Infof(ctx, "reminder: scheduled task %s at %s (notification %s)", in.TaskID, fireAt, notificationID)
	return notificationID, nil
}

// CancelTaskReminder cancels the task's scheduled notification, if any.
func (uc *implUseCase) CancelTaskReminder(ctx context.Context, taskID string) error {
	notificationID, found, err := uc.repo.NotificationID(ctx, taskID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if err := uc.notifier.Cancel(ctx, notificationID); err != nil {
		uc.l.Warnf(ctx, "reminder: failed to cancel notification %s for task %s: %v", notificationID, taskID, err)
	}
	if err := uc.repo.RemoveMapping(ctx, taskID); err != nil {
		return err
	}

	uc.l.Infof(ctx, "reminder: cancelled notification for task %s", taskID)
	return nil
}

// HandleToggle re-derives the task's reminder after a completion toggle.
func (uc *implUseCase) HandleToggle(ctx context.Context, t model.Task) error {
	if t.Time == "" {
		return nil
	}

	if t.IsComplete {
		return uc.CancelTaskReminder(ctx, t.ID)
	}

	// Settings are read lazily on every scheduling decision.
	settings, err := uc.repo.Settings(ctx)
	if err != nil {
		return err
	}
	if !settings.TaskReminders {
		return nil
	}

	_, err = uc.ScheduleTaskReminder(ctx, reminder.ReminderInput{
		TaskID: t.ID,
		Title:  t.Title,
		Date:   t.Date,
		Time:   t.Time,
	})
	return err
}
