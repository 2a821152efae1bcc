package usecase

import (
	"context"

	"tasq/internal/reminder"
	"tasq/pkg/notify"
)

// ScheduleDailySummary replaces the daily summary notification with a
// repeating one at the next occurrence of hour:00.
func (uc *implUseCase) ScheduleDailySummary(ctx context.Context, hour int) (string, error) {
	if hour < 0 || hour > 23 {
		return "", reminder.ErrInvalidSummaryHour
	}

	if err := uc.CancelDailySummary(ctx); err != nil {
		return "", err
	}

	fireAt := uc.dateMath.NextOccurrenceOfHour(hour, uc.now())

	notificationID, err := uc.notifier.Schedule(ctx, notify.Content{
		Title:    reminder.SummaryTitle,
		Body:     reminder.SummaryBody,
		Category: string(reminder.TypeDailySummary),
		Data: map[string]string{
			reminder.DataKeyType: string(reminder.TypeDailySummary),
		},
	}, notify.Trigger{At: fireAt, Repeats: true})
	if err != nil {
		uc.l.Warnf(ctx, "reminder: failed to register daily summary: %v", err)
		return "", nil
	}

	if err := uc.repo.StoreSummaryID(ctx, notificationID); err != nil {
		_ = uc.notifier.Cancel(ctx, notificationID)
		return "", err
	}

	uc.l.Infof(ctx, "reminder: daily summary scheduled at %s", fireAt)
	return notificationID, nil
}

// CancelDailySummary cancels the daily summary notification and clears the
// stored id. No-op when none is scheduled.
func (uc *implUseCase) CancelDailySummary(ctx context.Context) error {
	notificationID, found, err := uc.repo.SummaryID(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if err := uc.notifier.Cancel(ctx, notificationID); err != nil {
		uc.l.Warnf(ctx, "reminder: failed to cancel daily summary %s: %v", notificationID, err)
	}
	return uc.repo.ClearSummaryID(ctx)
}
