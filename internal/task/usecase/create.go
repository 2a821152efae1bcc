package usecase

import (
	"context"
	"strings"

	"tasq/internal/model"
	"tasq/internal/reminder"
	"tasq/internal/task"
	repo "tasq/internal/task/repository"
)

// Create persists a new task and schedules its reminder when the task has a
// time and task reminders are enabled. Reminder failures degrade to a logged
// no-op; the created task is returned regardless.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	now := uc.now()

	// Free-form date expressions ("tomorrow", "friday") are pinned to an ISO
	// day at creation; ISO input passes through unchanged.
	date := uc.dateMath.FormatDate(uc.dateMath.ResolveDate(input.Date, now))

	category := input.Category
	if category == "" {
		category = model.DefaultCategory
	}
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = task.CreatedByUser
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:     title,
		Date:      date,
		Time:      input.Time,
		Priority:  model.ParsePriority(input.Priority),
		Category:  category,
		UserID:    sc.UserID,
		CreatedAt: now,
		CreatedBy: createdBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	out := task.CreateOutput{Task: created}
	if created.HasReminderFields() {
		out.NotificationID = uc.scheduleReminder(ctx, created)
	}
	return out, nil
}

// scheduleReminder registers the task's reminder if settings allow. All
// failures are logged and swallowed.
func (uc *implUseCase) scheduleReminder(ctx context.Context, t model.Task) string {
	settings, err := uc.reminder.Settings(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create Settings: %v", err)
		return ""
	}
	if !settings.TaskReminders {
		return ""
	}

	notificationID, err := uc.reminder.ScheduleTaskReminder(ctx, reminder.ReminderInput{
		TaskID: t.ID,
		Title:  t.Title,
		Date:   t.Date,
		Time:   t.Time,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create ScheduleTaskReminder: %v", err)
		return ""
	}
	return notificationID
}
