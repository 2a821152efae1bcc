package usecase

import (
	"context"
	"time"

	"tasq/internal/model"
	"tasq/internal/task"
	repo "tasq/internal/task/repository"
)

// Detail retrieves a single task owned by the caller. Returns ErrTaskNotFound
// when absent or owned by someone else.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Toggle flips the completion flag, stamps or clears CompletedAt, and
// re-derives the task's reminder. Reminder failures degrade to a logged no-op.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return task.ToggleOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	nowComplete := !existing.IsComplete
	completedAt := time.Time{} // zero clears the field
	if nowComplete {
		completedAt = uc.now()
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          id,
		IsComplete:  &nowComplete,
		CompletedAt: &completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleOutput{}, err
	}
	if updated.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	if err := uc.reminder.HandleToggle(ctx, updated); err != nil {
		uc.l.Warnf(ctx, "uc.Toggle HandleToggle: %v", err)
	}

	return task.ToggleOutput{Task: updated}, nil
}

// Delete removes the task and cancels any scheduled reminder for it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	// Cancel first so a delete failure cannot leave a live notification for a
	// task the caller believes is gone.
	if err := uc.reminder.CancelTaskReminder(ctx, id); err != nil {
		uc.l.Warnf(ctx, "uc.Delete CancelTaskReminder: %v", err)
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
