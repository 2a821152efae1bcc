package usecase

import (
	"context"

	"tasq/internal/model"
	"tasq/internal/task"
	repo "tasq/internal/task/repository"
)

// ListToday returns the caller's tasks for the current day, newest first.
func (uc *implUseCase) ListToday(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return uc.ListByDate(ctx, sc, uc.dateMath.FormatDate(uc.now()))
}

// ListByDate returns the caller's tasks for one calendar day, newest first.
// The date expression may be free-form; it is resolved the same way task
// dates are resolved at creation.
func (uc *implUseCase) ListByDate(ctx context.Context, sc model.Scope, date string) (task.ListOutput, error) {
	day := uc.dateMath.FormatDate(uc.dateMath.ResolveDate(date, uc.now()))

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID: sc.UserID,
		Date:   day,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDate ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Date: day}, nil
}
