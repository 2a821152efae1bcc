package usecase

import (
	"context"

	"tasq/internal/model"
	"tasq/internal/task"
	repo "tasq/internal/task/repository"
)

// trendDays is the window of the completion trend.
const trendDays = 7

// CompletionTrend reports per-day completion rates over the trailing week,
// oldest day first. Days with no tasks report a zero rate.
func (uc *implUseCase) CompletionTrend(ctx context.Context, sc model.Scope) (task.TrendOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompletionTrend ListTasks: %v", err)
		return task.TrendOutput{}, err
	}

	byDate := make(map[string]*task.TrendPoint, trendDays)
	days := make([]task.TrendPoint, trendDays)
	now := uc.now()
	for i := 0; i < trendDays; i++ {
		date := uc.dateMath.FormatDate(now.AddDate(0, 0, i-trendDays+1))
		days[i] = task.TrendPoint{Date: date}
		byDate[date] = &days[i]
	}

	for _, t := range tasks {
		point, ok := byDate[t.Date]
		if !ok {
			continue
		}
		point.Total++
		if t.IsComplete {
			point.Completed++
		}
	}

	for i := range days {
		if days[i].Total > 0 {
			days[i].Rate = float64(days[i].Completed) / float64(days[i].Total)
		}
	}

	return task.TrendOutput{Days: days}, nil
}
