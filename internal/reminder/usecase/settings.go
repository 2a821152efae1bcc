package usecase

import (
	"context"

	"tasq/internal/model"
)

// Settings returns the current notification settings.
func (uc *implUseCase) Settings(ctx context.Context) (model.NotificationSettings, error) {
	return uc.repo.Settings(ctx)
}

// UpdateSettings merges a partial update into the stored settings document and
// re-derives the daily summary schedule when its enablement or hour changed.
func (uc *implUseCase) UpdateSettings(ctx context.Context, patch model.NotificationSettingsPatch) (model.NotificationSettings, error) {
	current, err := uc.repo.Settings(ctx)
	if err != nil {
		return model.NotificationSettings{}, err
	}

	merged, summaryChanged := patch.Apply(current)
	if err := uc.repo.StoreSettings(ctx, merged); err != nil {
		return model.NotificationSettings{}, err
	}

	if summaryChanged {
		if merged.DailySummary {
			if _, err := uc.ScheduleDailySummary(ctx, merged.SummaryTime); err != nil {
				return model.NotificationSettings{}, err
			}
		} else {
			if err := uc.CancelDailySummary(ctx); err != nil {
				return model.NotificationSettings{}, err
			}
		}
	}

	uc.l.Infof(ctx, "reminder: settings updated: %+v", merged)
	return merged, nil
}
