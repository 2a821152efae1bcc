package repository

import (
	"context"

	"tasq/internal/model"
)

// Repository is the persistence interface for reminder bookkeeping: the
// task-id → notification-id mapping table, the daily summary notification id,
// and the notification settings document.
type Repository interface {
	// NotificationID returns the live notification id mapped to taskID.
	NotificationID(ctx context.Context, taskID string) (string, bool, error)

	// StoreMapping writes taskID → notificationID, overwriting any prior entry.
	StoreMapping(ctx context.Context, taskID, notificationID string) error

	// RemoveMapping deletes the entry for taskID. Missing entries are a no-op.
	RemoveMapping(ctx context.Context, taskID string) error

	// SummaryID returns the stored daily summary notification id.
	SummaryID(ctx context.Context) (string, bool, error)

	// StoreSummaryID stores the daily summary notification id.
	StoreSummaryID(ctx context.Context, notificationID string) error

	// ClearSummaryID removes the stored daily summary notification id.
	ClearSummaryID(ctx context.Context) error

	// Settings returns the notification settings, falling back to defaults
	// when no document exists yet.
	Settings(ctx context.Context) (model.NotificationSettings, error)

	// StoreSettings writes the whole settings document.
	StoreSettings(ctx context.Context, s model.NotificationSettings) error
}
