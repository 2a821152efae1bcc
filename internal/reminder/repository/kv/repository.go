// Package kv persists reminder bookkeeping in the local key-value store as
// whole JSON documents, read-modify-write, no partial update primitive.
package kv

import (
	"context"

	"tasq/internal/model"
	"tasq/pkg/kvstore"
)

// Document keys in the local store.
const (
	keyMappings = "notification_mappings"
	keySummary  = "daily_summary_notification"
	keySettings = "notification_settings"
)

type summaryDoc struct {
	NotificationID string `json:"notification_id"`
}

// Repository implements repository.Repository on a kvstore.Store.
type Repository struct {
	store kvstore.Store
}

// New creates a kv-backed reminder repository.
func New(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) mappings(ctx context.Context) (map[string]string, error) {
	m := make(map[string]string)
	if _, err := r.store.Get(ctx, keyMappings, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// NotificationID implements repository.Repository.
func (r *Repository) NotificationID(ctx context.Context, taskID string) (string, bool, error) {
	m, err := r.mappings(ctx)
	if err != nil {
		return "", false, err
	}
	id, ok := m[taskID]
	return id, ok, nil
}

// StoreMapping implements repository.Repository.
func (r *Repository) StoreMapping(ctx context.Context, taskID, notificationID string) error {
	m, err := r.mappings(ctx)
	if err != nil {
		return err
	}
	m[taskID] = notificationID
	return r.store.Set(ctx, keyMappings, m)
}

// RemoveMapping implements repository.Repository.
func (r *Repository) RemoveMapping(ctx context.Context, taskID string) error {
	m, err := r.mappings(ctx)
	if err != nil {
		return err
	}
	if _, ok := m[taskID]; !ok {
		return nil
	}
	delete(m, taskID)
	return r.store.Set(ctx, keyMappings, m)
}

// SummaryID implements repository.Repository.
func (r *Repository) SummaryID(ctx context.Context) (string, bool, error) {
	var doc summaryDoc
	found, err := r.store.Get(ctx, keySummary, &doc)
	if err != nil {
		return "", false, err
	}
	return doc.NotificationID, found && doc.NotificationID != "", nil
}

// StoreSummaryID implements repository.Repository.
func (r *Repository) StoreSummaryID(ctx context.Context, notificationID string) error {
	return r.store.Set(ctx, keySummary, summaryDoc{NotificationID: notificationID})
}

// ClearSummaryID implements repository.Repository.
func (r *Repository) ClearSummaryID(ctx context.Context) error {
	return r.store.Delete(ctx, keySummary)
}

// Settings implements repository.Repository. A missing document yields the
// defaults without creating it.
func (r *Repository) Settings(ctx context.Context) (model.NotificationSettings, error) {
	settings := model.DefaultNotificationSettings()
	if _, err := r.store.Get(ctx, keySettings, &settings); err != nil {
		return model.DefaultNotificationSettings(), err
	}
	return settings, nil
}

// StoreSettings implements repository.Repository.
func (r *Repository) StoreSettings(ctx context.Context, s model.NotificationSettings) error {
	return r.store.Set(ctx, keySettings, s)
}
