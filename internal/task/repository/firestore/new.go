// Package firestore stores task documents in Cloud Firestore through the
// generated REST client. Queries pull the tasks collection and filter
// client-side, so no composite index is required.
package firestore

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	firestore "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"

	"tasq/internal/task/repository"
	pkgLog "tasq/pkg/log"
)

const collectionTasks = "tasks"

type implRepository struct {
	svc    *firestore.Service
	parent string // projects/<id>/databases/(default)/documents
	l      pkgLog.Logger
}

// New creates a new Firestore-backed Repository for the task domain.
func New(svc *firestore.Service, projectID string, l pkgLog.Logger) repository.Repository {
	if svc == nil {
		panic("task/repository/firestore: service is required")
	}
	return &implRepository{
		svc:    svc,
		parent: fmt.Sprintf("projects/%s/databases/(default)/documents", projectID),
		l:      l,
	}
}

// NewServiceFromCredentialsFile creates a Firestore service from a Service
// Account JSON file path.
func NewServiceFromCredentialsFile(ctx context.Context, credentialsPath string) (*firestore.Service, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewServiceFromCredentialsJSON(ctx, data)
}

// NewServiceFromCredentialsJSON creates a Firestore service from raw Service
// Account JSON bytes.
func NewServiceFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*firestore.Service, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, firestore.DatastoreScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	svc, err := firestore.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}
	return svc, nil
}

// NewServiceFromEndpoint creates a Firestore service against a custom endpoint
// without authentication, for tests and local emulators.
func NewServiceFromEndpoint(ctx context.Context, endpoint string) (*firestore.Service, error) {
	svc, err := firestore.NewService(ctx,
		option.WithEndpoint(endpoint),
		option.WithoutAuthentication(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}
	return svc, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/firestore.%s", method)
}
