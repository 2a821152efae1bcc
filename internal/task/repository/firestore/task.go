package firestore

import (
	"context"
	"errors"
	"net/http"
	"sort"

	firestore "google.golang.org/api/firestore/v1"
	"google.golang.org/api/googleapi"

	"tasq/internal/model"
	repo "tasq/internal/task/repository"
)

// CreateTask inserts a new task document and returns the created entity.
// The document id is assigned by the store.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	doc := &firestore.Document{
		Fields: map[string]firestore.Value{
			fieldTitle:      strValue(opt.Title),
			fieldDate:       strValue(opt.Date),
			fieldTime:       strValue(opt.Time),
			fieldPriority:   strValue(string(opt.Priority)),
			fieldCategory:   strValue(opt.Category),
			fieldIsComplete: boolValue(false),
			fieldUserID:     strValue(opt.UserID),
			fieldCreatedAt:  timestampValue(opt.CreatedAt),
			fieldCreatedBy:  strValue(opt.CreatedBy),
		},
	}

	created, err := r.svc.Projects.Databases.Documents.
		CreateDocument(r.parent, collectionTasks, doc).
		Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return docToTask(created), nil
}

// GetOneTask retrieves a single task document by id. Returns zero-value Task
// (ID == "") when not found or owned by a different user — no error for
// not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	doc, err := r.svc.Projects.Databases.Documents.
		Get(r.documentName(opt.ID)).
		Context(ctx).Do()
	if isNotFound(err) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	t := docToTask(doc)
	if opt.UserID != "" && t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

// ListTasks returns task documents matching the options, createdAt descending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var tasks []model.Task

	pageToken := ""
	for {
		call := r.svc.Projects.Databases.Documents.
			List(r.parent, collectionTasks).
			PageSize(300).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}

		for _, doc := range resp.Documents {
			t := docToTask(doc)
			if opt.UserID != "" && t.UserID != opt.UserID {
				continue
			}
			if opt.Date != "" && t.Date != opt.Date {
				continue
			}
			tasks = append(tasks, t)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// UpdateTask applies a partial update and returns the updated entity.
// Returns zero-value Task when the document does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	fields := make(map[string]firestore.Value)
	var mask []string

	if opt.Title != nil {
		fields[fieldTitle] = strValue(*opt.Title)
		mask = append(mask, fieldTitle)
	}
	if opt.Date != nil {
		fields[fieldDate] = strValue(*opt.Date)
		mask = append(mask, fieldDate)
	}
	if opt.Time != nil {
		fields[fieldTime] = strValue(*opt.Time)
		mask = append(mask, fieldTime)
	}
	if opt.Priority != nil {
		fields[fieldPriority] = strValue(string(*opt.Priority))
		mask = append(mask, fieldPriority)
	}
	if opt.Category != nil {
		fields[fieldCategory] = strValue(*opt.Category)
		mask = append(mask, fieldCategory)
	}
	if opt.IsComplete != nil {
		fields[fieldIsComplete] = boolValue(*opt.IsComplete)
		mask = append(mask, fieldIsComplete)
	}
	if opt.CompletedAt != nil {
		if opt.CompletedAt.IsZero() {
			fields[fieldCompletedAt] = nullValue()
		} else {
			fields[fieldCompletedAt] = timestampValue(*opt.CompletedAt)
		}
		mask = append(mask, fieldCompletedAt)
	}

	if len(mask) == 0 {
		return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
	}

	updated, err := r.svc.Projects.Databases.Documents.
		Patch(r.documentName(opt.ID), &firestore.Document{Fields: fields}).
		UpdateMaskFieldPaths(mask...).
		CurrentDocumentExists(true).
		Context(ctx).Do()
	if isNotFound(err) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return docToTask(updated), nil
}

// DeleteTask removes a task document. Deleting an absent document is a no-op.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	_, err := r.svc.Projects.Databases.Documents.
		Delete(r.documentName(id)).
		Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) documentName(id string) string {
	return r.parent + "/" + collectionTasks + "/" + id
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
