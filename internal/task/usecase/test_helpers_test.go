package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tasq/internal/model"
	"tasq/internal/reminder"
	repo "tasq/internal/task/repository"
	"tasq/pkg/datemath"
)

// mock logger

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory repository.Repository. Guarded by a mutex so
// Watch's polling goroutine can race test mutations safely.
type mockRepo struct {
	mu        sync.Mutex
	nextID    int
	tasks     map[string]model.Task
	createErr error
	listErr   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.Task)}
}

func (m *mockRepo) put(t model.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.ID] = t
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.nextID++
	t := model.Task{
		ID:        fmt.Sprintf("task-%d", m.nextID),
		Title:     opt.Title,
		Date:      opt.Date,
		Time:      opt.Time,
		Priority:  opt.Priority,
		Category:  opt.Category,
		UserID:    opt.UserID,
		CreatedAt: opt.CreatedAt,
		CreatedBy: opt.CreatedBy,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.UserID != "" && t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.Date != "" && t.Date != opt.Date {
			continue
		}
		out = append(out, t)
	}
	// Newest first, matching the store implementation.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Date != nil {
		t.Date = *opt.Date
	}
	if opt.Time != nil {
		t.Time = *opt.Time
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.IsComplete != nil {
		t.IsComplete = *opt.IsComplete
	}
	if opt.CompletedAt != nil {
		if opt.CompletedAt.IsZero() {
			t.CompletedAt = nil
		} else {
			at := *opt.CompletedAt
			t.CompletedAt = &at
		}
	}
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

// mockReminder records reminder.UseCase calls.
type mockReminder struct {
	settings model.NotificationSettings

	scheduled []reminder.ReminderInput
	cancelled []string
	toggled   []model.Task
}

func newMockReminder() *mockReminder {
	return &mockReminder{settings: model.DefaultNotificationSettings()}
}

func (m *mockReminder) ScheduleTaskReminder(ctx context.Context, in reminder.ReminderInput) (string, error) {
	m.scheduled = append(m.scheduled, in)
	return fmt.Sprintf("notif-%d", len(m.scheduled)), nil
}

func (m *mockReminder) CancelTaskReminder(ctx context.Context, taskID string) error {
	m.cancelled = append(m.cancelled, taskID)
	return nil
}

func (m *mockReminder) HandleToggle(ctx context.Context, t model.Task) error {
	m.toggled = append(m.toggled, t)
	return nil
}

func (m *mockReminder) ScheduleDailySummary(ctx context.Context, hour int) (string, error) {
	return "", nil
}

func (m *mockReminder) CancelDailySummary(ctx context.Context) error { return nil }

func (m *mockReminder) Settings(ctx context.Context) (model.NotificationSettings, error) {
	return m.settings, nil
}

func (m *mockReminder) UpdateSettings(ctx context.Context, patch model.NotificationSettingsPatch) (model.NotificationSettings, error) {
	merged, _ := patch.Apply(m.settings)
	m.settings = merged
	return merged, nil
}

func (m *mockReminder) HandleResponse(ctx context.Context, resp reminder.NotificationResponse) (reminder.Route, error) {
	return reminder.RouteNone, nil
}

func mustParser() *datemath.Parser {
	p, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	return p
}

// fixedClock returns a clock pinned to a Wednesday morning.
func fixedClock() (func() time.Time, time.Time) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // Wednesday 09:00
	return func() time.Time { return base }, base
}

var testScope = model.Scope{UserID: "user-1", DisplayName: "Alex"}
