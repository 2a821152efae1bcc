package usecase_test

import (
	"context"
	"fmt"
	"time"

	"tasq/internal/reminder/repository/kv"
	"tasq/pkg/datemath"
	"tasq/pkg/kvstore"
	"tasq/pkg/notify"
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

// mockNotifier records scheduled and cancelled notifications in memory.
type mockNotifier struct {
	nextID      int
	live        map[string]notify.Content
	triggers    map[string]notify.Trigger
	scheduleErr error
	cancelCalls int
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		live:     make(map[string]notify.Content),
		triggers: make(map[string]notify.Trigger),
	}
}

func (m *mockNotifier) Schedule(ctx context.Context, content notify.Content, trigger notify.Trigger) (string, error) {
	if m.scheduleErr != nil {
		return "", m.scheduleErr
	}
	m.nextID++
	id := fmt.Sprintf("notif-%d", m.nextID)
	m.live[id] = content
	m.triggers[id] = trigger
	return id, nil
}

func (m *mockNotifier) Cancel(ctx context.Context, id string) error {
	m.cancelCalls++
	delete(m.live, id)
	delete(m.triggers, id)
	return nil
}

// newTestRepo builds a kv-backed reminder repository on a memory filesystem.
func newTestRepo() *kv.Repository {
	return kv.New(kvstore.NewInMemory())
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
