package usecase_test

import (
	"context"
	"errors"
	"testing"

	"tasq/internal/task"
	"tasq/internal/task/usecase"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	clock, base := fixedClock()

	t.Run("completing stamps CompletedAt and notifies the scheduler", func(t *testing.T) {
		repo := newMockRepo()
		rem := newMockReminder()
		uc := usecase.New(&mockLogger{}, repo, rem, mustParser()).WithClock(clock)

		created, err := uc.Create(ctx, testScope, task.CreateInput{Title: "call Mom", Time: "at 8pm"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		out, err := uc.Toggle(ctx, testScope, created.Task.ID)
		if err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}
		if !out.Task.IsComplete {
			t.Error("IsComplete = false, want true")
		}
		if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(base) {
			t.Errorf("CompletedAt = %v, want %v", out.Task.CompletedAt, base)
		}
		if len(rem.toggled) != 1 || !rem.toggled[0].IsComplete {
			t.Errorf("scheduler saw %+v, want one completed task", rem.toggled)
		}

		// Toggle back clears the stamp.
		out, err = uc.Toggle(ctx, testScope, created.Task.ID)
		if err != nil {
			t.Fatalf("second Toggle() error = %v", err)
		}
		if out.Task.IsComplete || out.Task.CompletedAt != nil {
			t.Errorf("after second toggle: IsComplete=%v CompletedAt=%v", out.Task.IsComplete, out.Task.CompletedAt)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMockRepo(), newMockReminder(), mustParser()).WithClock(clock)

		if _, err := uc.Toggle(ctx, testScope, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Toggle() error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("another user's task is invisible", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, repo, newMockReminder(), mustParser()).WithClock(clock)

		created, err := uc.Create(ctx, testScope, task.CreateInput{Title: "secret"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		stranger := testScope
		stranger.UserID = "user-2"
		if _, err := uc.Toggle(ctx, stranger, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Toggle() error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock()

	t.Run("cancels the reminder and removes the task", func(t *testing.T) {
		repo := newMockRepo()
		rem := newMockReminder()
		uc := usecase.New(&mockLogger{}, repo, rem, mustParser()).WithClock(clock)

		created, err := uc.Create(ctx, testScope, task.CreateInput{Title: "call Mom", Time: "at 8pm"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if err := uc.Delete(ctx, testScope, created.Task.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if len(rem.cancelled) != 1 || rem.cancelled[0] != created.Task.ID {
			t.Errorf("cancelled = %v, want [%s]", rem.cancelled, created.Task.ID)
		}
		if _, err := uc.Detail(ctx, testScope, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Detail() after delete error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMockRepo(), newMockReminder(), mustParser()).WithClock(clock)

		if err := uc.Delete(ctx, testScope, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Delete() error = %v, want ErrTaskNotFound", err)
		}
	})
}
