package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasq/internal/model"
	"tasq/internal/reminder"
	"tasq/internal/reminder/usecase"
)

func TestScheduleDailySummary(t *testing.T) {
	ctx := context.Background()
	clock, base := fixedClock() // 09:00

	t.Run("schedules repeating notification at next occurrence", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		id, err := uc.ScheduleDailySummary(ctx, 20)
		if err != nil {
			t.Fatalf("ScheduleDailySummary() error = %v", err)
		}
		if id == "" {
			t.Fatal("expected a notification id")
		}

		trigger := notifier.triggers[id]
		want := time.Date(base.Year(), base.Month(), base.Day(), 20, 0, 0, 0, time.UTC)
		if !trigger.At.Equal(want) {
			t.Errorf("fire time = %v, want %v", trigger.At, want)
		}
		if !trigger.Repeats {
			t.Error("daily summary must repeat")
		}

		stored, found, err := repo.SummaryID(ctx)
		if err != nil || !found || stored != id {
			t.Errorf("SummaryID() = %q, %v, %v; want %q", stored, found, err, id)
		}
	})

	t.Run("hour already passed rolls to tomorrow", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		id, err := uc.ScheduleDailySummary(ctx, 8)
		if err != nil {
			t.Fatalf("ScheduleDailySummary() error = %v", err)
		}
		want := time.Date(base.Year(), base.Month(), base.Day()+1, 8, 0, 0, 0, time.UTC)
		if got := notifier.triggers[id].At; !got.Equal(want) {
			t.Errorf("fire time = %v, want %v", got, want)
		}
	})

	t.Run("rescheduling replaces the prior notification", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		first, err := uc.ScheduleDailySummary(ctx, 20)
		if err != nil {
			t.Fatalf("first schedule: %v", err)
		}
		second, err := uc.ScheduleDailySummary(ctx, 21)
		if err != nil {
			t.Fatalf("second schedule: %v", err)
		}

		if len(notifier.live) != 1 {
			t.Fatalf("notifier has %d live notifications, want 1", len(notifier.live))
		}
		if _, ok := notifier.live[first]; ok {
			t.Error("first summary notification should have been cancelled")
		}
		if stored, _, _ := repo.SummaryID(ctx); stored != second {
			t.Errorf("stored summary id = %q, want %q", stored, second)
		}
	})

	t.Run("rejects out-of-range hour", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		for _, hour := range []int{-1, 24, 100} {
			if _, err := uc.ScheduleDailySummary(ctx, hour); !errors.Is(err, reminder.ErrInvalidSummaryHour) {
				t.Errorf("ScheduleDailySummary(%d) error = %v, want ErrInvalidSummaryHour", hour, err)
			}
		}
		if len(notifier.live) != 0 {
			t.Error("no notification should be registered")
		}
	})
}

func TestCancelDailySummary(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock()

	repo := newTestRepo()
	notifier := newMockNotifier()
	uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

	// Cancel with nothing scheduled is a no-op.
	if err := uc.CancelDailySummary(ctx); err != nil {
		t.Fatalf("CancelDailySummary() error = %v", err)
	}

	if _, err := uc.ScheduleDailySummary(ctx, 20); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := uc.CancelDailySummary(ctx); err != nil {
		t.Fatalf("CancelDailySummary() error = %v", err)
	}
	if len(notifier.live) != 0 {
		t.Error("summary notification still live after cancel")
	}
	if _, found, _ := repo.SummaryID(ctx); found {
		t.Error("summary id still stored after cancel")
	}
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock()

	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(n int) *int { return &n }

	t.Run("changing summary hour reschedules", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		merged, err := uc.UpdateSettings(ctx, model.NotificationSettingsPatch{SummaryTime: intPtr(7)})
		if err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}
		if merged.SummaryTime != 7 {
			t.Errorf("SummaryTime = %d, want 7", merged.SummaryTime)
		}
		if len(notifier.live) != 1 {
			t.Fatalf("notifier has %d live notifications, want 1", len(notifier.live))
		}

		stored, err := repo.Settings(ctx)
		if err != nil {
			t.Fatalf("Settings() error = %v", err)
		}
		if stored != merged {
			t.Errorf("stored settings = %+v, want %+v", stored, merged)
		}
	})

	t.Run("disabling the summary cancels it", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		if _, err := uc.ScheduleDailySummary(ctx, 20); err != nil {
			t.Fatalf("schedule: %v", err)
		}
		merged, err := uc.UpdateSettings(ctx, model.NotificationSettingsPatch{DailySummary: boolPtr(false)})
		if err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}
		if merged.DailySummary {
			t.Error("DailySummary should be off")
		}
		if len(notifier.live) != 0 {
			t.Error("summary notification still live")
		}
		if _, found, _ := repo.SummaryID(ctx); found {
			t.Error("summary id still stored")
		}
	})

	t.Run("toggling task reminders leaves the summary alone", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		id, err := uc.ScheduleDailySummary(ctx, 20)
		if err != nil {
			t.Fatalf("schedule: %v", err)
		}
		if _, err := uc.UpdateSettings(ctx, model.NotificationSettingsPatch{TaskReminders: boolPtr(false)}); err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}
		if _, ok := notifier.live[id]; !ok {
			t.Error("summary notification should be untouched")
		}
	})
}
