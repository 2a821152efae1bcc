package usecase_test

import (
	"context"
	"testing"
	"time"

	"tasq/internal/model"
	"tasq/internal/task/usecase"
)

func TestListToday(t *testing.T) {
	ctx := context.Background()
	clock, base := fixedClock()

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo, newMockReminder(), mustParser()).WithClock(clock)

	seed := []model.Task{
		{ID: "a", Title: "older", Date: "2024-05-01", UserID: "user-1", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "b", Title: "newer", Date: "2024-05-01", UserID: "user-1", CreatedAt: base.Add(-time.Hour)},
		{ID: "c", Title: "tomorrow", Date: "2024-05-02", UserID: "user-1", CreatedAt: base},
		{ID: "d", Title: "other user", Date: "2024-05-01", UserID: "user-2", CreatedAt: base},
	}
	for _, s := range seed {
		repo.put(s)
	}

	out, err := uc.ListToday(ctx, testScope)
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if out.Date != "2024-05-01" {
		t.Errorf("Date = %q, want 2024-05-01", out.Date)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(out.Tasks))
	}
	// Newest first.
	if out.Tasks[0].ID != "b" || out.Tasks[1].ID != "a" {
		t.Errorf("order = [%s %s], want [b a]", out.Tasks[0].ID, out.Tasks[1].ID)
	}
}

func TestListByDate(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock()

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo, newMockReminder(), mustParser()).WithClock(clock)

	repo.put(model.Task{ID: "a", Date: "2024-05-02", UserID: "user-1"})

	// Free-form expressions resolve the same way creation does.
	out, err := uc.ListByDate(ctx, testScope, "tomorrow")
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if out.Date != "2024-05-02" || len(out.Tasks) != 1 {
		t.Errorf("Date = %q, %d tasks; want 2024-05-02 with 1 task", out.Date, len(out.Tasks))
	}
}

func TestCompletionTrend(t *testing.T) {
	ctx := context.Background()
	clock, base := fixedClock()

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo, newMockReminder(), mustParser()).WithClock(clock)

	day := func(offset int) string {
		return base.AddDate(0, 0, offset).Format("2006-01-02")
	}
	seed := []model.Task{
		{ID: "a", Date: day(0), UserID: "user-1", IsComplete: true},
		{ID: "b", Date: day(0), UserID: "user-1"},
		{ID: "c", Date: day(-3), UserID: "user-1", IsComplete: true},
		{ID: "d", Date: day(-10), UserID: "user-1", IsComplete: true}, // outside the window
		{ID: "e", Date: day(0), UserID: "user-2", IsComplete: true},   // other user
	}
	for _, s := range seed {
		repo.put(s)
	}

	out, err := uc.CompletionTrend(ctx, testScope)
	if err != nil {
		t.Fatalf("CompletionTrend() error = %v", err)
	}
	if len(out.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(out.Days))
	}
	if out.Days[0].Date != day(-6) || out.Days[6].Date != day(0) {
		t.Errorf("window = %s..%s, want %s..%s", out.Days[0].Date, out.Days[6].Date, day(-6), day(0))
	}

	today := out.Days[6]
	if today.Total != 2 || today.Completed != 1 || today.Rate != 0.5 {
		t.Errorf("today = %+v, want {Total:2 Completed:1 Rate:0.5}", today)
	}

	threeDaysAgo := out.Days[3]
	if threeDaysAgo.Total != 1 || threeDaysAgo.Completed != 1 || threeDaysAgo.Rate != 1 {
		t.Errorf("day(-3) = %+v, want {Total:1 Completed:1 Rate:1}", threeDaysAgo)
	}

	empty := out.Days[0]
	if empty.Total != 0 || empty.Rate != 0 {
		t.Errorf("empty day = %+v, want zero", empty)
	}
}
