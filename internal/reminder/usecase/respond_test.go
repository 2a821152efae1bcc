package usecase_test

import (
	"context"
	"testing"
	"time"

	"tasq/internal/reminder"
	"tasq/internal/reminder/usecase"
)

func TestHandleResponse(t *testing.T) {
	ctx := context.Background()
	clock, base := fixedClock()

	t.Run("routing table", func(t *testing.T) {
		tests := []struct {
			name string
			resp reminder.NotificationResponse
			want reminder.Route
		}{
			{
				name: "view tasks action",
				resp: reminder.NotificationResponse{Action: reminder.ActionViewTasks},
				want: reminder.RouteTasks,
			},
			{
				name: "default tap on task reminder",
				resp: reminder.NotificationResponse{Action: reminder.ActionDefault, Type: reminder.TypeTaskReminder},
				want: reminder.RouteTasks,
			},
			{
				name: "default tap on daily summary",
				resp: reminder.NotificationResponse{Action: reminder.ActionDefault, Type: reminder.TypeDailySummary},
				want: reminder.RouteCalendar,
			},
			{
				name: "default tap with unknown type",
				resp: reminder.NotificationResponse{Action: reminder.ActionDefault, Type: "SOMETHING_ELSE"},
				want: reminder.RouteNone,
			},
			{
				name: "unknown action",
				resp: reminder.NotificationResponse{Action: "DISMISS"},
				want: reminder.RouteNone,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				uc := usecase.New(&mockLogger{}, newTestRepo(), newMockNotifier(), mustParser(), nil).WithClock(clock)
				got, err := uc.HandleResponse(ctx, tc.resp)
				if err != nil {
					t.Fatalf("HandleResponse() error = %v", err)
				}
				if got != tc.want {
					t.Errorf("HandleResponse() = %q, want %q", got, tc.want)
				}
			})
		}
	})

	t.Run("mark complete invokes the completion hook", func(t *testing.T) {
		var completed []string
		complete := func(ctx context.Context, taskID string) error {
			completed = append(completed, taskID)
			return nil
		}
		uc := usecase.New(&mockLogger{}, newTestRepo(), newMockNotifier(), mustParser(), complete).WithClock(clock)

		route, err := uc.HandleResponse(ctx, reminder.NotificationResponse{
			Action: reminder.ActionMarkComplete,
			Type:   reminder.TypeTaskReminder,
			TaskID: "task-1",
		})
		if err != nil {
			t.Fatalf("HandleResponse() error = %v", err)
		}
		if route != reminder.RouteNone {
			t.Errorf("route = %q, want none", route)
		}
		if len(completed) != 1 || completed[0] != "task-1" {
			t.Errorf("completed = %v, want [task-1]", completed)
		}
	})

	t.Run("mark complete without a hook is dropped", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newTestRepo(), newMockNotifier(), mustParser(), nil).WithClock(clock)

		route, err := uc.HandleResponse(ctx, reminder.NotificationResponse{
			Action: reminder.ActionMarkComplete,
			TaskID: "task-1",
		})
		if err != nil {
			t.Fatalf("HandleResponse() error = %v", err)
		}
		if route != reminder.RouteNone {
			t.Errorf("route = %q, want none", route)
		}
	})

	t.Run("snooze schedules a fresh delivery without touching the mapping", func(t *testing.T) {
		repo := newTestRepo()
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, repo, notifier, mustParser(), nil).WithClock(clock)

		original, err := uc.ScheduleTaskReminder(ctx, reminder.ReminderInput{
			TaskID: "task-1", Title: "call Mom", Date: "tomorrow", Time: "at 8pm",
		})
		if err != nil {
			t.Fatalf("schedule: %v", err)
		}

		route, err := uc.HandleResponse(ctx, reminder.NotificationResponse{
			Action:    reminder.ActionSnooze,
			Type:      reminder.TypeTaskReminder,
			TaskID:    "task-1",
			TaskTitle: "call Mom",
		})
		if err != nil {
			t.Fatalf("HandleResponse() error = %v", err)
		}
		if route != reminder.RouteNone {
			t.Errorf("route = %q, want none", route)
		}

		if len(notifier.live) != 2 {
			t.Fatalf("notifier has %d live notifications, want 2", len(notifier.live))
		}
		if mapped, _, _ := repo.NotificationID(ctx, "task-1"); mapped != original {
			t.Errorf("mapping = %q, want the original %q", mapped, original)
		}

		want := base.Add(10 * time.Minute)
		for id, trigger := range notifier.triggers {
			if id == original {
				continue
			}
			if !trigger.At.Equal(want) {
				t.Errorf("snoozed fire time = %v, want %v", trigger.At, want)
			}
			if got := notifier.live[id].Title; got != reminder.ReminderSnoozedTitle {
				t.Errorf("snoozed title = %q, want %q", got, reminder.ReminderSnoozedTitle)
			}
		}
	})

	t.Run("snooze without task id is ignored", func(t *testing.T) {
		notifier := newMockNotifier()
		uc := usecase.New(&mockLogger{}, newTestRepo(), notifier, mustParser(), nil).WithClock(clock)

		if _, err := uc.HandleResponse(ctx, reminder.NotificationResponse{Action: reminder.ActionSnooze}); err != nil {
			t.Fatalf("HandleResponse() error = %v", err)
		}
		if len(notifier.live) != 0 {
			t.Error("no notification expected")
		}
	})
}
