package kvstore_test

import (
	"context"
	"testing"

	"tasq/pkg/kvstore"
)

type settingsDoc struct {
	TaskReminders bool `json:"task_reminders"`
	SummaryTime   int  `json:"summary_time"`
}

func TestSetGetRoundTrip(t *testing.T) {
	store := kvstore.NewInMemory()
	ctx := context.Background()

	want := settingsDoc{TaskReminders: true, SummaryTime: 20}
	if err := store.Set(ctx, "notification_settings", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got settingsDoc
	found, err := store.Get(ctx, "notification_settings", &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatalf("expected document to exist")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetMissing(t *testing.T) {
	store := kvstore.NewInMemory()

	var got settingsDoc
	found, err := store.Get(context.Background(), "nope", &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Errorf("expected missing document")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	store := kvstore.NewInMemory()
	ctx := context.Background()

	if err := store.Set(ctx, "doc", map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(ctx, "doc"); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "doc"); err != nil {
		t.Fatalf("second Delete should be a no-op, got: %v", err)
	}

	var got map[string]string
	found, _ := store.Get(ctx, "doc", &got)
	if found {
		t.Errorf("document should be gone")
	}
}

func TestSetOverwritesWholeDocument(t *testing.T) {
	store := kvstore.NewInMemory()
	ctx := context.Background()

	_ = store.Set(ctx, "mappings", map[string]string{"task-1": "notif-1", "task-2": "notif-2"})
	_ = store.Set(ctx, "mappings", map[string]string{"task-3": "notif-3"})

	var got map[string]string
	found, err := store.Get(ctx, "mappings", &got)
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if len(got) != 1 || got["task-3"] != "notif-3" {
		t.Errorf("expected whole-document overwrite, got %v", got)
	}
}
