// Package notify is the local-notification collaborator: it registers one-shot
// or daily-repeating notifications against absolute fire times and delivers
// them through a caller-provided hook.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrPermissionDenied is returned when notification permission has not been
// granted. Callers treat it as a silent feature-disable.
var ErrPermissionDenied = errors.New("notification permission not granted")

// Content is the user-visible payload of a notification.
type Content struct {
	Title    string
	Body     string
	Category string
	Data     map[string]string
}

// Trigger describes when a notification fires. Repeating triggers re-arm
// every 24 hours after each delivery.
type Trigger struct {
	At      time.Time
	Repeats bool
}

// Scheduler registers and cancels scheduled notifications.
type Scheduler interface {
	Schedule(ctx context.Context, content Content, trigger Trigger) (string, error)
	Cancel(ctx context.Context, id string) error
}

// DeliverFunc is invoked when a scheduled notification fires.
type DeliverFunc func(id string, content Content)

type pending struct {
	content Content
	trigger Trigger
	timer   *time.Timer
}

// Local is an in-process Scheduler backed by timers.
type Local struct {
	mu      sync.Mutex
	granted bool
	deliver DeliverFunc
	entries map[string]*pending
}

// NewLocal creates a Local scheduler. deliver may be nil when nothing consumes
// fired notifications (e.g. tests that only assert scheduling state).
func NewLocal(deliver DeliverFunc) *Local {
	return &Local{
		granted: true,
		deliver: deliver,
		entries: make(map[string]*pending),
	}
}

// SetPermission flips the permission gate. Denied permission turns every
// Schedule call into ErrPermissionDenied until re-granted.
func (l *Local) SetPermission(granted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.granted = granted
}

// Schedule implements Scheduler. Fire times in the past are rejected.
func (l *Local) Schedule(ctx context.Context, content Content, trigger Trigger) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.granted {
		return "", ErrPermissionDenied
	}

	delay := time.Until(trigger.At)
	if delay <= 0 {
		return "", errors.New("notification fire time is not in the future")
	}

	id := uuid.NewString()
	entry := &pending{content: content, trigger: trigger}
	entry.timer = time.AfterFunc(delay, func() { l.fire(id) })
	l.entries[id] = entry

	return id, nil
}

// Cancel implements Scheduler. Unknown ids are a no-op.
func (l *Local) Cancel(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[id]; ok {
		entry.timer.Stop()
		delete(l.entries, id)
	}
	return nil
}

// Pending reports whether a notification id is still scheduled.
func (l *Local) Pending(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.entries[id]
	return ok
}

// PendingCount returns the number of live scheduled notifications.
func (l *Local) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Close stops all timers without delivering anything.
func (l *Local) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, entry := range l.entries {
		entry.timer.Stop()
		delete(l.entries, id)
	}
}

func (l *Local) fire(id string) {
	l.mu.Lock()
	entry, ok := l.entries[id]
	if !ok {
		l.mu.Unlock()
		return
	}

	if entry.trigger.Repeats {
		entry.trigger.At = entry.trigger.At.Add(24 * time.Hour)
		entry.timer = time.AfterFunc(time.Until(entry.trigger.At), func() { l.fire(id) })
	} else {
		delete(l.entries, id)
	}

	deliver := l.deliver
	content := entry.content
	l.mu.Unlock()

	if deliver != nil {
		deliver(id, content)
	}
}
