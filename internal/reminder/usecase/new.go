package usecase

import (
	"context"
	"time"

	"tasq/internal/reminder/repository"
	"tasq/pkg/datemath"
	pkgLog "tasq/pkg/log"
	"tasq/pkg/notify"
)

// CompleteFunc is the injected completion hook invoked when a user taps
// "Mark Complete" on a delivered reminder. Policy belongs to the caller.
type CompleteFunc func(ctx context.Context, taskID string) error

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier notify.Scheduler
	dateMath *datemath.Parser
	complete CompleteFunc
	now      func() time.Time
}

// New creates a new reminder UseCase instance. complete may be nil, in which
// case "Mark Complete" actions are logged and dropped.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Scheduler,
	dateMath *datemath.Parser,
	complete CompleteFunc,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		dateMath: dateMath,
		complete: complete,
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
