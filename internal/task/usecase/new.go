package usecase

import (
	"time"

	"tasq/internal/reminder"
	"tasq/internal/task/repository"
	"tasq/pkg/datemath"
	pkgLog "tasq/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	reminder reminder.UseCase
	dateMath *datemath.Parser
	now      func() time.Time

	watchInterval time.Duration
}

// defaultWatchInterval is how often Watch polls the store for changes.
const defaultWatchInterval = 15 * time.Second

// New creates a new task UseCase implementation.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	rem reminder.UseCase,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		reminder:      rem,
		dateMath:      dateMath,
		now:           time.Now,
		watchInterval: defaultWatchInterval,
	}
}

// WithClock overrides the time source, for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

// WithWatchInterval overrides the Watch polling interval, for tests.
func (uc *implUseCase) WithWatchInterval(d time.Duration) *implUseCase {
	uc.watchInterval = d
	return uc
}
