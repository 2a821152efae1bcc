package usecase

import (
	"context"
	"time"

	"tasq/internal/model"
)

// Watch polls the store and pushes a full snapshot of the caller's tasks for
// today on every tick, until ctx is cancelled. The first snapshot is emitted
// immediately. Poll failures are logged and skipped; the previous snapshot
// stands until the next successful poll.
func (uc *implUseCase) Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error) {
	out := make(chan []model.Task, 1)

	// Fail fast when the store is unreachable rather than handing the caller
	// a channel that never produces.
	first, err := uc.ListToday(ctx, sc)
	if err != nil {
		return nil, err
	}
	out <- first.Tasks

	go func() {
		defer close(out)

		ticker := time.NewTicker(uc.watchInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			snapshot, err := uc.ListToday(ctx, sc)
			if err != nil {
				uc.l.Warnf(ctx, "uc.Watch ListToday: %v", err)
				continue
			}

			select {
			case out <- snapshot.Tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
