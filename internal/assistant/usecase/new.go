package usecase

import (
	"tasq/internal/intent"
	"tasq/internal/task"
	pkgLog "tasq/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	intent intent.UseCase
	task   task.UseCase
}

// New creates a new assistant UseCase implementation.
func New(l pkgLog.Logger, it intent.UseCase, tk task.UseCase) *implUseCase {
	return &implUseCase{
		l:      l,
		intent: it,
		task:   tk,
	}
}
