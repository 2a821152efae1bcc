package http

import (
	"tasq/internal/reminder"
	pkgLog "tasq/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l pkgLog.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
