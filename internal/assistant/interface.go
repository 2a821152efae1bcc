package assistant

import (
	"context"

	"tasq/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat turns one free-form user message into a reply and, when the message
	// carries a usable task intent, a persisted task with its reminder. Chat
	// never returns an error for parse or persistence problems; the reply
	// degrades instead.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
