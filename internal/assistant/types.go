package assistant

import "tasq/internal/model"

type ChatInput struct {
	Text string
}

type ChatOutput struct {
	Reply string
	// Created is set when the message produced a task.
	Created *model.Task
	// AIParsed reports whether the model or the deterministic fallback
	// extracted the intent.
	AIParsed bool
}
