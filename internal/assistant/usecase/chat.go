package usecase

import (
	"context"

	"tasq/internal/assistant"
	"tasq/internal/model"
	"tasq/internal/task"
)

// minActionableTitle is the shortest title worth persisting. Anything shorter
// gets a clarification hint instead of a task.
const minActionableTitle = 3

// Chat parses one message, persists the extracted task, and builds the reply.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	result := uc.intent.Parse(ctx, input.Text)
	it := result.Intent

	uc.l.Debugf(ctx, "assistant: parsed %q via %s (reason %q)", input.Text, result.Source, result.FallbackReason)

	if len(it.Title) < minActionableTitle {
		return assistant.ChatOutput{
			Reply:    uc.intent.Suggestion(ctx, input.Text),
			AIParsed: it.AIParsed,
		}, nil
	}

	out := assistant.ChatOutput{
		Reply:    uc.intent.Confirmation(ctx, it),
		AIParsed: it.AIParsed,
	}

	created, err := uc.task.Create(ctx, sc, task.CreateInput{
		Title:     it.Title,
		Date:      it.Date,
		Time:      it.Time,
		Priority:  string(it.Priority),
		Category:  it.Category,
		CreatedBy: task.CreatedByAI,
	})
	if err != nil {
		// The reply stands even when persistence fails; the caller's message
		// was understood and the failure is an infrastructure concern.
		uc.l.Errorf(ctx, "assistant: failed to persist task %q: %v", it.Title, err)
		return out, nil
	}

	out.Created = &created.Task
	return out, nil
}
