package intent

import "context"

// UseCase is the task-intent parsing interface. None of its operations return
// errors: every internal failure (network, malformed model output, empty
// input) degrades to the deterministic fallback path.
type UseCase interface {
	// Parse turns a free-text utterance into a structured task intent.
	Parse(ctx context.Context, input string) ParseResult

	// Confirmation produces a short message confirming a created task.
	Confirmation(ctx context.Context, it TaskIntent) string

	// Suggestion produces a clarification hint for input too vague to act on.
	Suggestion(ctx context.Context, rawInput string) string
}
