package usecase

import (
	"context"
	"fmt"
	"strings"

	"tasq/internal/intent"
	"tasq/pkg/gemini"
)

// DefaultSuggestion is the fixed clarification hint used when the model is
// unavailable.
const DefaultSuggestion = "I'd be happy to help you manage your tasks! Try saying something like 'Remind me to call Mom at 8pm' or 'Add workout to tomorrow'."

// Confirmation produces a short, friendly message confirming a created task.
// Model-backed when possible, fixed-template otherwise; never fails.
func (uc *implUseCase) Confirmation(ctx context.Context, it intent.TaskIntent) string {
	if uc.llm != nil {
		prompt := gemini.BuildConfirmationPrompt(it.Title, it.Time, it.Date, string(it.Priority), it.Category)
		if text, err := uc.llm.GenerateText(ctx, prompt, nil); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			uc.l.Warnf(ctx, "intent: confirmation generation failed, using template: %v", err)
		}
	}

	timeText := ""
	if it.Time != "" {
		timeText = fmt.Sprintf(" at %s", it.Time)
	}
	dateText := ""
	if it.Date != "" {
		dateText = fmt.Sprintf(" for %s", it.Date)
	}
	return fmt.Sprintf("Great! I've added %q to your tasks%s%s. Keep up the momentum! 🚀", it.Title, timeText, dateText)
}

// Suggestion produces a clarification hint for input too vague to act on.
func (uc *implUseCase) Suggestion(ctx context.Context, rawInput string) string {
	if uc.llm != nil {
		prompt := gemini.BuildSuggestionPrompt(rawInput)
		if text, err := uc.llm.GenerateText(ctx, prompt, nil); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			uc.l.Warnf(ctx, "intent: suggestion generation failed, using template: %v", err)
		}
	}
	return DefaultSuggestion
}
