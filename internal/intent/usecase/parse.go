package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"tasq/internal/intent"
	"tasq/internal/model"
	"tasq/pkg/gemini"
)

// Parse turns a free-text utterance into a structured task intent.
// The model path is tried first; any failure falls through to the
// deterministic pattern-based parser. Parse never fails.
func (uc *implUseCase) Parse(ctx context.Context, input string) intent.ParseResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return uc.fallbackResult(input, intent.ReasonEmptyInput)
	}
	if uc.llm == nil {
		return uc.fallbackResult(input, intent.ReasonModelUnconfigured)
	}

	prompt := gemini.BuildIntentParsingPrompt(trimmed)
	text, err := uc.llm.GenerateText(ctx, prompt, &gemini.GenerationConfig{
		Temperature:     0.2, // Low temperature for deterministic JSON output
		MaxOutputTokens: 512,
	})
	if err != nil {
		uc.l.Warnf(ctx, "intent: model call failed, falling back: %v", err)
		return uc.fallbackResult(input, intent.ReasonModelError)
	}

	parsed, err := decodeIntentJSON(text)
	if err != nil || strings.TrimSpace(parsed.Title) == "" {
		uc.l.Warnf(ctx, "intent: unusable model output %q, falling back", text)
		return uc.fallbackResult(input, intent.ReasonUnusableOutput)
	}

	return intent.ParseResult{
		Intent: intent.TaskIntent{
			Title:    strings.TrimSpace(parsed.Title),
			Time:     normalizeNullable(parsed.Time),
			Date:     normalizeNullable(parsed.Date),
			Priority: model.ParsePriority(parsed.Priority),
			Category: defaultIfEmpty(parsed.Category, model.DefaultCategory),
			AIParsed: true,
		},
		Source: intent.SourceModel,
	}
}

func (uc *implUseCase) fallbackResult(input string, reason intent.FallbackReason) intent.ParseResult {
	return intent.ParseResult{
		Intent:         FallbackParse(input),
		Source:         intent.SourceFallback,
		FallbackReason: reason,
	}
}

// decodeIntentJSON parses the model's response as a strict-JSON intent object,
// tolerating markdown fences and minor JSON damage.
func decodeIntentJSON(text string) (gemini.ParsedIntent, error) {
	cleaned := sanitizeJSONResponse(text)

	var parsed gemini.ParsedIntent
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		return parsed, nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return gemini.ParsedIntent{}, err
	}
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return gemini.ParsedIntent{}, err
	}
	return parsed, nil
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFencePattern.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeNullable maps JSON null and the literal string "null" to absent.
func normalizeNullable(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

func defaultIfEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
