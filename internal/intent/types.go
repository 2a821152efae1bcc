package intent

import "tasq/internal/model"

// TaskIntent is the structured result of parsing one utterance. Time and Date
// hold the extracted expressions verbatim ("at 8pm", "tomorrow"); empty means
// absent.
type TaskIntent struct {
	Title    string
	Time     string
	Date     string
	Priority model.Priority
	Category string
	AIParsed bool
}

// ParseSource tags which of the two parsing paths produced an intent.
type ParseSource string

const (
	SourceModel    ParseSource = "model"
	SourceFallback ParseSource = "fallback"
)

// FallbackReason explains why the fallback path was taken.
type FallbackReason string

const (
	ReasonNone              FallbackReason = ""
	ReasonEmptyInput        FallbackReason = "empty_input"
	ReasonModelUnconfigured FallbackReason = "model_unconfigured"
	ReasonModelError        FallbackReason = "model_error"
	ReasonUnusableOutput    FallbackReason = "unusable_output"
)

// ParseResult is the tagged outcome of Parse: exactly one path populates the
// intent, and FallbackReason is set only when Source is SourceFallback.
type ParseResult struct {
	Intent         TaskIntent
	Source         ParseSource
	FallbackReason FallbackReason
}
