package usecase

import (
	"regexp"
	"strings"

	"tasq/internal/intent"
	"tasq/internal/model"
)

// Pattern order is load-bearing: time is extracted before date, and within
// each list the first match wins. Overlaps are resolved by this fixed order,
// not by longest match.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at (\d{1,2}):?(\d{0,2})\s*(am|pm)`),
	regexp.MustCompile(`(?i)(\d{1,2}):?(\d{0,2})\s*(am|pm)`),
	regexp.MustCompile(`(?i)at (\d{1,2})\s*(am|pm)`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tomorrow`),
	regexp.MustCompile(`(?i)today`),
	regexp.MustCompile(`(?i)(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
}

var (
	leadInPattern   = regexp.MustCompile(`(?i)^(remind me to|i need to|add task|create task)`)
	leadingToPrefix = regexp.MustCompile(`(?i)^(to )`)
)

// FallbackParse is the deterministic, pattern-based parser used when the
// hosted model is unavailable or returns unusable output. It is pure and
// total: any input yields an intent with a non-empty title.
func FallbackParse(text string) intent.TaskIntent {
	title := text
	var timeExpr, dateExpr string

	for _, pattern := range timePatterns {
		if match := pattern.FindString(text); match != "" {
			timeExpr = match
			title = strings.TrimSpace(removeFirst(title, pattern))
			break
		}
	}

	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			dateExpr = match
			title = strings.TrimSpace(removeFirst(title, pattern))
			break
		}
	}

	title = CleanTitle(title)
	if title == "" {
		title = text
	}

	return intent.TaskIntent{
		Title:    title,
		Time:     timeExpr,
		Date:     dateExpr,
		Priority: model.PriorityMedium,
		Category: model.DefaultCategory,
		AIParsed: false,
	}
}

// CleanTitle strips an imperative lead-in phrase from the start of a working
// title, then a leading "to ", then whitespace. Re-running it on its own
// output is a no-op.
func CleanTitle(title string) string {
	title = removeFirst(title, leadInPattern)
	title = removeFirst(title, leadingToPrefix)
	return strings.TrimSpace(title)
}

func removeFirst(s string, pattern *regexp.Regexp) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
