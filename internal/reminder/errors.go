package reminder

import "errors"

// Domain-specific errors for the reminder package.
var (
	ErrInvalidSummaryHour = errors.New("summary hour must be between 0 and 23")
)
