package ephemeris

import "errors"

// Sentinel errors for calendar input parsing.
var (
	// ErrInvalidDate indicates a date string that is not a valid YYYY-MM-DD
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime indicates a clock string that is not a valid HH:MM time.
	ErrInvalidTime = errors.New("invalid time")
)
