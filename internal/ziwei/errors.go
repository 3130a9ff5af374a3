package ziwei

import "errors"

// Sentinel errors for chart input validation.
var (
	// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidHour indicates a birth hour outside 0..23.
	ErrInvalidHour = errors.New("invalid hour")

	// ErrInvalidGender indicates a gender other than male or female.
	ErrInvalidGender = errors.New("invalid gender")
)
