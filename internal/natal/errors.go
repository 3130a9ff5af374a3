package natal

import "errors"

var (
	// ErrInvalidLocation indicates a latitude outside [-90, 90] or a
	// longitude outside [-180, 180].
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidOffset indicates a timezone offset outside [-14, 14] hours.
	ErrInvalidOffset = errors.New("invalid timezone offset")

	// ErrNoChart is returned by Transits and Synastry when given a nil chart.
	ErrNoChart = errors.New("no natal chart")
)
