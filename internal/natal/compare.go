package natal

import (
	"fmt"

	"github.com/papapumpkin/astrolabe/internal/aspects"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
)

// Transit is the sky at a second instant read against a natal chart.
type Transit struct {
	JD float64 `json:"jd"`
	// Placements carry the natal house each transiting body falls in.
	Placements []Placement      `json:"placements"`
	Aspects    []aspects.Aspect `json:"aspects"`
}

// Transits computes positions at date and clock and their aspects to the
// natal positions. Transiting bodies are listed first in each aspect.
func Transits(natal *Chart, date, clock string, tzOffset float64) (*Transit, error) {
	if natal == nil {
		return nil, ErrNoChart
	}
	jd, err := ephemeris.JulianDate(date, clock, tzOffset)
	if err != nil {
		return nil, fmt.Errorf("transit instant: %w", err)
	}
	bodies := make([]ephemeris.Body, len(natal.Placements))
	for i, p := range natal.Placements {
		bodies[i] = p.Body
	}
	positions := ephemeris.Positions(jd, bodies)

	as := aspects.Between(positions, natal.Positions())
	aspects.SortByOrb(as)
	return &Transit{
		JD:         jd,
		Placements: place(positions, natal.Houses),
		Aspects:    as,
	}, nil
}

// Synastry returns the aspects between the bodies of a and those of b,
// tightest first.
func Synastry(a, b *Chart) ([]aspects.Aspect, error) {
	if a == nil || b == nil {
		return nil, ErrNoChart
	}
	as := aspects.Between(a.Positions(), b.Positions())
	aspects.SortByOrb(as)
	return as, nil
}
