// Package aspects classifies angular separations between chart points
// into the five major aspects.
package aspects

import (
	"math"
	"sort"

	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
)

// Type is a named aspect with its exact angle and allowed orb.
type Type struct {
	Name  string  `json:"name"`
	Angle float64 `json:"angle"`
	Orb   float64 `json:"orb"`
}

// Major aspects in match order. The first type whose orb contains a
// separation wins; the orbs do not overlap.
var (
	Conjunction = Type{Name: "Conjunction", Angle: 0, Orb: 8}
	Opposition  = Type{Name: "Opposition", Angle: 180, Orb: 8}
	Trine       = Type{Name: "Trine", Angle: 120, Orb: 8}
	Square      = Type{Name: "Square", Angle: 90, Orb: 8}
	Sextile     = Type{Name: "Sextile", Angle: 60, Orb: 6}
)

// Types is the ordered aspect table used by Find.
var Types = []Type{Conjunction, Opposition, Trine, Square, Sextile}

// Aspect is a classified pair of positions.
type Aspect struct {
	A          ephemeris.Body `json:"a"`
	B          ephemeris.Body `json:"b"`
	Type       Type           `json:"type"`
	Separation float64        `json:"separation"`
	// Orb is the absolute deviation from the exact aspect angle.
	Orb float64 `json:"orb"`
	// Delta is Separation minus the exact angle.
	Delta float64 `json:"delta"`
	// Transit marks aspects between two different position sets.
	Transit bool `json:"transit,omitempty"`
}

// Classify returns the aspect formed by two longitudes, if any.
func Classify(lonA, lonB float64) (Type, float64, bool) {
	sep := angle.Separation(lonA, lonB)
	for _, t := range Types {
		if math.Abs(sep-t.Angle) <= t.Orb {
			return t, sep, true
		}
	}
	return Type{}, sep, false
}

// Find returns every aspect between positions. With b nil, the positions in
// a are compared with each other, each unordered pair once (see Within).
// Otherwise every position in a is compared with every position in b and
// the results are flagged as transits (see Between). An empty but non-nil b
// therefore yields no aspects; callers holding a possibly nil second set
// should call Within or Between directly.
func Find(a, b []ephemeris.Position) []Aspect {
	if b == nil {
		return Within(a)
	}
	return Between(a, b)
}

// Within compares the positions of one chart with each other. Self pairs
// and mirrored pairs are skipped.
func Within(ps []ephemeris.Position) []Aspect {
	var out []Aspect
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if asp, ok := pair(ps[i], ps[j], false); ok {
				out = append(out, asp)
			}
		}
	}
	return out
}

// Between compares every position in a with every position in b and flags
// the results as transits. Either set being empty yields no aspects.
func Between(a, b []ephemeris.Position) []Aspect {
	var out []Aspect
	for i := range a {
		for j := range b {
			if asp, ok := pair(a[i], b[j], true); ok {
				out = append(out, asp)
			}
		}
	}
	return out
}

// SortByOrb orders aspects tightest first, keeping input order for ties.
func SortByOrb(as []Aspect) {
	sort.SliceStable(as, func(i, j int) bool { return as[i].Orb < as[j].Orb })
}

func pair(p, q ephemeris.Position, transit bool) (Aspect, bool) {
	t, sep, ok := Classify(p.Longitude, q.Longitude)
	if !ok {
		return Aspect{}, false
	}
	return Aspect{
		A:          p.Body,
		B:          q.Body,
		Type:       t,
		Separation: sep,
		Orb:        math.Abs(sep - t.Angle),
		Delta:      sep - t.Angle,
		Transit:    transit,
	}, true
}
