// Package houses divides the ecliptic into the twelve mundane houses.
// It computes local sidereal time, the Ascendant and Midheaven, and cusps
// for the Placidus, Equal and Whole Sign systems, and locates the house
// holding a given longitude.
package houses

import (
	"math"

	"github.com/papapumpkin/astrolabe/internal/angle"
)

// DefaultMaxIterations bounds the Placidus cusp refinement.
const DefaultMaxIterations = 20

// Houses is the result of a house division. Cusps[0] is the first house
// cusp; Cusps[9] is the tenth.
type Houses struct {
	System System      `json:"system"`
	Asc    float64     `json:"asc"`
	MC     float64     `json:"mc"`
	Cusps  [12]float64 `json:"cusps"`
	// Converged is false when an iterative cusp hit the iteration cap.
	Converged bool `json:"converged"`
	// Fallback is true when Placidus could not produce ordered cusps
	// (polar latitude, iteration cap or crossed cusps) and equal-house
	// cusps were substituted.
	Fallback bool `json:"fallback,omitempty"`
}

// Descendant returns the cusp of the seventh house.
func (h Houses) Descendant() float64 { return angle.Normalize(h.Asc + 180) }

// IC returns the Imum Coeli, opposite the Midheaven.
func (h Houses) IC() float64 { return angle.Normalize(h.MC + 180) }

// Option configures Compute.
type Option func(*options)

type options struct {
	maxIterations int
}

// WithMaxIterations overrides the Placidus iteration cap. Values below 1
// are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}

// Compute divides the ecliptic for local sidereal time lst, latitude lat and
// obliquity eps using the given system.
func Compute(lst, lat, eps float64, sys System, opts ...Option) Houses {
	o := options{maxIterations: DefaultMaxIterations}
	for _, fn := range opts {
		fn(&o)
	}

	asc, mc := Angles(lst, lat, eps)
	h := Houses{System: sys, Asc: asc, MC: mc, Converged: true}

	switch sys {
	case WholeSign:
		start := math.Floor(asc/30) * 30
		for i := range h.Cusps {
			h.Cusps[i] = angle.Normalize(start + float64(i)*30)
		}
	case Equal:
		h.Cusps = equalCusps(asc)
	default:
		h.Cusps, h.Converged, h.Fallback = placidus(lst, lat, eps, asc, mc, o.maxIterations)
	}
	return h
}

func equalCusps(asc float64) [12]float64 {
	var c [12]float64
	for i := range c {
		c[i] = angle.Normalize(asc + float64(i)*30)
	}
	return c
}
