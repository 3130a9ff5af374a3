package humandesign

import (
	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/solve"
)

// designArc is how far, in degrees of solar longitude, the Design instant
// precedes birth.
const designArc = 88

const (
	designMaxIterations = 5
	designTolerance     = 1e-4
)

// DesignEpoch finds the Julian date before natalJd at which the Sun stood
// designArc degrees behind natalSun. The search starts 88 days earlier and
// corrects by the remaining longitude gap, treating the Sun's motion as one
// degree per day.
func DesignEpoch(natalJd, natalSun float64) (jd float64, converged bool) {
	target := angle.Normalize(natalSun - designArc)
	step := func(jd float64) float64 {
		return jd + angle.SignedDiff(target, ephemeris.Longitude(ephemeris.Sun, jd))
	}
	res := solve.FixedPoint(natalJd-designArc, step, solve.Linear,
		solve.Options{MaxIterations: designMaxIterations, Tolerance: designTolerance})
	return res.Value, res.Converged
}
