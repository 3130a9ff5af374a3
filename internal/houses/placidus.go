package houses

import (
	"math"

	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/papapumpkin/astrolabe/internal/solve"
)

// polarMargin is how close to a pole, in degrees of latitude, Placidus is
// abandoned in favour of equal-house cusps.
const polarMargin = 0.1

// cuspTolerance is the longitude change, in degrees, below which a cusp
// iteration is considered settled.
const cuspTolerance = 1e-4

// placidusArc describes one intermediate cusp: the fraction of the
// semi-arc it sits at and whether it is measured along the nocturnal arc.
type placidusArc struct {
	index     int
	raOffset  float64
	fraction  float64
	nocturnal bool
}

var placidusArcs = []placidusArc{
	{index: 10, raOffset: 30, fraction: 1.0 / 3},
	{index: 11, raOffset: 60, fraction: 2.0 / 3},
	{index: 1, raOffset: 120, fraction: 2.0 / 3, nocturnal: true},
	{index: 2, raOffset: 150, fraction: 1.0 / 3, nocturnal: true},
}

// placidus returns Placidus cusps, or equal-house cusps from the Ascendant
// when the latitude is within polarMargin of a pole, when a cusp iteration
// hits the cap, or when the cusps do not run counter-clockwise in order.
func placidus(ramc, lat, eps, asc, mc float64, maxIter int) (cusps [12]float64, converged, fallback bool) {
	if math.Abs(math.Abs(lat)-90) < polarMargin {
		return equalCusps(asc), true, true
	}

	cusps[0] = asc
	cusps[9] = mc
	cusps[6] = angle.Normalize(asc + 180)
	cusps[3] = angle.Normalize(mc + 180)

	converged = true
	for _, arc := range placidusArcs {
		res := placidusCusp(ramc, lat, eps, arc, maxIter)
		cusps[arc.index] = res.Value
		cusps[(arc.index+6)%12] = angle.Normalize(res.Value + 180)
		converged = converged && res.Converged
	}
	if !converged || !ordered(cusps) {
		return equalCusps(asc), converged, true
	}
	return cusps, converged, false
}

// ordered reports whether every cusp lies strictly counter-clockwise of the
// one before it and the twelve houses together span exactly one circle.
func ordered(cusps [12]float64) bool {
	var total float64
	for i, c := range cusps {
		step := angle.Normalize(cusps[(i+1)%12] - c)
		if step == 0 {
			return false
		}
		total += step
	}
	return math.Abs(total-360) < 1e-6
}

// placidusCusp refines one cusp longitude: the point's declination fixes
// its semi-arc, the semi-arc fixes its right ascension, and the right
// ascension fixes a new longitude.
func placidusCusp(ramc, lat, eps float64, arc placidusArc, maxIter int) solve.Result {
	sinEps, cosEps := angle.Sin(eps), angle.Cos(eps)
	tanLat := angle.Tan(lat)

	eclipticFromRA := func(ra float64) float64 {
		return angle.Atan2(angle.Sin(ra), angle.Cos(ra)*cosEps)
	}

	step := func(lon float64) float64 {
		decl := angle.Asin(sinEps * angle.Sin(lon))
		semiArc := angle.Acos(-angle.Tan(decl) * tanLat)
		var ra float64
		if arc.nocturnal {
			ra = ramc + 180 - (180-semiArc)*arc.fraction
		} else {
			ra = ramc + semiArc*arc.fraction
		}
		return eclipticFromRA(ra)
	}

	return solve.FixedPoint(
		eclipticFromRA(ramc+arc.raOffset),
		step,
		angle.SignedDiff,
		solve.Options{MaxIterations: maxIter, Tolerance: cuspTolerance},
	)
}
