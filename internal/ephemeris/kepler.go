package ephemeris

import (
	"math"

	"github.com/papapumpkin/astrolabe/internal/angle"
)

// keplerIterations is the fixed number of Newton steps used to solve
// Kepler's equation; five steps reach double precision for e < 0.4.
const keplerIterations = 5

// Vec3 is a heliocentric ecliptic position in AU.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v multiplied by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Longitude returns the ecliptic longitude of v in degrees.
func (v Vec3) Longitude() float64 { return angle.Atan2(v.Y, v.X) }

// rotateZ rotates v about the ecliptic pole by deg degrees.
func (v Vec3) rotateZ(deg float64) Vec3 {
	s, c := math.Sincos(angle.Rad(deg))
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// SolveKepler returns the eccentric anomaly E (radians) satisfying
// M = E - e sin E for mean anomaly m (radians).
func SolveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for range keplerIterations {
		ea -= (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
	}
	return ea
}

// Heliocentric returns the heliocentric ecliptic position of b at jd.
// Bodies without orbital elements (including the Sun and Moon) return the
// zero vector.
func Heliocentric(b Body, jd float64) Vec3 {
	el, ok := orbits[b]
	if !ok {
		return Vec3{}
	}
	t := Centuries(jd)
	v := orbitPosition(el.At(t))
	if dl := perturbation(b, t); dl != 0 {
		v = v.rotateZ(dl)
	}
	return v
}

func orbitPosition(el Elements) Vec3 {
	m := angle.Rad(angle.Normalize(el.L - el.W))
	ea := SolveKepler(m, el.E)

	xo := el.A * (math.Cos(ea) - el.E)
	yo := el.A * math.Sqrt(1-el.E*el.E) * math.Sin(ea)
	v := math.Atan2(yo, xo)
	r := math.Hypot(xo, yo)

	// Argument of latitude: true anomaly plus argument of perihelion.
	u := v + angle.Rad(el.W-el.N)
	sn, cn := math.Sincos(angle.Rad(el.N))
	si, ci := math.Sincos(angle.Rad(el.I))
	su, cu := math.Sincos(u)

	return Vec3{
		X: r * (cn*cu - sn*su*ci),
		Y: r * (sn*cu + cn*su*ci),
		Z: r * su * si,
	}
}
