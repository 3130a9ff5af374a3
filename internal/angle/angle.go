// Package angle provides degree arithmetic on the ecliptic circle.
// Every longitude handled by the calculation packages passes through
// Normalize, and every comparison near the 0/360 boundary goes through
// SignedDiff or InArc rather than a plain less-than.
package angle

import "math"

// Normalize maps deg into the half-open interval [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360.
	if d >= 360 {
		d = 0
	}
	return d
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// SignedDiff returns the shortest signed rotation from 'from' to 'to',
// in the interval (-180, 180].
func SignedDiff(to, from float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Separation returns the unsigned angular distance between a and b,
// in the interval [0, 180].
func Separation(a, b float64) float64 {
	return math.Abs(SignedDiff(a, b))
}

// InArc reports whether x lies in the half-open arc [start, end) walking
// counter-clockwise from start. An arc whose end is numerically smaller
// than its start crosses 0 degrees. An empty arc (start == end) contains
// nothing.
func InArc(x, start, end float64) bool {
	x, start, end = Normalize(x), Normalize(start), Normalize(end)
	switch {
	case start < end:
		return x >= start && x < end
	case start > end:
		return x >= start || x < end
	default:
		return false
	}
}

// Acos is math.Acos with its argument clamped to [-1, 1], returning degrees.
func Acos(x float64) float64 {
	return Deg(math.Acos(clamp(x)))
}

// Asin is math.Asin with its argument clamped to [-1, 1], returning degrees.
func Asin(x float64) float64 {
	return Deg(math.Asin(clamp(x)))
}

// Atan2 returns atan2(y, x) in degrees, normalized into [0, 360).
func Atan2(y, x float64) float64 {
	return Normalize(Deg(math.Atan2(y, x)))
}

// Sin returns the sine of deg degrees.
func Sin(deg float64) float64 { return math.Sin(Rad(deg)) }

// Cos returns the cosine of deg degrees.
func Cos(deg float64) float64 { return math.Cos(Rad(deg)) }

// Tan returns the tangent of deg degrees.
func Tan(deg float64) float64 { return math.Tan(Rad(deg)) }

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
