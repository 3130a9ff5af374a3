package ephemeris

import "github.com/papapumpkin/astrolabe/internal/angle"

// retrogradeStep is the look-back interval, in days, of the finite
// difference used by IsRetrograde.
const retrogradeStep = 1.0 / 24

// Longitude returns the geocentric ecliptic longitude of b at jd in
// [0, 360). Earth yields the heliocentric longitude of the Earth, which is
// the solar longitude plus 180 degrees. Unknown bodies return 0.
func Longitude(b Body, jd float64) float64 {
	switch b {
	case Sun:
		return Heliocentric(Earth, jd).Scale(-1).Longitude()
	case Earth:
		return Heliocentric(Earth, jd).Longitude()
	case Moon:
		return MoonLongitude(jd)
	case NorthNode:
		return MeanNode(jd)
	case SouthNode:
		return angle.Normalize(MeanNode(jd) + 180)
	}
	return GeocentricLongitude(b, jd)
}

// GeocentricLongitude subtracts the Earth's heliocentric vector from the
// body's and returns the direction of the difference. Bodies without
// orbital elements return 0.
func GeocentricLongitude(b Body, jd float64) float64 {
	if _, ok := orbits[b]; !ok || b == Earth {
		return 0
	}
	return Heliocentric(b, jd).Sub(Heliocentric(Earth, jd)).Longitude()
}

// IsRetrograde reports whether b's longitude is decreasing at jd, judged
// from the signed change over the preceding hour. The Sun, Moon and Earth
// are never retrograde.
func IsRetrograde(b Body, jd float64) bool {
	switch b {
	case Sun, Moon, Earth:
		return false
	}
	now := Longitude(b, jd)
	before := Longitude(b, jd-retrogradeStep)
	return angle.SignedDiff(now, before) < 0
}

// MeanNode returns the longitude of the Moon's mean ascending node
// (Meeus 47.7).
func MeanNode(jd float64) float64 {
	t := Centuries(jd)
	return angle.Normalize(125.0445479 - 1934.1362891*t + 0.0020754*t*t +
		t*t*t/467441 - t*t*t*t/60616000)
}

// MeanObliquity returns the mean obliquity of the ecliptic at jd
// (Meeus 22.2), in degrees.
func MeanObliquity(jd float64) float64 {
	t := Centuries(jd)
	return 23.4392911 - 0.0130041667*t - 1.639e-7*t*t + 5.036e-7*t*t*t
}

// perturbation returns the heliocentric longitude correction in degrees
// for the mutual Jupiter/Saturn/Uranus terms; other bodies get 0.
func perturbation(b Body, t float64) float64 {
	mj := 19.8950 + 3034.6906*t
	ms := 316.9670 + 1221.5504*t
	mu := 142.5905 + 428.2851*t

	switch b {
	case Jupiter:
		return -0.332*angle.Sin(2*mj-5*ms-67.6) -
			0.056*angle.Sin(2*mj-2*ms+21) +
			0.042*angle.Sin(3*mj-5*ms+21) -
			0.036*angle.Sin(mj-2*ms) +
			0.022*angle.Cos(mj-ms) +
			0.023*angle.Sin(2*mj-3*ms+52) -
			0.016*angle.Sin(mj-5*ms-69)
	case Saturn:
		return 0.812*angle.Sin(2*mj-5*ms-67.6) -
			0.229*angle.Cos(2*mj-4*ms-2) +
			0.119*angle.Sin(mj-2*ms-3) +
			0.046*angle.Sin(2*mj-6*ms-69) +
			0.014*angle.Sin(mj-3*ms+32)
	case Uranus:
		return 0.040*angle.Sin(ms-2*mu+6) +
			0.035*angle.Sin(ms-3*mu+33) -
			0.015*angle.Sin(mj-mu+20)
	}
	return 0
}
