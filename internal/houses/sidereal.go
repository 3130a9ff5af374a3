package houses

import (
	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
)

// SiderealTime returns the local sidereal time in degrees at jd for an
// observer at east longitude lon, from the IAU 1982 GMST polynomial.
func SiderealTime(jd, lon float64) float64 {
	t := ephemeris.Centuries(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-ephemeris.J2000) +
		0.000387933*t*t - t*t*t/38710000
	return angle.Normalize(gmst + lon)
}

// Angles returns the Ascendant and Midheaven for local sidereal time lst,
// geographic latitude lat and obliquity eps, all in degrees.
func Angles(lst, lat, eps float64) (asc, mc float64) {
	mc = angle.Atan2(angle.Sin(lst), angle.Cos(lst)*angle.Cos(eps))
	asc = angle.Atan2(angle.Cos(lst), -(angle.Sin(lst)*angle.Cos(eps) + angle.Tan(lat)*angle.Sin(eps)))
	return asc, mc
}
