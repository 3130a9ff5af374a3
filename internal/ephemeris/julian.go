package ephemeris

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// J2000 is the Julian date of 2000-01-01 12:00 TT, the reference epoch of
// every polynomial in this package.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDate converts a civil date ("YYYY-MM-DD"), wall clock ("HH:MM" or
// "HH:MM:SS") and timezone offset in hours east of UTC into a Julian date.
// The Gregorian calendar is assumed for all dates.
func JulianDate(date, clock string, tzOffsetHours float64) (float64, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", date, ErrInvalidDate)
	}
	h, m, s, err := parseClock(clock)
	if err != nil {
		return 0, err
	}
	// Shift to UTC before forming the day fraction; a negative or >24 hour
	// simply moves the instant into the neighbouring day.
	hours := float64(h) - tzOffsetHours + float64(m)/60 + float64(s)/3600
	return julianDay(d.Year(), int(d.Month()), float64(d.Day())+hours/24), nil
}

// JulianDateFromTime converts t, in any location, to a Julian date.
func JulianDateFromTime(t time.Time) float64 {
	u := t.UTC()
	hours := float64(u.Hour()) + float64(u.Minute())/60 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600
	return julianDay(u.Year(), int(u.Month()), float64(u.Day())+hours/24)
}

// Centuries returns Julian centuries elapsed since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// julianDay implements the Meeus algorithm (Astronomical Algorithms ch. 7)
// for a Gregorian year, month and fractional day.
func julianDay(year, month int, day float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		day + b - 1524.5
}

func parseClock(clock string) (h, m, s int, err error) {
	clock = strings.TrimSpace(clock)
	var t time.Time
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err = time.Parse(layout, clock); err == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
	}
	return 0, 0, 0, fmt.Errorf("parsing time %q: %w", clock, ErrInvalidTime)
}
