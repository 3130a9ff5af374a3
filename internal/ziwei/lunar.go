package ziwei

import (
	"math/bits"
	"time"
)

// lunarEpoch is the Gregorian date of lunar 1900-01-01.
var lunarEpoch = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)

// LunarDate is a date in the Chinese lunisolar calendar.
type LunarDate struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Leap  bool `json:"leap"`
}

// Lunar converts a Gregorian date to the lunisolar calendar. ok is false
// for dates before 1900-01-31 or past the end of lunar year 2099.
func Lunar(year, month, day int) (LunarDate, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	offset := int(d.Sub(lunarEpoch).Hours() / 24)
	if offset < 0 {
		return LunarDate{}, false
	}

	ly := firstLunarYear
	for {
		if ly >= firstLunarYear+len(lunarInfo) {
			return LunarDate{}, false
		}
		n := yearDays(ly)
		if offset < n {
			break
		}
		offset -= n
		ly++
	}

	leap := leapMonth(ly)
	for m := 1; m <= 12; m++ {
		n := monthDays(ly, m)
		if offset < n {
			return LunarDate{Year: ly, Month: m, Day: offset + 1}, true
		}
		offset -= n
		if m == leap {
			n = leapDays(ly)
			if offset < n {
				return LunarDate{Year: ly, Month: m, Day: offset + 1, Leap: true}, true
			}
			offset -= n
		}
	}
	// yearDays covers every month, so the walk always ends above.
	return LunarDate{}, false
}

// leapMonth returns the leap month of lunar year y, or 0.
func leapMonth(y int) int {
	return int(lunarInfo[y-firstLunarYear] & 0xf)
}

// leapDays returns the length of lunar year y's leap month, or 0.
func leapDays(y int) int {
	if leapMonth(y) == 0 {
		return 0
	}
	if lunarInfo[y-firstLunarYear]&0x10000 != 0 {
		return 30
	}
	return 29
}

// monthDays returns the length of regular month m (1..12) of lunar year y.
func monthDays(y, m int) int {
	if lunarInfo[y-firstLunarYear]&(0x10000>>uint(m)) != 0 {
		return 30
	}
	return 29
}

// yearDays returns the total length of lunar year y.
func yearDays(y int) int {
	long := bits.OnesCount32(lunarInfo[y-firstLunarYear] & 0xfff0)
	return 12*29 + long + leapDays(y)
}
