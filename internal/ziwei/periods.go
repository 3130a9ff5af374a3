package ziwei

import (
	"fmt"
	"strings"
)

// Gender selects the direction of the decade periods.
type Gender int

// Genders.
const (
	Male Gender = iota
	Female
)

// String returns "male" or "female".
func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// ParseGender accepts "male", "m", "female" or "f", case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return Male, fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// Decade is a ten-year period (大限) ruled by one palace. Ages are nominal
// (虛歲), counting the birth year as 1.
type Decade struct {
	Palace   int `json:"palace"`
	StartAge int `json:"start_age"`
	EndAge   int `json:"end_age"`
}

// Clockwise reports whether decades advance through increasing branches:
// true for a yang year and a male, or a yin year and a female.
func Clockwise(yearStem int, g Gender) bool {
	yang := yearStem%2 == 0
	return yang == (g == Male)
}

// Decades returns the twelve decade periods of the chart, the first
// starting in the Life palace at the bureau's age.
func (c *Chart) Decades(g Gender) []Decade {
	dir := -1
	if Clockwise(c.YearStem, g) {
		dir = 1
	}
	out := make([]Decade, 12)
	for k := range out {
		start := c.Bureau + 10*k
		out[k] = Decade{
			Palace:   mod(c.MingPos+dir*k, 12),
			StartAge: start,
			EndAge:   start + 9,
		}
	}
	return out
}

// DecadeAt returns the decade covering a nominal age. ok is false before
// the first decade begins or after the last ends.
func (c *Chart) DecadeAt(g Gender, age int) (Decade, bool) {
	for _, d := range c.Decades(g) {
		if age >= d.StartAge && age <= d.EndAge {
			return d, true
		}
	}
	return Decade{}, false
}

// NominalAge returns the age in the given Gregorian year, counting the
// lunar birth year as 1.
func (c *Chart) NominalAge(year int) int {
	return year - c.Lunar.Year + 1
}

// AnnualPalace returns the palace (流年) ruling a Gregorian year: the
// palace on that year's branch.
func AnnualPalace(year int) int {
	return mod(year-4, 12)
}
