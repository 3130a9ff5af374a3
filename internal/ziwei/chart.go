// Package ziwei builds a Zi Wei Dou Shu (紫微斗數) chart: it converts the
// birth date to the lunisolar calendar, lays out the twelve palaces with
// their stems and names, finds the Five Element bureau, and places the
// major and auxiliary stars.
package ziwei

import (
	"fmt"
	"strings"
	"time"
)

// Chart is a computed Zi Wei Dou Shu chart.
type Chart struct {
	Lunar      LunarDate  `json:"lunar"`
	YearStem   int        `json:"year_stem"`
	YearBranch int        `json:"year_branch"`
	HourBranch int        `json:"hour_branch"`
	Bureau     int        `json:"bureau"`
	BureauName string     `json:"bureau_name"`
	MingPos    int        `json:"ming_pos"`
	ShenPos    int        `json:"shen_pos"`
	ZiWeiPos   int        `json:"ziwei_pos"`
	TianFuPos  int        `json:"tianfu_pos"`
	Palaces    [12]Palace `json:"palaces"`
}

// YearName renders the lunar year's stem and branch, for example "庚午".
func (c *Chart) YearName() string {
	return Stems[c.YearStem] + Branches[c.YearBranch]
}

// Ming returns the Life palace.
func (c *Chart) Ming() Palace { return c.Palaces[c.MingPos] }

// StarPalace returns the palace index holding the star with the given id,
// or -1.
func (c *Chart) StarPalace(id string) int {
	for _, p := range c.Palaces {
		for _, s := range p.Stars {
			if s.ID == id {
				return p.Index
			}
		}
	}
	return -1
}

// Calculate builds the chart for a Gregorian birth date ("YYYY-MM-DD") and
// local clock hour. It returns a nil chart and nil error when the date lies
// outside the lunar table; malformed input is an error.
func Calculate(date string, hour int) (*Chart, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, ErrInvalidDate)
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour %d: %w", hour, ErrInvalidHour)
	}

	lunar, ok := Lunar(d.Year(), int(d.Month()), d.Day())
	if !ok {
		return nil, nil
	}
	return build(lunar, HourBranch(hour)), nil
}

func build(lunar LunarDate, hb int) *Chart {
	ys := mod(lunar.Year-4, 10)
	yb := mod(lunar.Year-4, 12)

	palaces, ming, shen := Layout(lunar.Month, hb, ys)
	bureau := Bureau(palaces[ming].Stem, palaces[ming].Branch)
	zw := ZiWeiPosition(lunar.Day, bureau)
	tf := TianFuPosition(zw)

	for _, pl := range majorStars(zw, tf) {
		palaces[pl.palace].Stars = append(palaces[pl.palace].Stars, pl.star)
	}
	for _, pl := range auxiliaryStars(lunar.Month, hb, ys, yb) {
		palaces[pl.palace].Stars = append(palaces[pl.palace].Stars, pl.star)
	}

	return &Chart{
		Lunar:      lunar,
		YearStem:   ys,
		YearBranch: yb,
		HourBranch: hb,
		Bureau:     bureau,
		BureauName: BureauName(bureau),
		MingPos:    ming,
		ShenPos:    shen,
		ZiWeiPos:   zw,
		TianFuPos:  tf,
		Palaces:    palaces,
	}
}
