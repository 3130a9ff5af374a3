// Package natal assembles a complete chart from one set of birth data:
// planetary positions placed in houses, aspects, the distribution
// analysis, the Human Design bodygraph and the Zi Wei Dou Shu chart. It
// also compares charts for transits and synastry.
package natal

import (
	"fmt"

	"github.com/papapumpkin/astrolabe/internal/analysis"
	"github.com/papapumpkin/astrolabe/internal/aspects"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/humandesign"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
	"github.com/papapumpkin/astrolabe/internal/zodiac"
)

// Placement is a body's position with its sign and house.
type Placement struct {
	ephemeris.Position
	Sign string `json:"sign"`
	// House is the 1-based house number.
	House int `json:"house"`
}

// Chart is an immutable computed natal chart.
type Chart struct {
	Input        Input                 `json:"input"`
	JD           float64               `json:"jd"`
	Obliquity    float64               `json:"obliquity"`
	SiderealTime float64               `json:"sidereal_time"`
	Houses       houses.Houses         `json:"houses"`
	Placements   []Placement           `json:"placements"`
	Aspects      []aspects.Aspect      `json:"aspects"`
	Distribution analysis.Distribution `json:"distribution"`
	HumanDesign  humandesign.Chart     `json:"human_design"`
	// ZiWei is nil when the birth date lies outside the lunar table.
	ZiWei   *ziwei.Chart   `json:"ziwei,omitempty"`
	Decades []ziwei.Decade `json:"decades,omitempty"`
}

// Positions returns the bare positions of the chart's placements.
func (c *Chart) Positions() []ephemeris.Position {
	out := make([]ephemeris.Position, len(c.Placements))
	for i, p := range c.Placements {
		out[i] = p.Position
	}
	return out
}

// Option configures Compute.
type Option func(*options)

type options struct {
	obliquity     float64
	maxIterations int
	bodies        []ephemeris.Body
}

// WithObliquity fixes the obliquity of the ecliptic in degrees. Zero, the
// default, uses the mean obliquity of the chart's date.
func WithObliquity(eps float64) Option {
	return func(o *options) { o.obliquity = eps }
}

// WithMaxIterations sets the Placidus iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithBodies replaces the default body list.
func WithBodies(bodies ...ephemeris.Body) Option {
	return func(o *options) {
		if len(bodies) > 0 {
			o.bodies = bodies
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		maxIterations: houses.DefaultMaxIterations,
		bodies:        ephemeris.ChartBodies,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Compute builds the chart for in.
func Compute(in Input, opts ...Option) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	jd, err := ephemeris.JulianDate(in.Date, in.Time, in.TZOffset)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	eps := o.obliquity
	if eps == 0 {
		eps = ephemeris.MeanObliquity(jd)
	}
	lst := houses.SiderealTime(jd, in.Longitude)
	h := houses.Compute(lst, in.Latitude, eps, in.HouseSystem, houses.WithMaxIterations(o.maxIterations))

	positions := ephemeris.Positions(jd, o.bodies)
	zw, err := ziwei.Calculate(in.Date, localHour(in.Time))
	if err != nil {
		return nil, fmt.Errorf("zi wei chart: %w", err)
	}

	c := &Chart{
		Input:        in,
		JD:           jd,
		Obliquity:    eps,
		SiderealTime: lst,
		Houses:       h,
		Placements:   place(positions, h),
		Aspects:      aspects.Within(positions),
		Distribution: analysis.Analyze(positions, h),
		HumanDesign:  humandesign.Calculate(jd),
		ZiWei:        zw,
	}
	if zw != nil {
		c.Decades = zw.Decades(in.Gender)
	}
	return c, nil
}

func place(positions []ephemeris.Position, h houses.Houses) []Placement {
	out := make([]Placement, len(positions))
	for i, p := range positions {
		out[i] = Placement{
			Position: p,
			Sign:     zodiac.SignOf(p.Longitude).Name,
			House:    houses.Index(p.Longitude, h.Cusps) + 1,
		}
	}
	return out
}
