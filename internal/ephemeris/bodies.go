// Package ephemeris computes geocentric ecliptic longitudes of the Sun,
// Moon, planets, Chiron and the lunar nodes from Keplerian elements and
// the Meeus lunar series.
package ephemeris

// Body identifies a point whose ecliptic longitude the package can compute.
// Bodies outside the known set are tolerated: they yield zero positions.
type Body string

// Known bodies.
const (
	Sun       Body = "Sun"
	Moon      Body = "Moon"
	Mercury   Body = "Mercury"
	Venus     Body = "Venus"
	Earth     Body = "Earth"
	Mars      Body = "Mars"
	Jupiter   Body = "Jupiter"
	Saturn    Body = "Saturn"
	Uranus    Body = "Uranus"
	Neptune   Body = "Neptune"
	Pluto     Body = "Pluto"
	Chiron    Body = "Chiron"
	NorthNode Body = "NorthNode"
	SouthNode Body = "SouthNode"
)

// ChartBodies is the ordered set of bodies shown in a natal chart.
var ChartBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn,
	Uranus, Neptune, Pluto, Chiron, NorthNode,
}

// Position is the geocentric ecliptic longitude of a body at one instant.
// Retrograde is derived from a finite difference, not stored state.
type Position struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"`
	Retrograde bool    `json:"retrograde"`
}

// Positions computes the position of each body at jd, preserving order.
func Positions(jd float64, bodies []Body) []Position {
	out := make([]Position, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, Position{
			Body:       b,
			Longitude:  Longitude(b, jd),
			Retrograde: IsRetrograde(b, jd),
		})
	}
	return out
}
