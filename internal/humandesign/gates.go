package humandesign

import (
	"math"

	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
)

// activationBodies is the order activations are listed in. Earth and the
// South Node are derived from the Sun and North Node.
var activationBodies = []ephemeris.Body{
	ephemeris.Sun, ephemeris.Earth, ephemeris.Moon, ephemeris.NorthNode, ephemeris.SouthNode,
	ephemeris.Mercury, ephemeris.Venus, ephemeris.Mars, ephemeris.Jupiter, ephemeris.Saturn,
	ephemeris.Uranus, ephemeris.Neptune, ephemeris.Pluto,
}

// Activation is a body's gate and line at one instant.
type Activation struct {
	Body      ephemeris.Body `json:"body"`
	Longitude float64        `json:"longitude"`
	Gate      int            `json:"gate"`
	Line      int            `json:"line"`
}

// GateAndLine maps an ecliptic longitude to its gate (1..64) and line (1..6).
func GateAndLine(lon float64) (gate, line int) {
	offset := angle.Normalize(lon - gateOrigin)
	idx := int(offset/gateArc) % 64
	line = int(math.Mod(offset, gateArc)/lineArc) + 1
	if line > 6 {
		line = 6
	}
	return gateOrder[idx], line
}

// Activations computes the activation of every bodygraph body at jd.
func Activations(jd float64) []Activation {
	sun := ephemeris.Longitude(ephemeris.Sun, jd)
	node := ephemeris.Longitude(ephemeris.NorthNode, jd)

	out := make([]Activation, 0, len(activationBodies))
	for _, b := range activationBodies {
		var lon float64
		switch b {
		case ephemeris.Sun:
			lon = sun
		case ephemeris.Earth:
			lon = angle.Normalize(sun + 180)
		case ephemeris.NorthNode:
			lon = node
		case ephemeris.SouthNode:
			lon = angle.Normalize(node + 180)
		default:
			lon = ephemeris.Longitude(b, jd)
		}
		gate, line := GateAndLine(lon)
		out = append(out, Activation{Body: b, Longitude: lon, Gate: gate, Line: line})
	}
	return out
}

// GateSet records which of the 64 gates are activated.
type GateSet [65]bool

// NewGateSet returns a set holding the given gates; values outside 1..64
// are ignored.
func NewGateSet(gates ...int) GateSet {
	var s GateSet
	for _, g := range gates {
		if g >= 1 && g <= 64 {
			s[g] = true
		}
	}
	return s
}

// Has reports whether gate is in the set.
func (s GateSet) Has(gate int) bool {
	return gate >= 1 && gate <= 64 && s[gate]
}

// Gates returns the set's members in ascending order.
func (s GateSet) Gates() []int {
	var out []int
	for g := 1; g <= 64; g++ {
		if s[g] {
			out = append(out, g)
		}
	}
	return out
}

// pooledGates unions the gates of every activation list.
func pooledGates(lists ...[]Activation) GateSet {
	var s GateSet
	for _, l := range lists {
		for _, a := range l {
			s[a.Gate] = true
		}
	}
	return s
}
