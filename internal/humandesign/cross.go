package humandesign

import "fmt"

// Circuitry counts activated gates per circuit group.
type Circuitry struct {
	Individual int `json:"individual"`
	Tribal     int `json:"tribal"`
	Collective int `json:"collective"`
	Total      int `json:"total"`
}

var (
	individualGates = NewGateSet(1, 8, 2, 14, 3, 60, 24, 61, 43, 23, 38, 28, 57, 20, 10, 51, 25, 39, 55, 12, 22)
	tribalGates     = NewGateSet(6, 59, 49, 19, 37, 40, 21, 45, 32, 54, 50, 27, 26, 44)
	collectiveGates = NewGateSet(64, 47, 11, 56, 17, 62, 31, 7, 33, 13, 16, 48, 18, 58, 53, 42, 9, 52, 5, 15, 29, 46, 30, 41, 35, 36)
)

// CircuitryOf counts the gates in gates by circuit group.
func CircuitryOf(gates GateSet) Circuitry {
	var c Circuitry
	for _, g := range gates.Gates() {
		c.Total++
		if individualGates.Has(g) {
			c.Individual++
		}
		if tribalGates.Has(g) {
			c.Tribal++
		}
		if collectiveGates.Has(g) {
			c.Collective++
		}
	}
	return c
}

// Cross is the incarnation cross formed by the personality and design
// Sun and Earth gates.
type Cross struct {
	Name    string `json:"name"`
	Angle   string `json:"angle"`
	Quarter string `json:"quarter"`
	Gates   string `json:"gates"`
}

var quarters = []struct {
	name  string
	gates GateSet
}{
	{"Initiation", NewGateSet(13, 49, 30, 55, 37, 63, 22, 36, 25, 17, 21, 51, 42, 3, 27, 24)},
	{"Civilization", NewGateSet(2, 23, 8, 20, 16, 35, 45, 12, 15, 52, 39, 53, 62, 56, 31, 33)},
	{"Duality", NewGateSet(7, 4, 29, 59, 40, 64, 47, 6, 46, 18, 48, 57, 32, 50, 28, 44)},
	{"Mutation", NewGateSet(1, 43, 14, 34, 9, 5, 26, 11, 10, 58, 38, 54, 61, 60, 41, 19)},
}

var crossNames = map[int]string{
	1: "the Sphinx", 2: "the Sphinx", 7: "the Sphinx", 13: "the Sphinx",
	37: "Planning", 40: "Planning", 9: "Planning", 16: "Planning",
	25: "Innocence",
	46: "Love", 10: "Love", 15: "Love",
}

// crossAngle picks the geometry from the profile.
func crossAngle(profile string) string {
	switch profile {
	case "5/1", "5/2", "6/2", "6/3":
		return "Left Angle"
	case "4/1":
		return "Juxtaposition"
	default:
		return "Right Angle"
	}
}

// IncarnationCross derives the cross from the Sun and Earth activations.
func IncarnationCross(pSun, pEarth, dSun, dEarth int, profile string) Cross {
	quarter := ""
	for _, q := range quarters {
		if q.gates.Has(pSun) {
			quarter = q.name
			break
		}
	}
	base, ok := crossNames[pSun]
	if !ok {
		base = fmt.Sprintf("Gate %d", pSun)
	}
	ang := crossAngle(profile)
	return Cross{
		Name:    fmt.Sprintf("%s Cross of %s", ang, base),
		Angle:   ang,
		Quarter: quarter,
		Gates:   fmt.Sprintf("%d/%d | %d/%d", pSun, pEarth, dSun, dEarth),
	}
}
