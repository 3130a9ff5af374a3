package humandesign

import "strconv"

// gateOrigin is the ecliptic longitude at which the gate wheel begins.
const gateOrigin = 302.25

// Gate and line arc widths in degrees.
const (
	gateArc = 360.0 / 64
	lineArc = gateArc / 6
)

// gateOrder lists the gates around the ecliptic starting at gateOrigin.
var gateOrder = [64]int{
	41, 19, 13, 49, 30, 55, 37, 63, 22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35, 45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64, 47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5, 26, 11, 10, 58, 38, 54, 61, 60,
}

// Center is one of the nine bodygraph centers.
type Center string

// Centers.
const (
	Head        Center = "Head"
	Ajna        Center = "Ajna"
	Throat      Center = "Throat"
	G           Center = "G"
	Heart       Center = "Heart"
	Spleen      Center = "Spleen"
	SolarPlexus Center = "SolarPlexus"
	Sacral      Center = "Sacral"
	Root        Center = "Root"
)

// AllCenters lists the centers from crown to root.
var AllCenters = []Center{Head, Ajna, Throat, G, Heart, Spleen, SolarPlexus, Sacral, Root}

// motors are the centers that can power the Throat.
var motors = []Center{Heart, SolarPlexus, Root, Sacral}

var centerGates = map[Center][]int{
	Head:        {64, 61, 63},
	Ajna:        {47, 24, 4, 17, 43, 11},
	Throat:      {62, 23, 56, 35, 12, 45, 33, 8, 31, 20, 16},
	G:           {1, 7, 10, 15, 2, 46, 25, 13},
	Heart:       {21, 51, 26, 40},
	Spleen:      {48, 57, 44, 50, 32, 28, 18},
	SolarPlexus: {36, 22, 37, 6, 49, 55, 30},
	Sacral:      {5, 14, 29, 59, 9, 3, 42, 27, 34},
	Root:        {53, 60, 52, 19, 39, 41, 54, 38, 58},
}

// gateCenter is the inverse of centerGates.
var gateCenter = func() map[int]Center {
	m := make(map[int]Center, 64)
	for c, gates := range centerGates {
		for _, g := range gates {
			m[g] = c
		}
	}
	return m
}()

// CenterOf returns the center a gate belongs to, or "" for a gate outside
// 1..64.
func CenterOf(gate int) Center { return gateCenter[gate] }

// Channel is a pair of gates that, when both are active, connects their
// centers.
type Channel struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Centers returns the two centers the channel joins.
func (c Channel) Centers() (Center, Center) { return gateCenter[c.A], gateCenter[c.B] }

// String renders the channel as "A-B".
func (c Channel) String() string { return strconv.Itoa(c.A) + "-" + strconv.Itoa(c.B) }

// Channels is the fixed table of the 36 channels.
var Channels = []Channel{
	{1, 8}, {2, 14}, {3, 60}, {4, 63}, {5, 15}, {6, 59}, {7, 31}, {9, 52}, {10, 20},
	{10, 34}, {10, 57}, {11, 56}, {12, 22}, {13, 33}, {16, 48}, {17, 62}, {18, 58}, {19, 49},
	{20, 34}, {20, 57}, {21, 45}, {23, 43}, {24, 61}, {25, 51}, {26, 44}, {27, 50}, {28, 38},
	{29, 46}, {30, 41}, {32, 54}, {34, 57}, {35, 36}, {37, 40}, {39, 55}, {42, 53}, {47, 64},
}

var profileNames = map[string]string{
	"1/3": "Investigator/Martyr",
	"1/4": "Investigator/Opportunist",
	"2/4": "Hermit/Opportunist",
	"2/5": "Hermit/Heretic",
	"3/5": "Martyr/Heretic",
	"3/6": "Martyr/Role Model",
	"4/6": "Opportunist/Role Model",
	"4/1": "Opportunist/Investigator",
	"5/1": "Heretic/Investigator",
	"5/2": "Heretic/Hermit",
	"6/2": "Role Model/Hermit",
	"6/3": "Role Model/Martyr",
}
