package ephemeris

// Elements is a set of mean Keplerian orbital elements at J2000 together
// with their linear rates per Julian century. Angles are in degrees and
// refer to the mean ecliptic and equinox of date.
type Elements struct {
	A float64 // semi-major axis (AU)
	E float64 // eccentricity
	I float64 // inclination
	L float64 // mean longitude
	W float64 // longitude of perihelion
	N float64 // longitude of the ascending node

	DA, DE, DI, DL, DW, DN float64
}

// At returns the elements advanced to t Julian centuries from J2000.
func (el Elements) At(t float64) Elements {
	return Elements{
		A: el.A + el.DA*t,
		E: el.E + el.DE*t,
		I: el.I + el.DI*t,
		L: el.L + el.DL*t,
		W: el.W + el.DW*t,
		N: el.N + el.DN*t,
	}
}

// orbits is the read-only element table. Earth's row gives the Sun's
// position by reflection.
var orbits = map[Body]Elements{
	Earth: {
		A: 1.00000011, E: 0.01671022, I: 0, L: 100.46435, W: 102.94719, N: 0,
		DE: -0.00001247, DL: 36000.76937, DW: 1.72767,
	},
	Mercury: {
		A: 0.38709893, E: 0.20563069, I: 7.00487, L: 252.25084, W: 77.45645, N: 48.33167,
		DE: 0.00002046, DI: -0.00653, DL: 149474.07062, DW: 1.79243, DN: 1.36224,
	},
	Venus: {
		A: 0.72333199, E: 0.00677323, I: 3.39471, L: 181.97973, W: 131.53298, N: 76.68069,
		DE: -0.00004109, DI: -0.00236, DL: 58519.21138, DW: 1.42719, DN: 1.12030,
	},
	Mars: {
		A: 1.52366231, E: 0.09341233, I: 1.85061, L: 355.45332, W: 336.04084, N: 49.57854,
		DE: 0.00007792, DI: -0.00707, DL: 19141.69634, DW: 1.83049, DN: 1.11358,
	},
	Jupiter: {
		A: 5.20336301, E: 0.04839266, I: 1.30530, L: 34.40438, W: 14.75385, N: 100.55615,
		DA: -0.00012450, DE: -0.00013917, DI: -0.00115, DL: 3036.14041, DW: 1.63040, DN: 1.73507,
	},
	Saturn: {
		A: 9.53707032, E: 0.05415060, I: 2.48446, L: 49.94432, W: 92.43194, N: 113.71504,
		DA: -0.00301530, DE: -0.00036762, DI: 0.00170, DL: 1223.91167, DW: 0.85559, DN: 0.95509,
	},
	Uranus: {
		A: 19.19126393, E: 0.04716771, I: 0.76986, L: 313.23218, W: 170.96424, N: 74.22988,
		DA: 0.00152025, DE: -0.00019150, DI: -0.00058, DL: 429.88235, DW: 1.76156, DN: 1.41454,
	},
	Neptune: {
		A: 30.06896348, E: 0.00858587, I: 1.76917, L: 304.88003, W: 44.97135, N: 131.72169,
		DA: -0.00125196, DE: 0.0000251, DI: -0.00101, DL: 219.85526, DW: 1.16239, DN: 1.35497,
	},
	Pluto: {
		A: 39.48168677, E: 0.24880766, I: 17.14175, L: 238.92881, W: 224.06676, N: 110.30347,
		DA: -0.00076912, DE: 0.00006465, DI: 0.00307, DL: 146.60515, DW: 1.36021, DN: 1.38660,
	},
	// Osculating elements around the 1996 perihelion; the mean motion
	// follows from a via Kepler's third law.
	Chiron: {
		A: 13.648, E: 0.3790, I: 6.93, L: 216.25, W: 188.55, N: 209.30,
		DL: 715.40, DW: 1.40, DN: 1.40,
	},
}

// ElementsOf returns the orbital elements for b and whether b has an orbit
// in the table.
func ElementsOf(b Body) (Elements, bool) {
	el, ok := orbits[b]
	return el, ok
}
