package houses

import "github.com/papapumpkin/astrolabe/internal/angle"

// Index returns the 0-based house holding lon. A longitude exactly on a
// cusp belongs to the house that cusp opens. Arcs crossing 0 degrees are
// handled circularly. When no arc matches, which only happens for
// degenerate cusp sets, Index returns 0.
func Index(lon float64, cusps [12]float64) int {
	lon = angle.Normalize(lon)
	for i := range cusps {
		if angle.InArc(lon, cusps[i], cusps[(i+1)%12]) {
			return i
		}
	}
	return 0
}
