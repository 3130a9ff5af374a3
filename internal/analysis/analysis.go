// Package analysis summarizes how a chart's points are spread across
// hemispheres, quadrants, elements and modalities.
package analysis

import (
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/zodiac"
)

// Hemispheres counts bodies on each side of the horizon and meridian.
// East holds houses 10 through 3; South holds houses 7 through 12, above
// the horizon.
type Hemispheres struct {
	East  int `json:"east"`
	West  int `json:"west"`
	North int `json:"north"`
	South int `json:"south"`
}

// Balance counts chart points per element and modality. The Ascendant
// and Midheaven count as points alongside the bodies.
type Balance struct {
	Elements   map[zodiac.Element]int  `json:"elements"`
	Modalities map[zodiac.Modality]int `json:"modalities"`
}

// Distribution is the full spread analysis of a chart.
type Distribution struct {
	Hemispheres Hemispheres `json:"hemispheres"`
	// Quadrants[0] counts houses 1-3, Quadrants[3] houses 10-12.
	Quadrants [4]int  `json:"quadrants"`
	Balance   Balance `json:"balance"`
}

// Analyze computes the distribution of positions within h.
func Analyze(positions []ephemeris.Position, h houses.Houses) Distribution {
	var d Distribution
	for _, p := range positions {
		idx := houses.Index(p.Longitude, h.Cusps)

		switch idx {
		case 9, 10, 11, 0, 1, 2:
			d.Hemispheres.East++
		default:
			d.Hemispheres.West++
		}
		if idx >= 6 {
			d.Hemispheres.South++
		} else {
			d.Hemispheres.North++
		}
		d.Quadrants[idx/3]++
	}
	d.Balance = BalanceOf(positions, h.Asc, h.MC)
	return d
}

// BalanceOf counts elements and modalities over positions plus the extra
// longitudes given, typically the Ascendant and Midheaven.
func BalanceOf(positions []ephemeris.Position, extra ...float64) Balance {
	b := Balance{
		Elements:   make(map[zodiac.Element]int, 4),
		Modalities: make(map[zodiac.Modality]int, 3),
	}
	add := func(lon float64) {
		s := zodiac.SignOf(lon)
		b.Elements[s.Element]++
		b.Modalities[s.Modality]++
	}
	for _, p := range positions {
		add(p.Longitude)
	}
	for _, lon := range extra {
		add(lon)
	}
	return b
}

// Dominant returns the element with the highest count, preferring the
// earlier element in Fire, Earth, Air, Water order on ties.
func (b Balance) Dominant() zodiac.Element {
	best := zodiac.Fire
	for _, e := range []zodiac.Element{zodiac.Fire, zodiac.Earth, zodiac.Air, zodiac.Water} {
		if b.Elements[e] > b.Elements[best] {
			best = e
		}
	}
	return best
}
