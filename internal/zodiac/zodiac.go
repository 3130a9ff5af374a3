// Package zodiac maps ecliptic longitudes onto the twelve tropical signs
// and their elements and modalities.
package zodiac

import (
	"fmt"
	"math"

	"github.com/papapumpkin/astrolabe/internal/angle"
)

// Element is one of the four classical elements.
type Element string

// Elements.
const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Modality is one of the three sign qualities.
type Modality string

// Modalities.
const (
	Cardinal Modality = "Cardinal"
	Fixed    Modality = "Fixed"
	Mutable  Modality = "Mutable"
)

// Sign is a 30-degree division of the ecliptic starting at 0 Aries.
type Sign struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Element  Element  `json:"element"`
	Modality Modality `json:"modality"`
}

var signs = [12]Sign{
	{0, "Aries", "♈", Fire, Cardinal},
	{1, "Taurus", "♉", Earth, Fixed},
	{2, "Gemini", "♊", Air, Mutable},
	{3, "Cancer", "♋", Water, Cardinal},
	{4, "Leo", "♌", Fire, Fixed},
	{5, "Virgo", "♍", Earth, Mutable},
	{6, "Libra", "♎", Air, Cardinal},
	{7, "Scorpio", "♏", Water, Fixed},
	{8, "Sagittarius", "♐", Fire, Mutable},
	{9, "Capricorn", "♑", Earth, Cardinal},
	{10, "Aquarius", "♒", Air, Fixed},
	{11, "Pisces", "♓", Water, Mutable},
}

// Signs returns the twelve signs in zodiacal order.
func Signs() [12]Sign { return signs }

// SignOf returns the sign holding lon.
func SignOf(lon float64) Sign {
	return signs[int(angle.Normalize(lon)/30)%12]
}

// DegreeInSign returns lon's offset from the start of its sign, in [0, 30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(angle.Normalize(lon), 30)
}

// Format renders lon as whole degrees and minutes within its sign, for
// example "10°22' Capricorn". Minutes are truncated, never rounded up into
// the next degree.
func Format(lon float64) string {
	d := DegreeInSign(lon)
	deg := int(d)
	mins := int((d - float64(deg)) * 60)
	return fmt.Sprintf("%d°%02d' %s", deg, mins, SignOf(lon).Name)
}
