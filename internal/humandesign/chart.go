// Package humandesign derives a Human Design bodygraph from a birth
// instant: gate and line activations for the Personality (birth) and
// Design (88 solar degrees earlier) instants, the channels they complete,
// the centers those channels define, and the type, authority, profile,
// definition and incarnation cross that follow.
package humandesign

import (
	"fmt"

	"github.com/papapumpkin/astrolabe/internal/ephemeris"
)

// Chart is a computed bodygraph.
type Chart struct {
	Type        Type       `json:"type"`
	Authority   Authority  `json:"authority"`
	Profile     string     `json:"profile"`
	ProfileName string     `json:"profile_name"`
	Definition  Definition `json:"definition"`

	Centers        []Center  `json:"centers"`
	ActiveChannels []Channel `json:"active_channels"`

	Personality []Activation `json:"personality"`
	Design      []Activation `json:"design"`

	DesignJD        float64 `json:"design_jd"`
	DesignConverged bool    `json:"design_converged"`

	Circuitry Circuitry `json:"circuitry"`
	Cross     Cross     `json:"cross"`
}

// Defined reports whether c is among the chart's defined centers.
func (c Chart) Defined(center Center) bool {
	for _, d := range c.Centers {
		if d == center {
			return true
		}
	}
	return false
}

// Calculate builds the bodygraph for the birth instant natalJd.
func Calculate(natalJd float64) Chart {
	personality := Activations(natalJd)
	natalSun := personality[0].Longitude

	designJd, converged := DesignEpoch(natalJd, natalSun)
	design := Activations(designJd)

	gates := pooledGates(personality, design)
	channels := ActiveChannels(gates)
	typ, auth := Classify(channels)

	pSun, pEarth := find(personality, ephemeris.Sun), find(personality, ephemeris.Earth)
	dSun, dEarth := find(design, ephemeris.Sun), find(design, ephemeris.Earth)
	profile := fmt.Sprintf("%d/%d", pSun.Line, dSun.Line)

	return Chart{
		Type:            typ,
		Authority:       auth,
		Profile:         profile,
		ProfileName:     ProfileName(profile),
		Definition:      DefinitionOf(channels),
		Centers:         DefinedCenters(channels),
		ActiveChannels:  channels,
		Personality:     personality,
		Design:          design,
		DesignJD:        designJd,
		DesignConverged: converged,
		Circuitry:       CircuitryOf(gates),
		Cross:           IncarnationCross(pSun.Gate, pEarth.Gate, dSun.Gate, dEarth.Gate, profile),
	}
}

// ProfileName returns the conventional name of a profile such as "1/3".
// Line pairs outside the twelve standard profiles are named "X/Y (Profile)".
func ProfileName(profile string) string {
	if name, ok := profileNames[profile]; ok {
		return name
	}
	return profile + " (Profile)"
}

func find(as []Activation, b ephemeris.Body) Activation {
	for _, a := range as {
		if a.Body == b {
			return a
		}
	}
	return Activation{}
}
