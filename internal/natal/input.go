package natal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
)

// Input is one set of birth data.
type Input struct {
	Name        string        `json:"name,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	TZOffset    float64       `json:"tz_offset"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	HouseSystem houses.System `json:"house_system"`
	Gender      ziwei.Gender  `json:"gender"`
}

// Validate checks the ranges Compute cannot recover from. Date and time
// strings are checked when the Julian date is formed.
func (in Input) Validate() error {
	if math.IsNaN(in.Latitude) || in.Latitude < -90 || in.Latitude > 90 {
		return fmt.Errorf("latitude %v: %w", in.Latitude, ErrInvalidLocation)
	}
	if math.IsNaN(in.Longitude) || in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("longitude %v: %w", in.Longitude, ErrInvalidLocation)
	}
	if math.IsNaN(in.TZOffset) || in.TZOffset < -14 || in.TZOffset > 14 {
		return fmt.Errorf("offset %v: %w", in.TZOffset, ErrInvalidOffset)
	}
	return nil
}

// localHour returns the wall-clock hour of a clock string that JulianDate
// has already accepted.
func localHour(clock string) int {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Hour()
		}
	}
	return 0
}
