package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrolabe/internal/config"
	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
)

// defaultClock is the birth time assumed when none is given.
const defaultClock = "12:00"

// birthArgs accepts a date and an optional time.
var birthArgs = cobra.RangeArgs(1, 2)

// loadInput builds the natal input from positional args and configuration.
func loadInput(cmd *cobra.Command, args []string) (natal.Input, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return natal.Input{}, cfg, fmt.Errorf("failed to load config: %w", err)
	}

	in := natal.Input{
		Date:        args[0],
		Time:        defaultClock,
		TZOffset:    cfg.TZOffset,
		Latitude:    cfg.Latitude,
		Longitude:   cfg.Longitude,
		HouseSystem: cfg.System(),
	}
	if len(args) > 1 {
		in.Time = args[1]
	}
	if f := cmd.Flags().Lookup("gender"); f != nil && f.Value.String() != "" {
		g, err := ziwei.ParseGender(f.Value.String())
		if err != nil {
			return natal.Input{}, cfg, err
		}
		in.Gender = g
	}
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		in.Name = name
	}
	return in, cfg, nil
}

// chartOptions maps configuration onto natal.Compute options.
func chartOptions(cfg config.Config) []natal.Option {
	return []natal.Option{
		natal.WithObliquity(cfg.Obliquity),
		natal.WithMaxIterations(cfg.PlacidusIterations),
	}
}

// parseHour returns the hour of an "HH:MM" or "HH:MM:SS" clock.
func parseHour(clock string) (int, error) {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Hour(), nil
		}
	}
	return 0, fmt.Errorf("parsing time %q: %w", clock, ziwei.ErrInvalidHour)
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
