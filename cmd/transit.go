package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ui"
)

// now is replaced in tests.
var now = time.Now

var transitCmd = &cobra.Command{
	Use:   "transit DATE [TIME]",
	Short: "Compare the sky at another instant with a natal chart",
	Long: `Computes transiting positions at --on/--at (default: now) and their
aspects to the natal chart of DATE and TIME.`,
	Args: birthArgs,
	RunE: runTransit,
}

func init() {
	transitCmd.Flags().String("on", "", "transit date YYYY-MM-DD (default today)")
	transitCmd.Flags().String("at", "", "transit time HH:MM (default now)")
	transitCmd.Flags().Float64("at-tz", 0, "timezone offset of the transit instant (default local zone)")
	rootCmd.AddCommand(transitCmd)
}

func runTransit(cmd *cobra.Command, args []string) error {
	in, cfg, err := loadInput(cmd, args)
	if err != nil {
		return err
	}
	c, err := natal.Compute(in, chartOptions(cfg)...)
	if err != nil {
		return err
	}

	t := now()
	date, _ := cmd.Flags().GetString("on")
	if date == "" {
		date = t.Format(time.DateOnly)
	}
	clock, _ := cmd.Flags().GetString("at")
	if clock == "" {
		clock = t.Format("15:04")
	}
	_, offset := t.Zone()
	tz := float64(offset) / 3600
	if cmd.Flags().Changed("at-tz") {
		tz, _ = cmd.Flags().GetFloat64("at-tz")
	}

	tr, err := natal.Transits(c, date, clock, tz)
	if err != nil {
		return err
	}
	if wantJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), tr)
	}
	ui.New(cmd.OutOrStdout()).Transit(tr)
	return nil
}
