package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/ui"
)

var housesCmd = &cobra.Command{
	Use:   "houses DATE [TIME]",
	Short: "Compute the Ascendant, Midheaven and house cusps",
	Args:  birthArgs,
	RunE:  runHouses,
}

func init() {
	rootCmd.AddCommand(housesCmd)
}

func runHouses(cmd *cobra.Command, args []string) error {
	in, cfg, err := loadInput(cmd, args)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	jd, err := ephemeris.JulianDate(in.Date, in.Time, in.TZOffset)
	if err != nil {
		return err
	}
	eps := cfg.Obliquity
	if eps == 0 {
		eps = ephemeris.MeanObliquity(jd)
	}
	h := houses.Compute(houses.SiderealTime(jd, in.Longitude), in.Latitude, eps, in.HouseSystem,
		houses.WithMaxIterations(cfg.PlacidusIterations))

	if wantJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), h)
	}
	ui.New(cmd.OutOrStdout()).Houses(h)
	return nil
}
