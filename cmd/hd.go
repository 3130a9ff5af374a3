package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/humandesign"
	"github.com/papapumpkin/astrolabe/internal/ui"
)

var hdCmd = &cobra.Command{
	Use:   "hd DATE [TIME]",
	Short: "Compute the Human Design bodygraph",
	Args:  birthArgs,
	RunE:  runHD,
}

func init() {
	rootCmd.AddCommand(hdCmd)
}

func runHD(cmd *cobra.Command, args []string) error {
	in, _, err := loadInput(cmd, args)
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
	hd := humandesign.Calculate(jd)
	if !hd.DesignConverged {
		logger.Warn("design instant did not converge", zap.Float64("jd", jd), zap.Float64("design_jd", hd.DesignJD))
	}

	if wantJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), hd)
	}
	ui.New(cmd.OutOrStdout()).HumanDesign(hd)
	return nil
}
