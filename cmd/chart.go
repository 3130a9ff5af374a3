package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ui"
)

var chartCmd = &cobra.Command{
	Use:   "chart DATE [TIME]",
	Short: "Compute a full natal chart",
	Long: `Computes planetary positions with houses and aspects, the distribution
analysis, the Human Design bodygraph and the Zi Wei Dou Shu chart.`,
	Args: birthArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().String("gender", "", "male or female, for Zi Wei decade direction")
	chartCmd.Flags().String("name", "", "label for the chart")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	in, cfg, err := loadInput(cmd, args)
	if err != nil {
		return err
	}
	c, err := natal.Compute(in, chartOptions(cfg)...)
	if err != nil {
		return err
	}
	logger.Debug("chart computed",
		zap.Float64("jd", c.JD),
		zap.Bool("houses_converged", c.Houses.Converged),
		zap.Bool("ziwei", c.ZiWei != nil))

	if wantJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), c)
	}
	ui.New(cmd.OutOrStdout()).Natal(c)
	return nil
}
