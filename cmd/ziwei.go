package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrolabe/internal/ui"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
)

var ziweiCmd = &cobra.Command{
	Use:   "ziwei DATE [TIME]",
	Short: "Compute the Zi Wei Dou Shu chart",
	Long: `Computes the Zi Wei Dou Shu chart for a local birth date and time.
Dates outside 1900-01-31 to 2099 report insufficient data.`,
	Args: birthArgs,
	RunE: runZiWei,
}

func init() {
	ziweiCmd.Flags().String("gender", "", "male or female, for decade direction")
	rootCmd.AddCommand(ziweiCmd)
}

// ziweiView is the JSON shape of the ziwei command.
type ziweiView struct {
	Chart   *ziwei.Chart   `json:"chart"`
	Decades []ziwei.Decade `json:"decades,omitempty"`
	Message string         `json:"message,omitempty"`
}

func runZiWei(cmd *cobra.Command, args []string) error {
	in, _, err := loadInput(cmd, args)
	if err != nil {
		return err
	}
	hour, err := parseHour(in.Time)
	if err != nil {
		return err
	}
	c, err := ziwei.Calculate(in.Date, hour)
	if err != nil {
		return err
	}

	view := ziweiView{Chart: c}
	if c == nil {
		logger.Info("date outside lunar table", zap.String("date", in.Date))
		view.Message = ui.InsufficientData
	} else {
		view.Decades = c.Decades(in.Gender)
	}

	if wantJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), view)
	}
	ui.New(cmd.OutOrStdout()).ZiWei(c, view.Decades)
	return nil
}
