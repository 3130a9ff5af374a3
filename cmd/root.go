package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrolabe/internal/logging"
)

// logger is built in PersistentPreRunE; commands log through it.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "astrolabe",
	Short: "Natal charts, Human Design and Zi Wei Dou Shu from birth data",
	Long: `Astrolabe computes planetary positions, house cusps and aspects for a
birth instant and place, and derives the Human Design bodygraph and the
Zi Wei Dou Shu chart from the same data.

Dates are YYYY-MM-DD and times HH:MM in local time; the timezone offset and
location come from flags, ASTROLABE_* env vars or .astrolabe.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .astrolabe.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.Float64("tz", 8, "timezone offset in hours east of UTC")
	pf.Float64("lat", 25.03, "latitude in degrees, north positive")
	pf.Float64("lon", 121.56, "longitude in degrees, east positive")
	pf.String("house-system", "placidus", "house system: placidus, equal or whole")
	pf.Float64("obliquity", 0, "obliquity of the ecliptic in degrees (0 = mean obliquity of date)")
	pf.Int("placidus-iterations", 20, "iteration cap for Placidus cusps")
	pf.Bool("json", false, "print JSON instead of the terminal view")

	for key, flag := range map[string]string{
		"verbose":             "verbose",
		"tz_offset":           "tz",
		"latitude":            "lat",
		"longitude":           "lon",
		"house_system":        "house-system",
		"obliquity":           "obliquity",
		"placidus_iterations": "placidus-iterations",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrolabe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROLABE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
