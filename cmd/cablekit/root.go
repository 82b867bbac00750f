package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voltlab/cablekit/cable"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "cablekit",
	Short: "Validated construction of power cable models",
	Long: `Cablekit builds and validates multi-layer power cable models. Designs are
described as YAML documents; importing one runs every layer through the
same rule pipeline as the library constructors, so a document that checks
out is valid by construction.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
		applySettings()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cablekit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
// Recognized keys: default_temperature, promotion_warnings.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cablekit")
	}

	viper.SetEnvPrefix("CABLEKIT")
	viper.AutomaticEnv()

	viper.SetDefault("default_temperature", cable.DefaultTemperature)
	viper.SetDefault("promotion_warnings", true)

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// applySettings pushes the resolved configuration into the library.
func applySettings() {
	cable.Configure(
		cable.WithDefaultTemperature(viper.GetFloat64("default_temperature")),
		cable.WithPromotionWarnings(viper.GetBool("promotion_warnings")),
		cable.WithLogger(slog.Default()),
	)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
