package main

import (
	"yolearn/internal/config"
	"yolearn/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "yolearnctl",
	Short:         "Administrative tasks for the YoLearn backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

// loadEnv reads configuration the same way the server does.
func loadEnv() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := observability.NewLogger(cfg.App.Environment, level)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
