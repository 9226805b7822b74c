package main

import (
	"yolearn/internal/app"
	"yolearn/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCost int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo data set into Postgres unless it is already there",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCost, "bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for seeded passwords")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg.Storage = config.StorageConfig{Driver: config.StoragePostgres}
	c, err := app.NewContainer(cmd.Context(), cfg, logger, app.WithBcryptCost(seedCost))
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Seed(cmd.Context(), seedCost)
}
