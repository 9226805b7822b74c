package main

import (
	"fmt"

	"yolearn/internal/database/migration"
	"yolearn/internal/database/postgres"
	"yolearn/internal/database/sqldb"
	"yolearn/migrations"

	"github.com/spf13/cobra"
)

var migrateDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations to the configured Postgres database",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "read migrations from this directory instead of the embedded set")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := sqldb.Open(cmd.Context(), postgres.DSN(cfg.Database))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	dir := migrateDir
	if dir == "" {
		dir = cfg.Database.MigrationsDir
	}
	r := migration.Runner{Dir: dir, FS: migrations.FS, Logger: logger}
	res, err := r.Run(cmd.Context(), db.SQLDB())
	if err != nil {
		return err
	}

	for _, m := range res.Applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied V%d %s\n", m.Version, m.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d applied, %d already up to date\n", len(res.Applied), res.Skipped)
	return nil
}
