package main

import (
	"fmt"

	"github.com/dmehra2102/menudash/internal/infrastructure/config"
	"github.com/dmehra2102/menudash/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the page store migrations",
	Long:  `Creates or upgrades the Postgres tables that remember the current page of each listing screen.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required to run migrations")
	}

	db, err := postgres.Open(cmd.Context(), cfg.GetDatabaseConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db, cfg.MigrationsPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
