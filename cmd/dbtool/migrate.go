package main

import (
	"itinerary-planner-service/internal/adapters/repositories"
	"log/slog"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := openDB(ctx, cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.Migrate(ctx, conn); err != nil {
			return err
		}
		slog.Info("schema ready")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations have been applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := openDB(ctx, cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		return repositories.MigrationStatus(ctx, conn)
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
