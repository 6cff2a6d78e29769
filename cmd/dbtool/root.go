package main

import (
	"context"
	"database/sql"
	"fmt"
	"itinerary-planner-service/internal/config"
	"itinerary-planner-service/internal/platform/db"
	"itinerary-planner-service/internal/platform/obs"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Maintain the itinerary catalog database",
	Long: `dbtool applies schema migrations, loads catalog packages from JSON
exports, generates synthetic catalogs and precomputes travel legs.

Connection settings are read from the environment (DATABASE_URL, REDIS_URL,
ORS_API_KEY) or a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		obs.Setup(level)
	},
}

func init() {
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection URL (default $DATABASE_URL)")
	rootCmd.PersistentFlags().String("log-level", config.Get("LOG_LEVEL", "info"), "Log level: debug, info, warn or error")
}

// openDB connects using --database-url, falling back to DATABASE_URL.
func openDB(ctx context.Context, cmd *cobra.Command) (*sql.DB, error) {
	url, _ := cmd.Flags().GetString("database-url")
	if url == "" {
		var err error
		if url, err = config.DatabaseURL(); err != nil {
			return nil, err
		}
	}

	conn, err := db.Open(ctx, url, db.DefaultPoolOptions())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}
