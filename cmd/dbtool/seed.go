package main

import (
	"context"
	"fmt"
	"itinerary-planner-service/internal/adapters/cache"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/config"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog packages from a JSON export",
	Long: `Load catalog packages from a JSON export into the catalog table.

Records are upserted by id in one transaction; an invalid record aborts the
whole load. The schema is migrated first. When REDIS_URL is set the shared
catalog snapshot is dropped so running services reload it.

Example:
  dbtool seed --file data/seeds/packages.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path, _ := cmd.Flags().GetString("file")

		conn, err := openDB(ctx, cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.Migrate(ctx, conn); err != nil {
			return err
		}

		n, err := repositories.SeedFromJSON(ctx, repositories.NewPostgresCatalogRepository(conn), path)
		if err != nil {
			return err
		}
		slog.Info("seeding complete", "packages", n, "file", path)

		return invalidateSnapshot(ctx)
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", config.Get("SEED_PATH", "data/seeds/packages.json"), "JSON export to load")
	rootCmd.AddCommand(seedCmd)
}

// invalidateSnapshot removes the shared catalog snapshot, if Redis is configured.
func invalidateSnapshot(ctx context.Context) error {
	redisURL := config.Get("REDIS_URL", "")
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalidate snapshot: parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	key := config.Get("CATALOG_KEY", cache.DefaultCatalogKey)
	if err := cache.NewRedisSnapshotStore(client).Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	slog.Info("catalog snapshot invalidated", "key", key)
	return nil
}
