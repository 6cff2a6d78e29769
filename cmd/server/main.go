package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/adapters/cache"
	"itinerary-planner-service/internal/adapters/distance"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/api"
	"itinerary-planner-service/internal/config"
	"itinerary-planner-service/internal/platform/db"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := obs.Setup(cfg.LogLevel)
	if envErr != nil {
		logger.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL, db.DefaultPoolOptions())
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repositories.Migrate(ctx, conn); err != nil {
		return err
	}

	store, closeStore, err := snapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog := cache.NewCatalogCache(repositories.NewPostgresCatalogRepository(conn), cache.CatalogCacheOptions{
		Key:    cfg.CatalogKey,
		TTL:    cfg.CatalogTTL,
		Limit:  cfg.CatalogLimit,
		Store:  store,
		Logger: logger,
	})

	provider, err := distanceProvider(cfg, conn, logger)
	if err != nil {
		return err
	}

	// Warm the catalog so the first request does not pay for the load.
	if _, err := catalog.Snapshot(ctx); err != nil {
		logger.Warn("initial catalog load failed", "err", err)
	}

	router := api.NewRouter(catalog, provider, logger)

	// Timeouts are tuned for cold-cache leg lookups (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// snapshotStore connects the shared snapshot store when REDIS_URL is set.
func snapshotStore(ctx context.Context, cfg config.Config) (ports.SnapshotStore, func(), error) {
	if cfg.RedisURL == "" {
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot store: parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("snapshot store: ping redis: %w", err)
	}

	return cache.NewRedisSnapshotStore(client), func() { _ = client.Close() }, nil
}

// distanceProvider uses OpenRouteService road distances, persisted in
// Postgres, when an API key is configured and great-circle estimates otherwise.
func distanceProvider(cfg config.Config, conn *sql.DB, logger *slog.Logger) (ports.DistanceProvider, error) {
	if cfg.ORSAPIKey == "" {
		logger.Info("ORS_API_KEY not set; using great-circle travel estimates")
		return distance.NewGreatCircleProvider(), nil
	}

	provider, err := distance.NewORSDistanceProvider(distance.ORSOptions{
		APIKey:  cfg.ORSAPIKey,
		BaseURL: cfg.ORSBaseURL,
		Profile: cfg.ORSProfile,
		Cache:   cache.NewSQLTravelLegCache(conn, cfg.ORSProfile),
	})
	if err != nil {
		return nil, fmt.Errorf("distance provider: %w", err)
	}
	return provider, nil
}
