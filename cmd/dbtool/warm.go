package main

import (
	"errors"
	"fmt"
	"itinerary-planner-service/internal/adapters/cache"
	"itinerary-planner-service/internal/adapters/distance"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/config"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/services"
	"log/slog"

	"github.com/spf13/cobra"
)

var warmLegsCmd = &cobra.Command{
	Use:   "warm-legs",
	Short: "Precompute road travel between all pool locations",
	Long: `Fetch OpenRouteService distances between every pair of locations in the
synthesizer pool and store them in the travel leg cache, so that planning
synthesized itineraries needs no external calls.

Requires ORS_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		apiKey := config.Get("ORS_API_KEY", "")
		if apiKey == "" {
			return errors.New("ORS_API_KEY is required")
		}
		profile := config.Get("ORS_PROFILE", distance.DefaultORSProfile)

		conn, err := openDB(ctx, cmd)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.Migrate(ctx, conn); err != nil {
			return err
		}

		provider, err := distance.NewORSDistanceProvider(distance.ORSOptions{
			APIKey:  apiKey,
			BaseURL: config.Get("ORS_BASE_URL", distance.DefaultORSBaseURL),
			Profile: profile,
			Cache:   cache.NewSQLTravelLegCache(conn, profile),
		})
		if err != nil {
			return fmt.Errorf("warm legs: %w", err)
		}

		pool := services.DefaultLocations()
		locations := make([]domain.Location, 0, len(pool))
		for _, l := range pool {
			locations = append(locations, domain.Location{Name: l.Name, Coordinates: l.Coordinates})
		}

		n, err := services.WarmTravelLegs(ctx, locations, provider)
		if err != nil {
			return err
		}
		slog.Info("travel legs warmed", "pairs", n, "locations", len(locations), "profile", profile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(warmLegsCmd)
}
