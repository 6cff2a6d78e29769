package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for retrieving travel distance and duration between locations.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two locations.
	GetDistance(ctx context.Context, origin domain.Location, destination domain.Location) (DistanceResult, error)
}

// Optional extension of DistanceProvider that supports batched lookups.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return distances from one origin to many destinations, keyed by destination name.
	GetDistances(ctx context.Context, origin domain.Location, destinations []domain.Location) (map[string]DistanceResult, error)
}

// Persistent store of previously computed travel results, keyed by location name.
type TravelLegCache interface {
	// Return cached results for the destinations that have one.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
	PutMany(ctx context.Context, origin string, results map[string]DistanceResult) error
}
