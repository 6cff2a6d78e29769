package distance

import (
	"context"
	"errors"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"math"
	"strings"
)

const (
	earthRadiusMeters = 6371000.0

	// DefaultSpeedKmh is the average road speed assumed between destinations.
	DefaultSpeedKmh = 40.0
)

// GreatCircleProvider estimates travel from the straight-line distance
// between coordinates at a fixed average speed. It needs no network access
// and is used when no routing service is configured.
type GreatCircleProvider struct {
	SpeedKmh float64
}

func NewGreatCircleProvider() *GreatCircleProvider {
	return &GreatCircleProvider{SpeedKmh: DefaultSpeedKmh}
}

func (g *GreatCircleProvider) GetDistance(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
) (ports.DistanceResult, error) {
	if strings.TrimSpace(origin.Name) == "" || strings.TrimSpace(destination.Name) == "" {
		return ports.DistanceResult{}, errors.New("great circle distance: origin and destination must be named")
	}
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	meters := haversineMeters(origin.Coordinates, destination.Coordinates)

	speed := g.SpeedKmh
	if speed <= 0 {
		speed = DefaultSpeedKmh
	}
	metersPerSecond := speed * 1000 / 3600

	return ports.DistanceResult{
		DistanceMeters:  int(math.Round(meters)),
		DurationSeconds: int(math.Round(meters / metersPerSecond)),
	}, nil
}

func (g *GreatCircleProvider) GetDistances(
	ctx context.Context,
	origin domain.Location,
	destinations []domain.Location,
) (map[string]ports.DistanceResult, error) {
	out := make(map[string]ports.DistanceResult, len(destinations))
	for _, d := range destinations {
		r, err := g.GetDistance(ctx, origin, d)
		if err != nil {
			return nil, err
		}
		out[d.Name] = r
	}
	return out, nil
}

func haversineMeters(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
