package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds in-flight distance provider calls.
const maxConcurrentLookups = 5

type legStop struct {
	location domain.Location
	day      int
}

// itineraryStops lists each location once in visit order, with the day of
// arrival and the coordinates of the first activity there.
func itineraryStops(pkg domain.ItineraryPackage) []legStop {
	seen := make(map[string]struct{})
	stops := make([]legStop, 0, len(pkg.Destinations))
	for _, a := range pkg.Activities {
		if _, ok := seen[a.Location]; ok {
			continue
		}
		seen[a.Location] = struct{}{}
		stops = append(stops, legStop{
			location: domain.Location{Name: a.Location, Coordinates: a.Coordinates()},
			day:      a.Day,
		})
	}
	return stops
}

// PlanTravelLegs computes one leg between each pair of consecutive
// destinations of an itinerary. The package is not modified.
func PlanTravelLegs(
	ctx context.Context,
	pkg domain.ItineraryPackage,
	provider ports.DistanceProvider,
) (_ []domain.TravelLeg, err error) {
	defer obs.Time(ctx, "services.PlanTravelLegs")(&err)

	if provider == nil {
		return nil, errors.New("plan travel legs: provider must be non-nil")
	}

	stops := itineraryStops(pkg)
	if len(stops) < 2 {
		return []domain.TravelLeg{}, nil
	}

	legs := make([]domain.TravelLeg, len(stops)-1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i := range legs {
		from, to := stops[i], stops[i+1]
		g.Go(func() error {
			r, err := provider.GetDistance(gctx, from.location, to.location)
			if err != nil {
				return fmt.Errorf("plan travel legs: get distance from %q to %q: %w", from.location.Name, to.location.Name, err)
			}
			// Each goroutine owns one slot of legs.
			legs[i] = domain.TravelLeg{
				From:            from.location.Name,
				To:              to.location.Name,
				Day:             to.day,
				DistanceMeters:  r.DistanceMeters,
				DurationSeconds: r.DurationSeconds,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return legs, nil
}

// WarmTravelLegs looks up travel between every ordered pair of locations so
// that a caching provider has them ready. It returns the number of pairs
// resolved.
func WarmTravelLegs(
	ctx context.Context,
	locations []domain.Location,
	provider ports.DistanceProvider,
) (_ int, err error) {
	defer obs.Time(ctx, "services.WarmTravelLegs")(&err)

	if provider == nil {
		return 0, errors.New("warm travel legs: provider must be non-nil")
	}

	counts := make([]int, len(locations))
	mp, hasMatrix := provider.(ports.DistanceMatrixProvider)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, origin := range locations {
		targets := make([]domain.Location, 0, len(locations)-1)
		for _, l := range locations {
			if l.Name != origin.Name {
				targets = append(targets, l)
			}
		}

		g.Go(func() error {
			// Prefer one origin->many lookup when supported to reduce external API calls.
			if hasMatrix {
				res, err := mp.GetDistances(gctx, origin, targets)
				if err != nil {
					return fmt.Errorf("warm travel legs: get distances from %q: %w", origin.Name, err)
				}
				counts[i] = len(res)
				return nil
			}

			for _, t := range targets {
				if _, err := provider.GetDistance(gctx, origin, t); err != nil {
					return fmt.Errorf("warm travel legs: get distance from %q to %q: %w", origin.Name, t.Name, err)
				}
				counts[i]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}
