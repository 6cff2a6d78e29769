package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
)

// DefaultAlternatives is how many runner-up catalog packages a trip plan lists.
const DefaultAlternatives = 2

type PlanTripRequest struct {
	Goals domain.PlanningGoals
	// Alternatives is the maximum number of alternatives to list.
	Alternatives int
	// SkipLegs disables travel leg lookups.
	SkipLegs bool
}

// PlanTrip plans an itinerary against the current catalog snapshot and
// enriches it with alternatives and travel legs.
//
// Only a catalog failure is an error. When travel legs cannot be computed the
// failure is logged and the plan is returned without legs.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	catalog ports.CatalogSource,
	distances ports.DistanceProvider,
) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if catalog == nil {
		return nil, errors.New("plan trip: catalog must be non-nil")
	}

	snap, err := catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: load catalog: %w", err)
	}

	goals := req.Goals.Normalize()
	result := PlanItinerary(snap.Packages, goals)

	plan := &domain.TripPlan{
		Result:       result,
		Summary:      SummarizePlan(result, goals),
		Alternatives: []domain.Alternative{},
		Legs:         []domain.TravelLeg{},
	}

	if req.Alternatives > 0 {
		plan.Alternatives = FindAlternatives(snap.Packages, goals, result.Package.ID, req.Alternatives)
	}

	if req.SkipLegs || distances == nil {
		return plan, nil
	}

	legs, err := PlanTravelLegs(ctx, result.Package, distances)
	if err != nil {
		obs.Logger(ctx).WarnContext(ctx, "travel legs unavailable; returning plan without legs",
			"package_id", result.Package.ID,
			"err", err)
		return plan, nil
	}

	plan.Legs = legs
	for _, l := range legs {
		plan.TotalDistanceMeters += l.DistanceMeters
		plan.TotalDurationSeconds += l.DurationSeconds
	}

	return plan, nil
}
