package services

import (
	"context"
	"errors"
	"itinerary-planner-service/internal/adapters/distance"
	"itinerary-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog struct {
	pkgs []domain.ItineraryPackage
	err  error
}

func (s staticCatalog) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	if s.err != nil {
		return domain.CatalogSnapshot{}, s.err
	}
	return domain.CatalogSnapshot{Key: "test", Packages: s.pkgs}, nil
}

func TestPlanTripFromCatalogWithAlternativesAndLegs(t *testing.T) {
	best := dayPlan("best", 900, []string{"beach"}, stop{"Mirissa", 2}, stop{"Galle", 1})
	second := dayPlan("second", 950, nil, stop{"Ella", 3})
	third := dayPlan("third", 1100, nil, stop{"Kandy", 3})
	catalog := staticCatalog{pkgs: []domain.ItineraryPackage{second, best, third}}

	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "Mirissa", To: "Galle", Meters: 30000, Seconds: 2400},
	})

	req := PlanTripRequest{
		Goals:        domain.PlanningGoals{TargetDays: 3, TargetBudget: 1000, InterestTags: []string{"beach"}},
		Alternatives: DefaultAlternatives,
	}
	plan, err := PlanTrip(context.Background(), req, catalog, provider)
	require.NoError(t, err)

	assert.Equal(t, "best", plan.Result.Package.ID)
	assert.Equal(t, 1350, plan.Result.Score)
	assert.Equal(t, "Perfect 3-day match with optimized location flow.", plan.Result.Explanation)
	assert.Equal(t, "Selected because it fits your budget perfectly, matches your 3-day timeframe exactly, "+
		"includes beach, ranks highly for your goals. You'll explore Mirissa, Galle!", plan.Summary)

	require.Len(t, plan.Alternatives, 2)
	assert.Equal(t, "second", plan.Alternatives[0].ID)
	assert.Equal(t, 1300, plan.Alternatives[0].Score)
	assert.Equal(t, "third", plan.Alternatives[1].ID)
	assert.Equal(t, 1100, plan.Alternatives[1].Score)

	require.Len(t, plan.Legs, 1)
	assert.Equal(t, domain.TravelLeg{From: "Mirissa", To: "Galle", Day: 3, DistanceMeters: 30000, DurationSeconds: 2400}, plan.Legs[0])
	assert.Equal(t, 30000, plan.TotalDistanceMeters)
	assert.Equal(t, 2400, plan.TotalDurationSeconds)
}

func TestPlanTripSynthesizesWhenCatalogIsEmpty(t *testing.T) {
	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Goals:        domain.PlanningGoals{TargetDays: 4, TargetBudget: 500},
		Alternatives: DefaultAlternatives,
	}, staticCatalog{}, distance.NewGreatCircleProvider())
	require.NoError(t, err)

	assert.True(t, plan.Result.Generated())
	assert.Empty(t, plan.Alternatives)
	require.Len(t, plan.Legs, 1)
	assert.Equal(t, "Colombo", plan.Legs[0].From)
	assert.Positive(t, plan.TotalDistanceMeters)
}

func TestPlanTripOmitsLegsWhenProviderFails(t *testing.T) {
	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Goals: domain.PlanningGoals{TargetDays: 5, TargetBudget: 500},
	}, staticCatalog{}, distance.NewMockDistanceProvider(nil))
	require.NoError(t, err)

	assert.Equal(t, 5, plan.Result.Package.TotalDays)
	assert.Empty(t, plan.Legs)
	assert.Zero(t, plan.TotalDistanceMeters)
}

func TestPlanTripSkipLegs(t *testing.T) {
	provider := distance.NewMockDistanceProvider(nil)
	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Goals:    domain.PlanningGoals{TargetDays: 5, TargetBudget: 500},
		SkipLegs: true,
	}, staticCatalog{}, provider)
	require.NoError(t, err)

	assert.Empty(t, plan.Legs)
	assert.Empty(t, provider.Calls())
}

func TestPlanTripNormalizesGoals(t *testing.T) {
	plan, err := PlanTrip(context.Background(), PlanTripRequest{}, staticCatalog{}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTargetDays, plan.Result.Package.TotalDays)
	assert.Len(t, plan.Result.Package.Activities, domain.DefaultTargetDays*len(domain.Slots))
}

func TestPlanTripCatalogFailure(t *testing.T) {
	boom := errors.New("catalog down")

	_, err := PlanTrip(context.Background(), PlanTripRequest{}, staticCatalog{err: boom}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
