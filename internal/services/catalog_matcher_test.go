package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePackage(t *testing.T) {
	goals := domain.PlanningGoals{TargetDays: 7, TargetBudget: 1500, InterestTags: []string{"beach", "culture"}}

	tests := []struct {
		name   string
		days   int
		price  float64
		tags   []string
		want   int
		wantOK bool
	}{
		{name: "exact days within budget", days: 7, price: 1500, want: 1300, wantOK: true},
		{name: "exact days near budget", days: 7, price: 1800, want: 1100, wantOK: true},
		{name: "exact days over budget", days: 7, price: 1801, want: 1000, wantOK: true},
		{name: "one day short", days: 6, price: 100, want: 400, wantOK: true},
		{name: "one day long with tags", days: 8, price: 100, tags: []string{"beach", "culture", "food"}, want: 500, wantOK: true},
		{name: "two days off", days: 9, price: 100, wantOK: false},
		{name: "interests only count once", days: 7, price: 9999, tags: []string{"beach", "beach"}, want: 1050, wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pkg := domain.ItineraryPackage{ID: "x", TotalDays: tc.days, TotalPrice: tc.price, InterestTags: tc.tags}
			got, ok := ScorePackage(pkg, goals)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMatchCatalogPrefersExactDays(t *testing.T) {
	goals := domain.PlanningGoals{TargetDays: 7, TargetBudget: 1500, InterestTags: []string{"beach", "culture"}}
	b := domain.ItineraryPackage{ID: "B", TotalDays: 9, TotalPrice: 1000, InterestTags: []string{"beach", "culture"}}
	a := domain.ItineraryPackage{ID: "A", TotalDays: 7, TotalPrice: 1000, InterestTags: []string{"beach", "culture"}}

	c, ok := MatchCatalog([]domain.ItineraryPackage{b, a}, goals)
	require.True(t, ok)
	assert.Equal(t, "A", c.Package.ID)
	assert.Equal(t, 1400, c.Score)
}

func TestMatchCatalogAcceptsCoveringPackage(t *testing.T) {
	goals := domain.PlanningGoals{TargetDays: 7, TargetBudget: 1500, InterestTags: []string{"beach", "relax"}}
	p := domain.ItineraryPackage{ID: "P", TotalDays: 7, TotalPrice: 1200, InterestTags: []string{"beach", "relax", "food"}}

	c, ok := MatchCatalog([]domain.ItineraryPackage{p}, goals)
	require.True(t, ok)
	assert.GreaterOrEqual(t, c.Score, 1300)
	assert.Equal(t, 1400, c.Score)
}

func TestMatchCatalogTieKeepsCatalogOrder(t *testing.T) {
	goals := domain.PlanningGoals{TargetDays: 3, TargetBudget: 500}
	catalog := []domain.ItineraryPackage{
		{ID: "first", TotalDays: 3, TotalPrice: 400},
		{ID: "second", TotalDays: 3, TotalPrice: 100},
	}

	c, ok := MatchCatalog(catalog, goals)
	require.True(t, ok)
	assert.Equal(t, "first", c.Package.ID)
}

func TestMatchCatalogRejects(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n"}

	tests := []struct {
		name    string
		goals   domain.PlanningGoals
		catalog []domain.ItineraryPackage
	}{
		{
			name:  "empty catalog",
			goals: domain.PlanningGoals{TargetDays: 5, TargetBudget: 800},
		},
		{
			name:    "only adjacent day counts",
			goals:   domain.PlanningGoals{TargetDays: 5, TargetBudget: 800},
			catalog: []domain.ItineraryPackage{{ID: "p", TotalDays: 4, TotalPrice: 100}},
		},
		{
			name:    "all excluded",
			goals:   domain.PlanningGoals{TargetDays: 5, TargetBudget: 800, ExcludedPackageIDs: []string{"p"}},
			catalog: []domain.ItineraryPackage{{ID: "p", TotalDays: 5, TotalPrice: 100}},
		},
		{
			name:  "adjacent package outscores exact one",
			goals: domain.PlanningGoals{TargetDays: 5, TargetBudget: 800, InterestTags: many},
			catalog: []domain.ItineraryPackage{
				{ID: "exact", TotalDays: 5, TotalPrice: 5000},
				{ID: "adjacent", TotalDays: 6, TotalPrice: 100, InterestTags: many},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := MatchCatalog(tc.catalog, tc.goals)
			assert.False(t, ok)
		})
	}
}

func TestMatchCatalogAcceptsOverBudgetExactDays(t *testing.T) {
	goals := domain.PlanningGoals{TargetDays: 4, TargetBudget: 100}
	c, ok := MatchCatalog([]domain.ItineraryPackage{{ID: "pricey", TotalDays: 4, TotalPrice: 900}}, goals)

	require.True(t, ok)
	assert.Equal(t, 1000, c.Score)
}
