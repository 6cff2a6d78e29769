package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestParseGoalsDefaults(t *testing.T) {
	g, err := ParseGoals(GoalsInput{})
	require.NoError(t, err)

	assert.Equal(t, DefaultTargetDays, g.TargetDays)
	assert.Equal(t, DefaultTargetBudget, g.TargetBudget)
	assert.Empty(t, g.InterestTags)
	assert.Empty(t, g.ExcludedPackageIDs)
}

func TestParseGoalsPresentFields(t *testing.T) {
	g, err := ParseGoals(GoalsInput{
		Days:        intPtr(5),
		Budget:      floatPtr(800),
		Interests:   []string{"beach", " beach ", "culture"},
		ExcludedIDs: []string{"12", "12"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, g.TargetDays)
	assert.Equal(t, 800.0, g.TargetBudget)
	assert.Equal(t, []string{"beach", "culture"}, g.InterestTags)
	assert.Equal(t, []string{"12"}, g.ExcludedPackageIDs)
}

func TestParseGoalsRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   GoalsInput
	}{
		{name: "zero days", in: GoalsInput{Days: intPtr(0)}},
		{name: "too many days", in: GoalsInput{Days: intPtr(MaxTargetDays + 1)}},
		{name: "negative budget", in: GoalsInput{Budget: floatPtr(-1)}},
		{name: "empty interest", in: GoalsInput{Interests: []string{"beach", ""}}},
		{name: "infinite budget", in: GoalsInput{Budget: floatPtr(math.Inf(1))}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGoals(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidGoals))
		})
	}
}

func TestParseGoalsExposesValidationErrors(t *testing.T) {
	_, err := ParseGoals(GoalsInput{Days: intPtr(-3)})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Days", verrs[0].Field())
}

func TestNormalizeSubstitutesDefaults(t *testing.T) {
	g := PlanningGoals{TargetDays: -2, TargetBudget: math.NaN()}.Normalize()

	assert.Equal(t, DefaultTargetDays, g.TargetDays)
	assert.Equal(t, DefaultTargetBudget, g.TargetBudget)
	assert.NotNil(t, g.InterestTags)
	assert.NotNil(t, g.ExcludedPackageIDs)
}

func TestGoalsWithExclusions(t *testing.T) {
	base := PlanningGoals{TargetDays: 3, ExcludedPackageIDs: []string{"a"}}
	next := base.With("b", "a")

	assert.Equal(t, []string{"a"}, base.ExcludedPackageIDs)
	assert.Equal(t, []string{"a", "b"}, next.ExcludedPackageIDs)
	assert.True(t, next.Excludes("b"))
	assert.False(t, base.Excludes("b"))
}
