package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultTargetDays   = 7
	DefaultTargetBudget = 1500.0

	// MaxTargetDays bounds requests accepted at the boundary.
	MaxTargetDays = 60
)

var validate = validator.New()

// Represents what a traveler wants from an itinerary.
// InterestTags and ExcludedPackageIDs behave as sets: duplicates are dropped
// and order carries no meaning beyond determinism.
type PlanningGoals struct {
	TargetDays         int
	TargetBudget       float64
	InterestTags       []string
	ExcludedPackageIDs []string
}

func DefaultGoals() PlanningGoals {
	return PlanningGoals{
		TargetDays:         DefaultTargetDays,
		TargetBudget:       DefaultTargetBudget,
		InterestTags:       []string{},
		ExcludedPackageIDs: []string{},
	}
}

// Normalize substitutes defaults for out-of-range fields and deduplicates the
// tag and id sets. It never fails.
func (g PlanningGoals) Normalize() PlanningGoals {
	out := PlanningGoals{
		TargetDays:         g.TargetDays,
		TargetBudget:       g.TargetBudget,
		InterestTags:       uniqueTrimmed(g.InterestTags),
		ExcludedPackageIDs: uniqueTrimmed(g.ExcludedPackageIDs),
	}

	if out.TargetDays < 1 {
		out.TargetDays = DefaultTargetDays
	}
	if out.TargetBudget < 0 || math.IsNaN(out.TargetBudget) || math.IsInf(out.TargetBudget, 0) {
		out.TargetBudget = DefaultTargetBudget
	}

	return out
}

// Excludes reports whether the package id was ruled out by the caller.
func (g PlanningGoals) Excludes(id string) bool {
	for _, x := range g.ExcludedPackageIDs {
		if x == id {
			return true
		}
	}
	return false
}

// With returns a copy of the goals that also excludes the given package ids.
func (g PlanningGoals) With(excluded ...string) PlanningGoals {
	out := g
	out.ExcludedPackageIDs = uniqueTrimmed(append(append([]string{}, g.ExcludedPackageIDs...), excluded...))
	return out
}

// Boundary representation of planning goals.
// Absent fields are nil and fall back to defaults; present fields must be valid.
type GoalsInput struct {
	Days        *int     `validate:"omitempty,min=1,max=60"`
	Budget      *float64 `validate:"omitempty,min=0"`
	Interests   []string `validate:"omitempty,max=32,dive,required,max=64"`
	ExcludedIDs []string `validate:"omitempty,max=1000,dive,required,max=128"`
}

// ParseGoals validates boundary input and builds PlanningGoals from it.
// Validation failures wrap ErrInvalidGoals.
func ParseGoals(in GoalsInput) (PlanningGoals, error) {
	if err := validate.Struct(in); err != nil {
		return PlanningGoals{}, fmt.Errorf("%w: %w", ErrInvalidGoals, err)
	}

	g := DefaultGoals()
	if in.Days != nil {
		g.TargetDays = *in.Days
	}
	if in.Budget != nil {
		if math.IsNaN(*in.Budget) || math.IsInf(*in.Budget, 0) {
			return PlanningGoals{}, fmt.Errorf("%w: budget must be a finite number", ErrInvalidGoals)
		}
		g.TargetBudget = *in.Budget
	}
	if in.Interests != nil {
		g.InterestTags = in.Interests
	}
	if in.ExcludedIDs != nil {
		g.ExcludedPackageIDs = in.ExcludedIDs
	}

	return g.Normalize(), nil
}

func uniqueTrimmed(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
