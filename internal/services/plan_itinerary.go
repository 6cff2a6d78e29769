package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
)

// PlanItinerary chooses or builds an itinerary for the goals.
//
// A catalog package is used when MatchCatalog accepts one; its activities are
// then regrouped by location on a copy. Packages without activities are never
// chosen. Otherwise a new itinerary is synthesized and scored with
// domain.GeneratedPlanScore. PlanItinerary never fails and never modifies the
// catalog.
func PlanItinerary(catalog []domain.ItineraryPackage, goals domain.PlanningGoals) domain.PlanResult {
	goals = goals.Normalize()

	if c, ok := MatchCatalog(schedulable(catalog), goals); ok {
		return domain.PlanResult{
			Package:     ReorderActivities(*c.Package, goals.TargetDays),
			Score:       c.Score,
			Explanation: fmt.Sprintf("Perfect %d-day match with optimized location flow.", goals.TargetDays),
		}
	}

	pkg := SynthesizeItinerary(goals.TargetDays, goals.TargetBudget, goals.InterestTags)
	return domain.PlanResult{
		Package:     pkg,
		Score:       domain.GeneratedPlanScore,
		Explanation: SynthesisExplanation(pkg),
	}
}

// FindAlternatives lists up to n further catalog packages the matcher would
// accept once chosenID and every earlier alternative are excluded.
// Synthesized plans are never offered as alternatives.
func FindAlternatives(catalog []domain.ItineraryPackage, goals domain.PlanningGoals, chosenID string, n int) []domain.Alternative {
	goals = goals.Normalize().With(chosenID)
	catalog = schedulable(catalog)

	out := make([]domain.Alternative, 0, n)
	for len(out) < n {
		c, ok := MatchCatalog(catalog, goals)
		if !ok {
			break
		}

		out = append(out, domain.Alternative{
			ID:         c.Package.ID,
			Name:       c.Package.Name,
			TotalDays:  c.Package.TotalDays,
			TotalPrice: c.Package.TotalPrice,
			Score:      c.Score,
		})
		goals = goals.With(c.Package.ID)
	}

	return out
}

// schedulable drops packages that have no activities to lay out. The catalog
// is returned as is when every package qualifies.
func schedulable(catalog []domain.ItineraryPackage) []domain.ItineraryPackage {
	for i := range catalog {
		if len(catalog[i].Activities) > 0 {
			continue
		}

		out := make([]domain.ItineraryPackage, 0, len(catalog)-1)
		out = append(out, catalog[:i]...)
		for _, p := range catalog[i+1:] {
			if len(p.Activities) > 0 {
				out = append(out, p)
			}
		}
		return out
	}
	return catalog
}
