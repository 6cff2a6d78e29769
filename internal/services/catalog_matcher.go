package services

import "itinerary-planner-service/internal/domain"

// Scoring weights used by MatchCatalog.
const (
	exactDaysScore     = 1000
	adjacentDaysScore  = 100
	withinBudgetScore  = 300
	nearBudgetScore    = 100
	interestMatchScore = 50

	// nearBudgetFactor is how far over budget a package may be and still score.
	nearBudgetFactor = 1.2

	// acceptScore is the lowest score a catalog package may have and still be used.
	acceptScore = exactDaysScore
)

// A catalog package selected by MatchCatalog, with its score.
// Package points into the caller's catalog and must not be modified.
type Candidate struct {
	Package *domain.ItineraryPackage
	Score   int
}

// ScorePackage rates one package against the goals.
// ok is false when the package is disqualified by its day count.
func ScorePackage(pkg domain.ItineraryPackage, goals domain.PlanningGoals) (score int, ok bool) {
	switch diff := pkg.TotalDays - goals.TargetDays; {
	case diff == 0:
		score += exactDaysScore
	case diff == 1 || diff == -1:
		score += adjacentDaysScore
	default:
		return 0, false
	}

	switch {
	case pkg.TotalPrice <= goals.TargetBudget:
		score += withinBudgetScore
	case pkg.TotalPrice <= goals.TargetBudget*nearBudgetFactor:
		score += nearBudgetScore
	}

	score += interestMatchScore * sharedTags(goals.InterestTags, pkg.InterestTags)

	return score, true
}

// MatchCatalog picks the best-scoring eligible package.
//
// Ties keep the package that appears first in the catalog. The match is
// accepted only when the winner has exactly the requested number of days and
// reaches the acceptance score; otherwise ok is false and the caller falls
// back to synthesis.
func MatchCatalog(catalog []domain.ItineraryPackage, goals domain.PlanningGoals) (Candidate, bool) {
	best := -1
	bestScore := -1

	for i := range catalog {
		pkg := catalog[i]
		if goals.Excludes(pkg.ID) {
			continue
		}

		score, ok := ScorePackage(pkg, goals)
		if !ok {
			continue
		}

		// Strict comparison preserves catalog order on ties.
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return Candidate{}, false
	}
	if catalog[best].TotalDays != goals.TargetDays || bestScore < acceptScore {
		return Candidate{}, false
	}

	return Candidate{Package: &catalog[best], Score: bestScore}, true
}

// sharedTags counts distinct wanted tags present in have.
func sharedTags(want, have []string) int {
	if len(want) == 0 || len(have) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(want))
	n := 0
	for _, t := range want {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
