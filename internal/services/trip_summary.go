package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
	"strconv"
	"strings"
)

const (
	// summarySavingsFloor is the smallest saving worth quoting as an amount.
	summarySavingsFloor = 100.0
	summaryHighScore    = 800
	summaryMaxInterests = 3
	summaryMaxPlaces    = 4
)

// SummarizePlan writes a traveler-facing sentence on why the planned package
// suits the goals: budget fit, day match, shared interests and the places it
// visits. It reads the result and goals only.
func SummarizePlan(result domain.PlanResult, goals domain.PlanningGoals) string {
	pkg := result.Package
	var reasons []string

	if pkg.TotalPrice <= goals.TargetBudget {
		if savings := goals.TargetBudget - pkg.TotalPrice; savings > summarySavingsFloor {
			reasons = append(reasons, "saves you $"+money(savings))
		} else {
			reasons = append(reasons, "fits your budget perfectly")
		}
	}

	if pkg.TotalDays == goals.TargetDays {
		reasons = append(reasons, fmt.Sprintf("matches your %d-day timeframe exactly", goals.TargetDays))
	}

	var shared []string
	for _, tag := range goals.InterestTags {
		if len(shared) == summaryMaxInterests {
			break
		}
		if pkg.HasTag(tag) {
			shared = append(shared, tag)
		}
	}
	if len(shared) > 0 {
		reasons = append(reasons, "includes "+strings.Join(shared, ", "))
	}

	if result.Score > summaryHighScore {
		reasons = append(reasons, "ranks highly for your goals")
	}

	var b strings.Builder
	if len(reasons) > 0 {
		fmt.Fprintf(&b, "Selected because it %s. ", strings.Join(reasons, ", "))
	} else {
		fmt.Fprintf(&b, "Great %d-day tour for $%s. ", pkg.TotalDays, money(pkg.TotalPrice))
	}

	if places := pkg.Destinations; len(places) > 0 {
		shown := places[:min(len(places), summaryMaxPlaces)]
		b.WriteString("You'll explore " + strings.Join(shown, ", "))
		if extra := len(places) - len(shown); extra > 0 {
			fmt.Fprintf(&b, " plus %d more amazing places", extra)
		}
		b.WriteString("!")
	}

	return strings.TrimSpace(b.String())
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
