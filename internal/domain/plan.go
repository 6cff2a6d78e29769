package domain

import "time"

// GeneratedPlanScore marks a PlanResult built by the synthesizer rather than
// taken from the catalog.
const GeneratedPlanScore = 999

// Represents the outcome of a single planning call.
// A PlanResult is created fresh per call and is not mutated after it is returned.
type PlanResult struct {
	Package     ItineraryPackage
	Score       int
	Explanation string
}

// Generated reports whether the package was synthesized.
func (r PlanResult) Generated() bool { return r.Score == GeneratedPlanScore }

// An immutable view of the catalog handed to the planner for one call.
type CatalogSnapshot struct {
	Key       string             `json:"key"`
	Packages  []ItineraryPackage `json:"packages"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// A catalog package that also satisfies the goals once the chosen one is excluded.
type Alternative struct {
	ID         string
	Name       string
	TotalDays  int
	TotalPrice float64
	Score      int
}

// Represents travel between two consecutive destinations of an itinerary.
// Day is the itinerary day on which the traveler arrives at To.
type TravelLeg struct {
	From            string
	To              string
	Day             int
	DistanceMeters  int
	DurationSeconds int
}

// Represents the planning result together with caller-side enrichment.
// Enrichment never changes the day/slot structure of Result.Package. Summary
// explains the choice in terms of the traveler's goals.
type TripPlan struct {
	Result               PlanResult
	Summary              string
	Alternatives         []Alternative
	Legs                 []TravelLeg
	TotalDistanceMeters  int
	TotalDurationSeconds int
}
