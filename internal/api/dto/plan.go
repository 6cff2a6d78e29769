package dto

import "itinerary-planner-service/internal/domain"

// PlanRequest carries traveler goals. Absent fields take defaults.
type PlanRequest struct {
	Days         *int     `json:"days"`
	Budget       *float64 `json:"budget"`
	Interests    []string `json:"interests"`
	ExcludedIDs  []string `json:"excluded_ids"`
	Alternatives *int     `json:"alternatives" validate:"omitempty,min=0,max=10"`
	IncludeLegs  *bool    `json:"include_legs"`
}

func (r PlanRequest) GoalsInput() domain.GoalsInput {
	return domain.GoalsInput{
		Days:        r.Days,
		Budget:      r.Budget,
		Interests:   r.Interests,
		ExcludedIDs: r.ExcludedIDs,
	}
}

type AlternativeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	TotalDays  int     `json:"total_days"`
	TotalPrice float64 `json:"total_price"`
	Score      int     `json:"score"`
}

type TravelLegResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	Day             int    `json:"day"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
}

type PlanResponse struct {
	Package              PackageResponse       `json:"package"`
	Score                int                   `json:"score"`
	Generated            bool                  `json:"generated"`
	Explanation          string                `json:"explanation"`
	Summary              string                `json:"summary"`
	Alternatives         []AlternativeResponse `json:"alternatives"`
	Legs                 []TravelLegResponse   `json:"legs"`
	TotalDistanceMeters  int                   `json:"total_distance_meters"`
	TotalDurationSeconds int                   `json:"total_duration_seconds"`
}

func NewPlanResponse(p *domain.TripPlan) PlanResponse {
	res := PlanResponse{
		Package:              NewPackageResponse(p.Result.Package),
		Score:                p.Result.Score,
		Generated:            p.Result.Generated(),
		Explanation:          p.Result.Explanation,
		Summary:              p.Summary,
		Alternatives:         make([]AlternativeResponse, 0, len(p.Alternatives)),
		Legs:                 make([]TravelLegResponse, 0, len(p.Legs)),
		TotalDistanceMeters:  p.TotalDistanceMeters,
		TotalDurationSeconds: p.TotalDurationSeconds,
	}
	for _, a := range p.Alternatives {
		res.Alternatives = append(res.Alternatives, AlternativeResponse(a))
	}
	for _, l := range p.Legs {
		res.Legs = append(res.Legs, TravelLegResponse(l))
	}
	return res
}
