package dto

import "itinerary-planner-service/internal/domain"

type ActivityResponse struct {
	Day         int     `json:"day"`
	TimeSlot    string  `json:"time_slot"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	InterestTag string  `json:"interest_tag,omitempty"`
}

type PackageSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	TotalDays         int      `json:"total_days"`
	TotalPrice        float64  `json:"total_price"`
	Destinations      []string `json:"destinations"`
	InterestTags      []string `json:"interest_tags"`
	AccommodationTier string   `json:"accommodation_tier,omitempty"`
	ActivityCount     int      `json:"activity_count"`
}

type PackageResponse struct {
	PackageSummary
	Activities []ActivityResponse `json:"activities"`
}

type ListPackagesResponse struct {
	Packages  []PackageSummary `json:"packages"`
	Total     int              `json:"total"`
	FetchedAt string           `json:"fetched_at"`
}

func NewPackageSummary(p domain.ItineraryPackage) PackageSummary {
	return PackageSummary{
		ID:                p.ID,
		Name:              p.Name,
		TotalDays:         p.TotalDays,
		TotalPrice:        p.TotalPrice,
		Destinations:      orEmpty(p.Destinations),
		InterestTags:      orEmpty(p.InterestTags),
		AccommodationTier: p.AccommodationTier,
		ActivityCount:     len(p.Activities),
	}
}

func NewPackageResponse(p domain.ItineraryPackage) PackageResponse {
	acts := make([]ActivityResponse, 0, len(p.Activities))
	for _, a := range p.Activities {
		acts = append(acts, ActivityResponse{
			Day:         a.Day,
			TimeSlot:    string(a.TimeSlot),
			Name:        a.Name,
			Location:    a.Location,
			Cost:        a.Cost,
			Latitude:    a.Latitude,
			Longitude:   a.Longitude,
			InterestTag: a.InterestTag,
		})
	}
	return PackageResponse{PackageSummary: NewPackageSummary(p), Activities: acts}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
