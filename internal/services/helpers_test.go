package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
)

// dayPlan builds a package that spends consecutive full days at each stop.
func dayPlan(id string, price float64, tags []string, stops ...stop) domain.ItineraryPackage {
	pkg := domain.ItineraryPackage{ID: id, Name: "Tour " + id, TotalPrice: price, InterestTags: tags}

	day := 1
	for _, s := range stops {
		for d := 0; d < s.days; d++ {
			for _, slot := range domain.Slots {
				pkg.Activities = append(pkg.Activities, domain.Activity{
					Day:      day,
					TimeSlot: slot,
					Name:     fmt.Sprintf("%s %s %d", s.location, slot, d+1),
					Location: s.location,
					Cost:     10,
				})
			}
			day++
		}
	}

	pkg.TotalDays = day - 1
	pkg.Destinations = domain.DestinationsOf(pkg.Activities)
	return pkg
}

type stop struct {
	location string
	days     int
}

func activitiesPerDay(acts []domain.Activity) map[int][]domain.Activity {
	out := make(map[int][]domain.Activity)
	for _, a := range acts {
		out[a.Day] = append(out[a.Day], a)
	}
	return out
}

func dayRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
