package services

import (
	"itinerary-planner-service/internal/domain"
	"slices"
)

type locationGroup struct {
	name    string
	buckets [len(domain.Slots)][]domain.Activity
}

// days is the number of itinerary days the location needs: one per entry of
// its largest time-slot bucket.
func (g *locationGroup) days() int {
	n := 0
	for _, b := range g.buckets {
		n = max(n, len(b))
	}
	return n
}

// ReorderActivities regroups a package's activities by location so the
// traveler does not move back and forth between places.
//
// Locations keep the order in which they first appear in the package. Each
// local day takes at most one Morning, Afternoon and Evening activity, and
// global day numbers are reassigned from 1. When the package runs out of
// activities before targetDays, the final location's first activity of each
// slot is repeated for the remaining days. The input package is not modified.
func ReorderActivities(pkg domain.ItineraryPackage, targetDays int) domain.ItineraryPackage {
	out := pkg.Clone()
	out.TotalDays = targetDays

	groups := groupByLocation(pkg.Activities)
	if len(groups) == 0 || targetDays < 1 {
		out.Activities = []domain.Activity{}
		out.Destinations = []string{}
		return out
	}

	reordered := make([]domain.Activity, 0, len(pkg.Activities))
	day := 1

	for _, g := range groups {
		for offset := 0; offset < g.days(); offset++ {
			if day > targetDays {
				break
			}
			for _, bucket := range g.buckets {
				if offset < len(bucket) {
					act := bucket[offset]
					act.Day = day
					reordered = append(reordered, act)
				}
			}
			day++
		}
		if day > targetDays {
			break
		}
	}

	// Pad short packages by repeating the last location's opening activities.
	var last *locationGroup
	for i := len(groups) - 1; i >= 0 && last == nil; i-- {
		if groups[i].days() > 0 {
			last = groups[i]
		}
	}
	for ; last != nil && day <= targetDays; day++ {
		for _, bucket := range last.buckets {
			if len(bucket) > 0 {
				act := bucket[0]
				act.Day = day
				reordered = append(reordered, act)
			}
		}
	}

	reordered = slices.DeleteFunc(reordered, func(a domain.Activity) bool {
		return a.Day > targetDays
	})

	out.Activities = reordered
	out.Destinations = domain.DestinationsOf(reordered)
	return out
}

// groupByLocation splits activities per location, in first-appearance order,
// and then per time slot. Order within a bucket follows the input.
func groupByLocation(activities []domain.Activity) []*locationGroup {
	index := make(map[string]*locationGroup)
	groups := make([]*locationGroup, 0)

	for _, a := range activities {
		g, ok := index[a.Location]
		if !ok {
			g = &locationGroup{name: a.Location}
			index[a.Location] = g
			groups = append(groups, g)
		}

		slot := a.TimeSlot.Index()
		if slot < 0 {
			continue
		}
		g.buckets[slot] = append(g.buckets[slot], a)
	}

	return groups
}
