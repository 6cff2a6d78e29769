// Package generator builds synthetic catalog packages for development and
// load testing. Output depends only on the random source, so a fixed seed
// reproduces the same catalog.
package generator

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/services"
	"math/rand/v2"
	"slices"
	"strconv"
)

const (
	MinTripDays = 3
	MaxTripDays = 14
	MaxStayDays = 3

	MinNightlyRate = 40
	MaxNightlyRate = 400
)

// Route templates the generator walks, starting at a random point.
var templates = [][]string{
	{"Colombo", "Sigiriya", "Kandy", "Nuwara Eliya", "Ella", "Yala", "Mirissa", "Galle", "Colombo"},
	{"Colombo", "Kandy", "Ella", "Sigiriya", "Trincomalee", "Anuradhapura"},
	{"Galle", "Mirissa", "Yala", "Ella", "Kandy", "Colombo"},
	{"Colombo", "Sigiriya", "Kandy", "Colombo"},
}

// Tier classifies a nightly lodging rate.
func Tier(nightlyRate int) string {
	switch {
	case nightlyRate < 80:
		return "budget"
	case nightlyRate > 200:
		return "luxury"
	default:
		return "standard"
	}
}

// Seeded returns a deterministic random source for seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds count packages with ids firstID, firstID+1, ...
func Generate(rng *rand.Rand, count, firstID int) []domain.ItineraryPackage {
	pool := make(map[string]services.PoolLocation)
	for _, l := range services.DefaultLocations() {
		pool[l.Name] = l
	}

	out := make([]domain.ItineraryPackage, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, generateOne(rng, pool, strconv.Itoa(firstID+i)))
	}
	return out
}

func generateOne(rng *rand.Rand, pool map[string]services.PoolLocation, id string) domain.ItineraryPackage {
	route := templates[rng.IntN(len(templates))]
	tripDays := MinTripDays + rng.IntN(MaxTripDays-MinTripDays+1)
	nightly := MinNightlyRate + rng.IntN(MaxNightlyRate-MinNightlyRate+1)

	acts := make([]domain.Activity, 0, tripDays*len(domain.Slots))
	interests := map[string]struct{}{}
	var cost float64
	var first, last string

	day := 1
	for ptr := rng.IntN(max(0, len(route)-4) + 1); day <= tripDays; ptr++ {
		loc := pool[route[ptr%len(route)]]
		if first == "" {
			first = loc.Name
		}
		last = loc.Name

		stay := min(1+rng.IntN(MaxStayDays), tripDays-day+1)

		// Each stay draws without replacement from shuffled slot pools.
		var bySlot [len(domain.Slots)][]services.PoolActivity
		for s, slot := range domain.Slots {
			bySlot[s] = loc.BySlot(slot)
			rng.Shuffle(len(bySlot[s]), func(a, b int) {
				bySlot[s][a], bySlot[s][b] = bySlot[s][b], bySlot[s][a]
			})
		}

		for d := 0; d < stay; d++ {
			for s := range bySlot {
				n := len(bySlot[s])
				if n == 0 {
					continue
				}
				pick := bySlot[s][n-1]
				bySlot[s] = bySlot[s][:n-1]

				acts = append(acts, domain.Activity{
					Day:         day,
					TimeSlot:    pick.Slot,
					Name:        pick.Name,
					Location:    loc.Name,
					Cost:        pick.Cost,
					Latitude:    loc.Coordinates.Lat,
					Longitude:   loc.Coordinates.Lon,
					InterestTag: pick.InterestTag,
				})
				interests[pick.InterestTag] = struct{}{}
				cost += pick.Cost
			}
			day++
		}
	}

	tier := Tier(nightly)
	tags := make([]string, 0, len(interests)+1)
	for t := range interests {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	tags = append(tags, tier)

	return domain.ItineraryPackage{
		ID:                id,
		Name:              fmt.Sprintf("%d-Day %s %s to %s Tour", tripDays, title(tier), first, last),
		TotalDays:         tripDays,
		TotalPrice:        cost + float64(nightly*tripDays),
		Destinations:      domain.DestinationsOf(acts),
		InterestTags:      tags,
		Activities:        acts,
		AccommodationTier: tier,
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
