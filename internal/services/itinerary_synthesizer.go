package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GeneratedIDPrefix prefixes the id of every synthesized package.
const GeneratedIDPrefix = "generated-"

var generatedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("itinerary-planner-service/generated"))

type usedKey struct {
	location string
	name     string
	day      int
}

// synthesis carries the running state of one SynthesizeItinerary call.
type synthesis struct {
	targetDays int
	day        int
	used       map[usedKey]struct{}
	cursors    map[string]*[len(domain.Slots)]int
	activities []domain.Activity
	totalCost  float64
}

// SynthesizeItinerary builds a new itinerary from the compiled-in location pool.
// It always succeeds and the result has exactly targetDays days with one
// activity per time slot.
func SynthesizeItinerary(targetDays int, targetBudget float64, interests []string) domain.ItineraryPackage {
	return synthesizeFrom(defaultLocations, targetDays, targetBudget, interests)
}

func synthesizeFrom(pool []PoolLocation, targetDays int, targetBudget float64, interests []string) domain.ItineraryPackage {
	if targetDays < 1 {
		targetDays = domain.DefaultTargetDays
	}

	s := &synthesis{
		targetDays: targetDays,
		day:        1,
		used:       make(map[usedKey]struct{}, targetDays*len(domain.Slots)),
		cursors:    make(map[string]*[len(domain.Slots)]int),
		activities: make([]domain.Activity, 0, targetDays*len(domain.Slots)),
	}

	if len(pool) > 0 {
		visited := make(map[string]struct{})

		// Ceiling division: enough locations that none exceeds its dwell limit.
		locationCount := (targetDays + MaxDaysPerLocation - 1) / MaxDaysPerLocation
		remaining := targetDays
		for i := 0; i < locationCount && remaining > 0; i++ {
			loc := pool[i%len(pool)]
			days := min(MaxDaysPerLocation, remaining)
			s.fill(loc, days)
			visited[loc.Name] = struct{}{}
			remaining -= days
		}

		// Top up with fresh locations if the primary allocation fell short.
		for next := 0; s.day <= targetDays; next++ {
			loc, ok := firstUnvisited(pool, visited)
			if !ok {
				loc = pool[next%len(pool)]
			}
			s.fill(loc, min(MaxDaysPerLocation, targetDays-s.day+1))
			visited[loc.Name] = struct{}{}
		}
	}

	price := s.totalCost
	if price < targetBudget {
		// The gap is lodging and transport, not itemized as activities.
		price = targetBudget
	}

	tags := append([]string{}, interests...)
	destinations := domain.DestinationsOf(s.activities)

	return domain.ItineraryPackage{
		ID:           generatedID(targetDays, targetBudget, tags),
		Name:         fmt.Sprintf("%d-Day Optimized Tour", targetDays),
		TotalDays:    targetDays,
		TotalPrice:   price,
		Destinations: destinations,
		InterestTags: tags,
		Activities:   s.activities,
	}
}

// SynthesisExplanation describes a synthesized package to the traveler.
func SynthesisExplanation(pkg domain.ItineraryPackage) string {
	route := pkg.Destinations
	suffix := ""
	if len(route) > 3 {
		route = route[:3]
		suffix = "..."
	}
	return fmt.Sprintf(
		"Custom %d-day itinerary with optimized route through %s%s. Activities grouped by location for efficient travel.",
		pkg.TotalDays, strings.Join(route, ", "), suffix,
	)
}

// fill schedules up to days days at loc, three activities per day.
func (s *synthesis) fill(loc PoolLocation, days int) {
	cursor := s.cursor(loc.Name)

	for d := 0; d < days && s.day <= s.targetDays; d++ {
		for i, slot := range domain.Slots {
			candidates := loc.BySlot(slot)
			if len(candidates) == 0 {
				continue
			}

			pick := candidates[cursor[i]%len(candidates)]
			// Skip anything already scheduled here today; give up after one full lap.
			for retry := 0; retry < len(candidates) && s.isUsed(loc.Name, pick.Name); retry++ {
				cursor[i]++
				pick = candidates[cursor[i]%len(candidates)]
			}

			s.used[usedKey{location: loc.Name, name: pick.Name, day: s.day}] = struct{}{}
			s.activities = append(s.activities, loc.activity(pick, s.day))
			s.totalCost += pick.Cost
			cursor[i]++
		}
		s.day++
	}
}

func (s *synthesis) isUsed(location, name string) bool {
	_, ok := s.used[usedKey{location: location, name: name, day: s.day}]
	return ok
}

// cursor returns the rotating per-slot index for a location. It survives
// revisits so a reused location continues through its pool.
func (s *synthesis) cursor(location string) *[len(domain.Slots)]int {
	c, ok := s.cursors[location]
	if !ok {
		c = &[len(domain.Slots)]int{}
		s.cursors[location] = c
	}
	return c
}

func firstUnvisited(pool []PoolLocation, visited map[string]struct{}) (PoolLocation, bool) {
	for _, l := range pool {
		if _, ok := visited[l.Name]; !ok {
			return l, true
		}
	}
	return PoolLocation{}, false
}

// generatedID derives a stable id from the inputs so identical requests
// produce identical packages.
func generatedID(days int, budget float64, interests []string) string {
	key := strconv.Itoa(days) + "|" + strconv.FormatFloat(budget, 'f', -1, 64) + "|" + strings.Join(interests, ",")
	return GeneratedIDPrefix + uuid.NewSHA1(generatedNamespace, []byte(key)).String()
}
