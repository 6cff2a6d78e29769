package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Represents a complete multi-day travel plan.
// Activities are ordered; Destinations lists each location once, in the
// order it first appears across Activities. Once processed by the planner
// the days used by Activities are exactly 1..TotalDays.
type ItineraryPackage struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	TotalDays         int        `json:"total_days"`
	TotalPrice        float64    `json:"total_price"`
	Destinations      []string   `json:"destinations"`
	InterestTags      []string   `json:"interest_tags"`
	Activities        []Activity `json:"activities"`
	AccommodationTier string     `json:"accommodation_tier,omitempty"`
}

// Clone returns a deep copy so callers can rearrange activities without
// touching the catalog's record.
func (p ItineraryPackage) Clone() ItineraryPackage {
	out := p
	out.Destinations = slices.Clone(p.Destinations)
	out.InterestTags = slices.Clone(p.InterestTags)
	out.Activities = slices.Clone(p.Activities)
	return out
}

// HasTag reports whether the package carries the given interest tag.
func (p ItineraryPackage) HasTag(tag string) bool {
	return slices.Contains(p.InterestTags, tag)
}

// Days returns the distinct day numbers used by the activities, ascending.
func (p ItineraryPackage) Days() []int {
	seen := make(map[int]struct{}, p.TotalDays)
	days := make([]int, 0, p.TotalDays)
	for _, a := range p.Activities {
		if _, ok := seen[a.Day]; ok {
			continue
		}
		seen[a.Day] = struct{}{}
		days = append(days, a.Day)
	}
	slices.Sort(days)
	return days
}

// Validate checks the fields the planner relies on.
// It is applied at the catalog boundary; the planner itself assumes valid input.
func (p ItineraryPackage) Validate() error {
	var errs []error

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, errors.New("id must be non-empty"))
	}
	if p.TotalDays < 1 {
		errs = append(errs, fmt.Errorf("total_days must be positive, got %d", p.TotalDays))
	}
	if p.TotalPrice < 0 || math.IsNaN(p.TotalPrice) || math.IsInf(p.TotalPrice, 0) {
		errs = append(errs, fmt.Errorf("total_price must be a non-negative number, got %v", p.TotalPrice))
	}

	if len(p.Activities) == 0 {
		errs = append(errs, errors.New("activities must be non-empty"))
	}

	for i, a := range p.Activities {
		if a.Day < 1 || a.Day > p.TotalDays {
			errs = append(errs, fmt.Errorf("activity %d: day %d outside 1..%d", i, a.Day, p.TotalDays))
		}
		if !a.TimeSlot.Valid() {
			errs = append(errs, fmt.Errorf("activity %d: unknown time slot %q", i, a.TimeSlot))
		}
		if strings.TrimSpace(a.Location) == "" {
			errs = append(errs, fmt.Errorf("activity %d: location must be non-empty", i))
		}
		if a.Cost < 0 {
			errs = append(errs, fmt.Errorf("activity %d: cost must be non-negative", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidPackage, p.ID, errors.Join(errs...))
	}
	return nil
}

// DestinationsOf lists activity locations in first-appearance order.
func DestinationsOf(activities []Activity) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range activities {
		if _, ok := seen[a.Location]; ok {
			continue
		}
		seen[a.Location] = struct{}{}
		out = append(out, a.Location)
	}
	return out
}
