package domain

import (
	"fmt"
	"strings"
)

// TimeSlot is the part of a day an activity is scheduled in.
type TimeSlot string

const (
	Morning   TimeSlot = "Morning"
	Afternoon TimeSlot = "Afternoon"
	Evening   TimeSlot = "Evening"
)

// Slots lists time slots in the order they occur within a day.
var Slots = [...]TimeSlot{Morning, Afternoon, Evening}

func (s TimeSlot) Valid() bool {
	switch s {
	case Morning, Afternoon, Evening:
		return true
	}
	return false
}

// Index returns the position of the slot within a day, or -1 if unknown.
func (s TimeSlot) Index() int {
	for i, slot := range Slots {
		if slot == s {
			return i
		}
	}
	return -1
}

// ParseTimeSlot accepts slot names case-insensitively.
func ParseTimeSlot(s string) (TimeSlot, error) {
	for _, slot := range Slots {
		if strings.EqualFold(strings.TrimSpace(s), string(slot)) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("parse time slot: unknown slot %q", s)
}

// Represents a single scheduled event in an itinerary.
// An Activity belongs to exactly one day and one time slot, and takes place
// at a named location.
type Activity struct {
	Day         int      `json:"day"`
	TimeSlot    TimeSlot `json:"time_slot"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Cost        float64  `json:"cost"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	InterestTag string   `json:"interest_tag,omitempty"`
}

func (a Activity) Coordinates() Coordinates {
	return Coordinates{Lon: a.Longitude, Lat: a.Latitude}
}
