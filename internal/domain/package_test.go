package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackage() ItineraryPackage {
	return ItineraryPackage{
		ID:           "p1",
		Name:         "2-Day Kandy Tour",
		TotalDays:    2,
		TotalPrice:   300,
		Destinations: []string{"Kandy"},
		InterestTags: []string{"culture"},
		Activities: []Activity{
			{Day: 1, TimeSlot: Morning, Name: "Temple of Tooth", Location: "Kandy", Cost: 15},
			{Day: 2, TimeSlot: Evening, Name: "Kandy Lake Walk", Location: "Kandy"},
		},
	}
}

func TestPackageCloneIsIndependent(t *testing.T) {
	orig := samplePackage()
	cp := orig.Clone()

	cp.Activities[0].Day = 2
	cp.InterestTags[0] = "beach"
	cp.Destinations = append(cp.Destinations, "Ella")

	assert.Equal(t, 1, orig.Activities[0].Day)
	assert.Equal(t, "culture", orig.InterestTags[0])
	assert.Len(t, orig.Destinations, 1)
}

func TestPackageValidate(t *testing.T) {
	require.NoError(t, samplePackage().Validate())

	bad := samplePackage()
	bad.ID = ""
	bad.Activities[1].Day = 3
	bad.Activities[0].TimeSlot = "Night"

	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackage))
	assert.Contains(t, err.Error(), "day 3 outside 1..2")
	assert.Contains(t, err.Error(), `unknown time slot "Night"`)
}

func TestPackageValidateRequiresActivities(t *testing.T) {
	p := samplePackage()
	p.Activities = nil

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackage))
	assert.Contains(t, err.Error(), "activities must be non-empty")
}

func TestPackageDays(t *testing.T) {
	p := samplePackage()
	p.Activities = append(p.Activities, Activity{Day: 1, TimeSlot: Evening, Location: "Kandy"})

	assert.Equal(t, []int{1, 2}, p.Days())
}

func TestDestinationsOfKeepsFirstAppearance(t *testing.T) {
	acts := []Activity{
		{Location: "Galle"}, {Location: "Ella"}, {Location: "Galle"}, {Location: "Kandy"},
	}
	assert.Equal(t, []string{"Galle", "Ella", "Kandy"}, DestinationsOf(acts))
}

func TestParseTimeSlot(t *testing.T) {
	s, err := ParseTimeSlot(" evening ")
	require.NoError(t, err)
	assert.Equal(t, Evening, s)
	assert.Equal(t, 2, s.Index())

	_, err = ParseTimeSlot("night")
	assert.Error(t, err)
}
