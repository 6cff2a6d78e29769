package repositories

import (
	"bytes"
	"errors"
	"itinerary-planner-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportedCatalog = `[
  {
    "id": 1,
    "name": "2-Day Budget Kandy to Ella Tour",
    "days": 2,
    "price": 245,
    "destinations": ["Ella", "Kandy"],
    "interests": ["culture", "hiking", "budget"],
    "activities": [
      {"day": 1, "time": "Morning", "name": "Botanical Gardens", "city": "Kandy", "cost": 15, "interest": "nature", "lat": 7.29, "lon": 80.633},
      {"day": 1, "time": "afternoon", "name": "Temple of the Tooth", "city": "Kandy", "cost": 15, "interest": "culture", "lat": 7.29, "lon": 80.633},
      {"day": 2, "time": "Morning", "name": "Ella Rock Hike", "city": "Ella", "cost": 0, "interest": "hiking", "lat": 6.866, "lon": 81.046}
    ],
    "hotel_level": "Budget"
  },
  {
    "id": "custom-7",
    "name": "Colombo Stopover",
    "days": 1,
    "price": 0,
    "destinations": ["Colombo"],
    "interests": [],
    "activities": [
      {"day": 1, "time": "Evening", "name": "Galle Face Walk", "city": "Colombo", "cost": 0, "lat": 6.927, "lon": 79.861}
    ],
    "hotel_level": ""
  }
]`

func TestDecodeSeedConvertsExportFormat(t *testing.T) {
	pkgs, err := DecodeSeed(strings.NewReader(exportedCatalog))
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	first := pkgs[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, 2, first.TotalDays)
	assert.Equal(t, 245.0, first.TotalPrice)
	assert.Equal(t, "budget", first.AccommodationTier)
	// Visit order wins over the exported set order.
	assert.Equal(t, []string{"Kandy", "Ella"}, first.Destinations)
	require.Len(t, first.Activities, 3)
	assert.Equal(t, domain.Afternoon, first.Activities[1].TimeSlot)
	assert.Equal(t, "Kandy", first.Activities[1].Location)
	assert.Equal(t, 80.633, first.Activities[1].Longitude)

	second := pkgs[1]
	assert.Equal(t, "custom-7", second.ID)
	assert.Equal(t, []string{"Colombo"}, second.Destinations)
}

func TestDecodeSeedRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "day outside package",
			in:   `[{"id": 1, "days": 1, "price": 10, "activities": [{"day": 2, "time": "Morning", "city": "Galle"}]}]`,
			want: domain.ErrInvalidPackage,
		},
		{
			name: "no activities",
			in:   `[{"id": 1, "days": 2, "price": 10, "activities": []}]`,
			want: domain.ErrInvalidPackage,
		},
		{
			name: "missing id",
			in:   `[{"days": 1, "price": 10}]`,
			want: domain.ErrInvalidPackage,
		},
		{
			name: "unknown slot",
			in:   `[{"id": 1, "days": 1, "price": 10, "activities": [{"day": 1, "time": "Night", "city": "Galle"}]}]`,
		},
		{
			name: "duplicate id",
			in: `[
				{"id": 1, "days": 1, "price": 10, "activities": [{"day": 1, "time": "Morning", "city": "Galle"}]},
				{"id": "1", "days": 1, "price": 20, "activities": [{"day": 1, "time": "Evening", "city": "Ella"}]}
			]`,
		},
		{
			name: "not json",
			in:   `{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed(strings.NewReader(tt.in))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeSeedIsReadableByDecodeSeed(t *testing.T) {
	pkgs, err := DecodeSeed(strings.NewReader(exportedCatalog))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSeed(&buf, pkgs))
	assert.Contains(t, buf.String(), `"id": 1,`)
	assert.Contains(t, buf.String(), `"id": "custom-7"`)

	again, err := DecodeSeed(&buf)
	require.NoError(t, err)
	assert.Equal(t, pkgs, again)
}
