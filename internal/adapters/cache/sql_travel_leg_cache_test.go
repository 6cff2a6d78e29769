package cache

import (
	"context"
	"database/sql"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/ports"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueNonEmpty(t *testing.T) {
	got := uniqueNonEmpty([]string{" Kandy", "", "Ella", "Kandy", "  "})
	assert.Equal(t, []string{"Kandy", "Ella"}, got)
}

func TestSQLTravelLegCacheNilDB(t *testing.T) {
	c := NewSQLTravelLegCache(nil, "driving-car")

	_, err := c.GetMany(context.Background(), "Kandy", []string{"Ella"})
	assert.Error(t, err)
	assert.Error(t, c.PutMany(context.Background(), "Kandy", map[string]ports.DistanceResult{"Ella": {}}))
}

func TestSQLTravelLegCacheRoundTrip(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping postgres integration test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, repositories.Migrate(ctx, db))
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM travel_leg_cache WHERE profile LIKE 'test-%'`)
	})

	car := NewSQLTravelLegCache(db, "test-car")
	foot := NewSQLTravelLegCache(db, "test-foot")

	require.NoError(t, car.PutMany(ctx, "Kandy", map[string]ports.DistanceResult{
		"Ella":     {DistanceMeters: 135000, DurationSeconds: 14400},
		"Sigiriya": {DistanceMeters: 90000, DurationSeconds: 9000},
	}))

	got, err := car.GetMany(ctx, "Kandy", []string{"Ella", "Galle", "Ella"})
	require.NoError(t, err)
	assert.Equal(t, map[string]ports.DistanceResult{
		"Ella": {DistanceMeters: 135000, DurationSeconds: 14400},
	}, got)

	// Profiles do not share entries.
	got, err = foot.GetMany(ctx, "Kandy", []string{"Ella"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
