package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
	"strings"
)

// SQLTravelLegCache is a Postgres-backed cache of origin->destination travel
// results, partitioned by routing profile.
type SQLTravelLegCache struct {
	DB      *sql.DB
	Profile string
}

func NewSQLTravelLegCache(db *sql.DB, profile string) *SQLTravelLegCache {
	return &SQLTravelLegCache{DB: db, Profile: profile}
}

// Fetch cached legs for one origin and multiple destinations.
// Destinations without a cached leg are absent from the result.
func (s *SQLTravelLegCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "travel_leg.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("travel leg cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" {
		return nil, errors.New("get travel leg cache: origin must not be empty")
	}

	uniq := uniqueNonEmpty(destinations)
	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	q := `
	SELECT destination, distance_meters, duration_seconds
	FROM travel_leg_cache
	WHERE profile = $1
		AND origin = $2
		AND destination = ANY($3::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, s.Profile, origin, uniq)
	if err != nil {
		return nil, fmt.Errorf("get travel leg cache: query travel_leg_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.DistanceResult, len(uniq))
	for rows.Next() {
		var dest string
		var r ports.DistanceResult
		if err := rows.Scan(&dest, &r.DistanceMeters, &r.DurationSeconds); err != nil {
			return nil, fmt.Errorf("get travel leg cache: scan rows: %w", err)
		}
		out[dest] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get travel leg cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many travel results for a single origin.
func (s *SQLTravelLegCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) (err error) {
	defer obs.Time(ctx, "travel_leg.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("travel leg cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" {
		return errors.New("insert travel leg cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert travel leg cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_leg_cache (profile, origin, destination, distance_meters, duration_seconds)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (profile, origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		updated_at = NOW();
	`)
	if err != nil {
		return fmt.Errorf("insert travel leg cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("insert travel leg cache: empty destination key")
		}

		if _, err := stmt.ExecContext(ctx, s.Profile, origin, dest, r.DistanceMeters, r.DurationSeconds); err != nil {
			return fmt.Errorf("insert travel leg cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert travel leg cache commit: %w", err)
	}

	return nil
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
