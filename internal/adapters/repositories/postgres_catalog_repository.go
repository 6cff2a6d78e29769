package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
)

// Postgres-backed implementation of the CatalogRepository port.
// List-valued fields are stored as JSONB documents.
type PostgresCatalogRepository struct{ DB *sql.DB }

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

const selectPackageColumns = `
	SELECT
		id,
		name,
		total_days,
		total_price,
		destinations,
		interest_tags,
		activities,
		accommodation_tier
	FROM catalog_packages
`

type rowScanner interface {
	Scan(dest ...any) error
}

// Return packages in id order. limit <= 0 returns every package.
func (r *PostgresCatalogRepository) ListPackages(
	ctx context.Context,
	limit int,
) (_ []domain.ItineraryPackage, err error) {
	defer obs.Time(ctx, "catalog.repository.ListPackages")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres catalog repository: DB is nil")
	}

	query := selectPackageColumns + `ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages: query catalog_packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]domain.ItineraryPackage, 0, 64)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("list packages: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}

// Return one package by id.
func (r *PostgresCatalogRepository) GetPackage(
	ctx context.Context,
	id string,
) (_ domain.ItineraryPackage, err error) {
	defer obs.Time(ctx, "catalog.repository.GetPackage")(&err)

	if r.DB == nil {
		return domain.ItineraryPackage{}, errors.New("postgres catalog repository: DB is nil")
	}

	row := r.DB.QueryRowContext(ctx, selectPackageColumns+`WHERE id = $1`, id)
	pkg, err := scanPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ItineraryPackage{}, fmt.Errorf("get package id=%q: %w", id, domain.ErrPackageNotFound)
	}
	if err != nil {
		return domain.ItineraryPackage{}, fmt.Errorf("get package id=%q: %w", id, err)
	}

	return pkg, nil
}

// Insert or replace packages in a single transaction.
func (r *PostgresCatalogRepository) UpsertPackages(
	ctx context.Context,
	pkgs []domain.ItineraryPackage,
) (err error) {
	defer obs.Time(ctx, "catalog.repository.UpsertPackages")(&err)

	if r.DB == nil {
		return errors.New("postgres catalog repository: DB is nil")
	}

	if len(pkgs) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert packages: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO catalog_packages (
		id,
		name,
		total_days,
		total_price,
		destinations,
		interest_tags,
		activities,
		accommodation_tier
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		total_days = EXCLUDED.total_days,
		total_price = EXCLUDED.total_price,
		destinations = EXCLUDED.destinations,
		interest_tags = EXCLUDED.interest_tags,
		activities = EXCLUDED.activities,
		accommodation_tier = EXCLUDED.accommodation_tier,
		updated_at = NOW();
	`)
	if err != nil {
		return fmt.Errorf("upsert packages: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pkgs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("upsert packages: %w", err)
		}

		destinations, tags, activities, err := encodeLists(p)
		if err != nil {
			return fmt.Errorf("upsert packages id=%q: %w", p.ID, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			p.ID,
			p.Name,
			p.TotalDays,
			p.TotalPrice,
			destinations,
			tags,
			activities,
			p.AccommodationTier,
		); err != nil {
			return fmt.Errorf("upsert packages id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert packages: commit tx: %w", err)
	}

	return nil
}

func scanPackage(row rowScanner) (domain.ItineraryPackage, error) {
	var pkg domain.ItineraryPackage
	var destinations, tags, activities []byte

	if err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.TotalDays,
		&pkg.TotalPrice,
		&destinations,
		&tags,
		&activities,
		&pkg.AccommodationTier,
	); err != nil {
		return domain.ItineraryPackage{}, fmt.Errorf("scan row: %w", err)
	}

	if err := json.Unmarshal(destinations, &pkg.Destinations); err != nil {
		return domain.ItineraryPackage{}, fmt.Errorf("decode destinations for id=%q: %w", pkg.ID, err)
	}
	if err := json.Unmarshal(tags, &pkg.InterestTags); err != nil {
		return domain.ItineraryPackage{}, fmt.Errorf("decode interest_tags for id=%q: %w", pkg.ID, err)
	}
	if err := json.Unmarshal(activities, &pkg.Activities); err != nil {
		return domain.ItineraryPackage{}, fmt.Errorf("decode activities for id=%q: %w", pkg.ID, err)
	}

	return pkg, nil
}

// encodeLists renders the JSONB columns as text parameters.
func encodeLists(p domain.ItineraryPackage) (destinations, tags, activities string, err error) {
	d, err := json.Marshal(nonNil(p.Destinations))
	if err != nil {
		return "", "", "", fmt.Errorf("encode destinations: %w", err)
	}
	t, err := json.Marshal(nonNil(p.InterestTags))
	if err != nil {
		return "", "", "", fmt.Errorf("encode interest_tags: %w", err)
	}
	a, err := json.Marshal(nonNil(p.Activities))
	if err != nil {
		return "", "", "", fmt.Errorf("encode activities: %w", err)
	}
	return string(d), string(t), string(a), nil
}

// nonNil keeps JSONB columns as arrays rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
