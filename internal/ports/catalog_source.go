package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
	"time"
)

// Supplies the planner with an immutable catalog snapshot per call.
// Implementations own caching and refresh; callers must not modify the
// returned packages.
type CatalogSource interface {
	Snapshot(ctx context.Context) (domain.CatalogSnapshot, error)
}

// Optional shared storage for catalog snapshots, e.g. across service instances.
type SnapshotStore interface {
	// Return the stored snapshot for key; ok is false on a miss.
	Get(ctx context.Context, key string) (snap domain.CatalogSnapshot, ok bool, err error)
	// Store the snapshot under its key for at most ttl.
	Put(ctx context.Context, snap domain.CatalogSnapshot, ttl time.Duration) error
}
