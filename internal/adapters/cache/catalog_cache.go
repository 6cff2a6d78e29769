package cache

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultCatalogKey = "catalog:default"
	DefaultCatalogTTL = 5 * time.Minute
)

type CatalogCacheOptions struct {
	// Key names the snapshot in the shared store.
	Key string
	// TTL bounds how old a served snapshot may be.
	TTL time.Duration
	// Limit caps the number of packages loaded; zero loads all.
	Limit int
	// Store is an optional snapshot store shared between instances.
	Store  ports.SnapshotStore
	Logger *slog.Logger
	Now    func() time.Time
}

// CatalogCache serves catalog snapshots from memory and reloads them from the
// repository once they are older than the TTL. Concurrent reloads are
// coalesced into one repository call. When a reload fails the previous
// snapshot, if any, is served instead.
//
// It implements ports.CatalogSource and is safe for concurrent use.
type CatalogCache struct {
	repo   ports.CatalogRepository
	store  ports.SnapshotStore
	key    string
	ttl    time.Duration
	limit  int
	now    func() time.Time
	logger *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	current     *domain.CatalogSnapshot
	invalidated bool
	// generation counts Invalidate calls; reloads started under an older
	// generation do not publish their result.
	generation  uint64
}

func NewCatalogCache(repo ports.CatalogRepository, opts CatalogCacheOptions) *CatalogCache {
	c := &CatalogCache{
		repo:   repo,
		store:  opts.Store,
		key:    opts.Key,
		ttl:    opts.TTL,
		limit:  opts.Limit,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if c.key == "" {
		c.key = DefaultCatalogKey
	}
	if c.ttl <= 0 {
		c.ttl = DefaultCatalogTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "catalog_cache")
	return c
}

// Snapshot returns the current catalog snapshot, reloading it when stale.
func (c *CatalogCache) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	if snap, ok := c.fresh(); ok {
		return snap, nil
	}

	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	// The reload outlives any single caller that triggered it.
	flightKey := c.key + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		return c.reload(context.WithoutCancel(ctx), gen)
	})
	if err != nil {
		c.mu.RLock()
		stale := c.current
		c.mu.RUnlock()

		if stale != nil {
			obs.Logger(ctx).WarnContext(ctx, "catalog reload failed; serving stale snapshot",
				"component", "catalog_cache",
				"key", c.key,
				"fetched_at", stale.FetchedAt,
				"err", err)
			return *stale, nil
		}
		return domain.CatalogSnapshot{}, fmt.Errorf("catalog snapshot: %w", err)
	}

	return v.(domain.CatalogSnapshot), nil
}

// Invalidate forces the next Snapshot call to reload from the repository,
// bypassing the shared store.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	c.invalidated = true
	c.generation++
}

func (c *CatalogCache) fresh() (domain.CatalogSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil || !c.isFresh(*c.current) {
		return domain.CatalogSnapshot{}, false
	}
	return *c.current, true
}

func (c *CatalogCache) isFresh(snap domain.CatalogSnapshot) bool {
	return c.now().Sub(snap.FetchedAt) < c.ttl
}

func (c *CatalogCache) reload(ctx context.Context, gen uint64) (_ domain.CatalogSnapshot, err error) {
	defer obs.Time(ctx, "catalog.cache.reload")(&err)

	if c.repo == nil {
		return domain.CatalogSnapshot{}, errors.New("catalog cache: repository is nil")
	}

	c.mu.RLock()
	skipStore := c.invalidated
	c.mu.RUnlock()

	if c.store != nil && !skipStore {
		snap, ok, err := c.store.Get(ctx, c.key)
		switch {
		case err != nil:
			c.logger.WarnContext(ctx, "snapshot store read failed", "key", c.key, "err", err)
		case ok && c.isFresh(snap):
			c.set(snap, gen)
			return snap, nil
		}
	}

	pkgs, err := c.repo.ListPackages(ctx, c.limit)
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("reload catalog: %w", err)
	}

	snap := domain.CatalogSnapshot{
		Key:       c.key,
		Packages:  c.validPackages(ctx, pkgs),
		FetchedAt: c.now(),
	}

	if !c.isCurrent(gen) {
		c.logger.InfoContext(ctx, "catalog invalidated during reload; result not published", "key", c.key)
		return snap, nil
	}

	if c.store != nil {
		if err := c.store.Put(ctx, snap, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "snapshot store write failed", "key", c.key, "err", err)
		}
	}

	c.set(snap, gen)
	c.logger.InfoContext(ctx, "catalog reloaded",
		"key", c.key,
		"packages", len(snap.Packages),
		"skipped", len(pkgs)-len(snap.Packages))

	return snap, nil
}

// validPackages drops records that break package invariants.
func (c *CatalogCache) validPackages(ctx context.Context, pkgs []domain.ItineraryPackage) []domain.ItineraryPackage {
	out := make([]domain.ItineraryPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if err := p.Validate(); err != nil {
			c.logger.WarnContext(ctx, "skipping invalid catalog package", "package_id", p.ID, "err", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// isCurrent reports whether no Invalidate happened since generation gen.
func (c *CatalogCache) isCurrent(gen uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation == gen
}

// set publishes snap unless the cache was invalidated after the reload that
// produced it started.
func (c *CatalogCache) set(snap domain.CatalogSnapshot, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.current = &snap
	c.invalidated = false
}
