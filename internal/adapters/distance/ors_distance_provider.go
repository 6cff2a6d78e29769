package distance

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultORSBaseURL = "https://api.openrouteservice.org"
	DefaultORSProfile = "driving-car"
)

type ORSOptions struct {
	APIKey  string
	BaseURL string
	Profile string
	// Cache is optional; when set, results are read from and written to it.
	Cache      ports.TravelLegCache
	HTTPClient *http.Client
	Retry      RetryPolicy
}

// ORSDistanceProvider implements DistanceMatrixProvider using the
// OpenRouteService matrix API.
//
// Locations carry their own coordinates, so no geocoding is needed. Results
// are cached by location name; one matrix row is requested per origin for all
// cache misses. The provider is safe for concurrent use.
type ORSDistanceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	retry   RetryPolicy
	cache   ports.TravelLegCache
}

func NewORSDistanceProvider(opts ORSOptions) (*ORSDistanceProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSDistanceProvider{
		session: opts.HTTPClient,
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		profile: opts.Profile,
		retry:   opts.Retry,
		cache:   opts.Cache,
	}
	if provider.session == nil {
		provider.session = &http.Client{Timeout: 10 * time.Second}
	}
	if provider.baseURL == "" {
		provider.baseURL = DefaultORSBaseURL
	}
	if provider.profile == "" {
		provider.profile = DefaultORSProfile
	}
	if provider.retry.MaxAttempts <= 0 {
		provider.retry = DefaultRetryPolicy()
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Delegate to batched path to reuse caching and matrix logic.
func (o *ORSDistanceProvider) GetDistance(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
) (ports.DistanceResult, error) {
	dest := normalize(destination.Name)
	if dest == "" {
		return ports.DistanceResult{}, errors.New("get ORS distance: destination must be named")
	}

	results, err := o.GetDistances(ctx, origin, []domain.Location{destination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance %q -> %q: %w", origin.Name, dest, err)
	}

	result, ok := results[dest]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %q -> %q", origin.Name, dest)
	}

	return result, nil
}

// Compute travel from a single origin to many destinations, keyed by
// normalized destination name. A destination named like the origin has a
// zero result.
func (o *ORSDistanceProvider) GetDistances(
	ctx context.Context,
	origin domain.Location,
	destinations []domain.Location,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.GetDistances")(&err)

	originName := normalize(origin.Name)
	if originName == "" {
		return nil, errors.New("origin must be named")
	}

	out := make(map[string]ports.DistanceResult, len(destinations))

	byName := make(map[string]domain.Location, len(destinations))
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		name := normalize(d.Name)
		if name == "" {
			continue
		}
		if name == originName {
			out[name] = ports.DistanceResult{}
			continue
		}
		if _, ok := byName[name]; ok {
			continue
		}
		byName[name] = d
		names = append(names, name)
	}

	if len(names) == 0 {
		return out, nil
	}

	// Check the persistent cache before issuing external API calls.
	hits := map[string]ports.DistanceResult{}
	if o.cache != nil {
		hits, err = o.cache.GetMany(ctx, originName, names)
		if err != nil {
			return nil, fmt.Errorf("ORS get travel leg cache: %w", err)
		}
	}

	misses := make([]legTarget, 0, len(names))
	for _, n := range names {
		if r, ok := hits[n]; ok {
			out[n] = r
			continue
		}
		misses = append(misses, legTarget{name: n, coords: byName[n].Coordinates})
	}

	if len(misses) == 0 {
		return out, nil
	}

	// Every cache miss goes into one origin row.
	fetched, err := o.fetchLegs(ctx, origin.Coordinates, misses)
	if err != nil {
		return nil, fmt.Errorf("ORS travel legs from %q: %w", originName, err)
	}

	if o.cache != nil {
		if err := o.cache.PutMany(ctx, originName, fetched); err != nil {
			obs.Logger(ctx).WarnContext(ctx, "travel leg cache write failed", "origin", originName, "err", err)
		}
	}

	for k, v := range fetched {
		out[k] = v
	}

	return out, nil
}
