package distance

import (
	"context"
	"encoding/json"
	"errors"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLegCache struct {
	mu   sync.Mutex
	m    map[string]ports.DistanceResult
	puts int
}

func newMemoryLegCache() *memoryLegCache {
	return &memoryLegCache{m: map[string]ports.DistanceResult{}}
}

func (c *memoryLegCache) GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.DistanceResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := map[string]ports.DistanceResult{}
	for _, d := range destinations {
		if r, ok := c.m[origin+"|"+d]; ok {
			out[d] = r
		}
	}
	return out, nil
}

func (c *memoryLegCache) PutMany(ctx context.Context, origin string, results map[string]ports.DistanceResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	for d, r := range results {
		c.m[origin+"|"+d] = r
	}
	return nil
}

// matrixServer answers matrix requests with distance = 1000*index and
// duration = 60*index for each destination, after failing the first
// failFirst requests with status failCode.
func matrixServer(t *testing.T, failFirst int, failCode int) (*httptest.Server, *atomic.Int32, chan matrixRequest) {
	t.Helper()

	var calls atomic.Int32
	reqs := make(chan matrixRequest, 16)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		assert.Equal(t, "/v2/matrix/driving-car", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		if int(n) <= failFirst {
			w.WriteHeader(failCode)
			_, _ = w.Write([]byte(`{"error":"busy"}`))
			return
		}

		var req matrixRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		reqs <- req

		dist := make([]*float64, len(req.Destinations))
		dur := make([]*float64, len(req.Destinations))
		for i, idx := range req.Destinations {
			d := float64(idx) * 1000.4
			s := float64(idx) * 60
			dist[i], dur[i] = &d, &s
		}
		_ = json.NewEncoder(w).Encode(matrixResponse{
			Distances: [][]*float64{dist},
			Durations: [][]*float64{dur},
		})
	}))
	t.Cleanup(srv.Close)

	return srv, &calls, reqs
}

func newTestORS(t *testing.T, baseURL string, c ports.TravelLegCache) *ORSDistanceProvider {
	t.Helper()

	p, err := NewORSDistanceProvider(ORSOptions{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Cache:   c,
		Retry:   RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond},
	})
	require.NoError(t, err)
	return p
}

func TestNewORSDistanceProviderRequiresKey(t *testing.T) {
	_, err := NewORSDistanceProvider(ORSOptions{})
	assert.Error(t, err)
}

func TestORSGetDistancesFetchesOneRowAndCaches(t *testing.T) {
	srv, calls, reqs := matrixServer(t, 0, 0)
	legCache := newMemoryLegCache()
	p := newTestORS(t, srv.URL, legCache)

	origin := loc("Kandy", 7.290, 80.633)
	dests := []domain.Location{
		loc("Ella", 6.866, 81.046),
		loc("  Nuwara   Eliya ", 6.949, 80.789),
		loc("Ella", 6.866, 81.046),
		loc("Kandy", 7.290, 80.633),
	}

	out, err := p.GetDistances(context.Background(), origin, dests)
	require.NoError(t, err)

	assert.Equal(t, ports.DistanceResult{DistanceMeters: 1000, DurationSeconds: 60}, out["Ella"])
	assert.Equal(t, ports.DistanceResult{DistanceMeters: 2001, DurationSeconds: 120}, out["Nuwara Eliya"])
	assert.Equal(t, ports.DistanceResult{}, out["Kandy"])
	assert.EqualValues(t, 1, calls.Load())

	req := <-reqs
	assert.Equal(t, []float64{80.633, 7.290}, req.Locations[0])
	assert.Equal(t, []int{1, 2}, req.Destinations)
	assert.Equal(t, []int{0}, req.Sources)

	// Second lookup is served from the cache.
	again, err := p.GetDistance(context.Background(), origin, loc("Ella", 6.866, 81.046))
	require.NoError(t, err)
	assert.Equal(t, 1000, again.DistanceMeters)
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, 1, legCache.puts)
}

func TestORSRetriesTransientFailures(t *testing.T) {
	srv, calls, _ := matrixServer(t, 2, http.StatusServiceUnavailable)
	p := newTestORS(t, srv.URL, nil)

	r, err := p.GetDistance(context.Background(), loc("Kandy", 7.290, 80.633), loc("Ella", 6.866, 81.046))
	require.NoError(t, err)
	assert.Equal(t, 1000, r.DistanceMeters)
	assert.EqualValues(t, 3, calls.Load())
}

func TestORSGivesUpAfterMaxAttempts(t *testing.T) {
	srv, calls, _ := matrixServer(t, 10, http.StatusBadGateway)
	p := newTestORS(t, srv.URL, nil)

	_, err := p.GetDistance(context.Background(), loc("Kandy", 7.290, 80.633), loc("Ella", 6.866, 81.046))
	require.Error(t, err)

	var he *httpStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadGateway, he.Code)
	assert.EqualValues(t, 3, calls.Load())
}

func TestORSDoesNotRetryClientErrors(t *testing.T) {
	srv, calls, _ := matrixServer(t, 10, http.StatusForbidden)
	p := newTestORS(t, srv.URL, nil)

	_, err := p.GetDistance(context.Background(), loc("Kandy", 7.290, 80.633), loc("Ella", 6.866, 81.046))
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestORSReportsUnroutablePairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"distances":[[null]],"durations":[[null]]}`))
	}))
	t.Cleanup(srv.Close)
	p := newTestORS(t, srv.URL, nil)

	_, err := p.GetDistance(context.Background(), loc("Jaffna", 9.66, 80.02), loc("Ella", 6.866, 81.046))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route")
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2026 07:28:00 GMT"))
}
