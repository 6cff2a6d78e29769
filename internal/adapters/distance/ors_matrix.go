package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"math"
	"net/http"
)

// legTarget is one destination of a matrix lookup.
type legTarget struct {
	name   string
	coords domain.Coordinates
}

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Sources      []int       `json:"sources"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Units        string      `json:"units"`
}

// Unroutable pairs come back as null cells.
type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// newLegMatrixRequest puts the origin at index 0 and the targets after it,
// asking for a single source row.
func newLegMatrixRequest(origin domain.Coordinates, targets []legTarget) matrixRequest {
	req := matrixRequest{
		Locations:    [][]float64{origin.CoordsToList()},
		Sources:      []int{0},
		Destinations: make([]int, len(targets)),
		Metrics:      []string{"distance", "duration"},
		Units:        "m",
	}
	for i, t := range targets {
		req.Locations = append(req.Locations, t.coords.CoordsToList())
		req.Destinations[i] = i + 1
	}
	return req
}

// legs turns the single source row into travel leg results keyed by target name.
func (m matrixResponse) legs(targets []legTarget) (map[string]ports.DistanceResult, error) {
	if len(m.Distances) != 1 || len(m.Durations) != 1 {
		return nil, fmt.Errorf("want one origin row, got %d distance and %d duration rows", len(m.Distances), len(m.Durations))
	}

	meters, seconds := m.Distances[0], m.Durations[0]
	if len(meters) != len(targets) || len(seconds) != len(targets) {
		return nil, fmt.Errorf("origin row covers %d/%d cells for %d stops", len(meters), len(seconds), len(targets))
	}

	out := make(map[string]ports.DistanceResult, len(targets))
	for i, t := range targets {
		if meters[i] == nil || seconds[i] == nil {
			return nil, fmt.Errorf("no route to stop %q", t.name)
		}
		out[t.name] = ports.DistanceResult{
			DistanceMeters:  int(math.Round(*meters[i])),
			DurationSeconds: int(math.Round(*seconds[i])),
		}
	}
	return out, nil
}

// fetchLegs asks the ORS matrix endpoint for road travel from origin to every
// target in one call.
func (o *ORSDistanceProvider) fetchLegs(
	ctx context.Context,
	origin domain.Coordinates,
	targets []legTarget,
) (map[string]ports.DistanceResult, error) {
	if len(targets) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	body, err := json.Marshal(newLegMatrixRequest(origin, targets))
	if err != nil {
		return nil, fmt.Errorf("encode leg matrix request: %w", err)
	}

	endpoint := o.baseURL + "/v2/matrix/" + o.profile
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	})
	if err != nil {
		return nil, fmt.Errorf("leg matrix call: %w", err)
	}
	defer resp.Body.Close()

	var m matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode leg matrix: %w", err)
	}

	legs, err := m.legs(targets)
	if err != nil {
		return nil, fmt.Errorf("leg matrix for %d stops: %w", len(targets), err)
	}
	return legs, nil
}
