package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"os"
	"strconv"
	"strings"
)

// seedID accepts both numeric and string ids from exported catalogs.
type seedID string

func (id *seedID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = seedID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = seedID(n.String())
	return nil
}

type seedActivity struct {
	Day      int     `json:"day"`
	Time     string  `json:"time"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Cost     float64 `json:"cost"`
	Interest string  `json:"interest"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// PackageSeed is one catalog record in the JSON export format.
type PackageSeed struct {
	ID           seedID         `json:"id"`
	Name         string         `json:"name"`
	Days         int            `json:"days"`
	Price        float64        `json:"price"`
	Destinations []string       `json:"destinations"`
	Interests    []string       `json:"interests"`
	Activities   []seedActivity `json:"activities"`
	HotelLevel   string         `json:"hotel_level"`
}

// toPackage converts a seed record and validates the result.
func (s PackageSeed) toPackage() (domain.ItineraryPackage, error) {
	acts := make([]domain.Activity, 0, len(s.Activities))
	for i, a := range s.Activities {
		slot, err := domain.ParseTimeSlot(a.Time)
		if err != nil {
			return domain.ItineraryPackage{}, fmt.Errorf("activity #%d: %w", i+1, err)
		}
		acts = append(acts, domain.Activity{
			Day:         a.Day,
			TimeSlot:    slot,
			Name:        strings.TrimSpace(a.Name),
			Location:    strings.TrimSpace(a.City),
			Cost:        a.Cost,
			Latitude:    a.Lat,
			Longitude:   a.Lon,
			InterestTag: a.Interest,
		})
	}

	// Exported destination lists are unordered sets; prefer the visit order.
	destinations := domain.DestinationsOf(acts)
	if len(destinations) == 0 {
		destinations = s.Destinations
	}

	pkg := domain.ItineraryPackage{
		ID:                strings.TrimSpace(string(s.ID)),
		Name:              strings.TrimSpace(s.Name),
		TotalDays:         s.Days,
		TotalPrice:        s.Price,
		Destinations:      destinations,
		InterestTags:      s.Interests,
		Activities:        acts,
		AccommodationTier: strings.ToLower(strings.TrimSpace(s.HotelLevel)),
	}

	if err := pkg.Validate(); err != nil {
		return domain.ItineraryPackage{}, err
	}
	return pkg, nil
}

// DecodeSeed parses a JSON array of exported catalog records.
// The first invalid record aborts decoding.
func DecodeSeed(r io.Reader) ([]domain.ItineraryPackage, error) {
	var data []PackageSeed
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed: parse json: %w", err)
	}

	pkgs := make([]domain.ItineraryPackage, 0, len(data))
	seen := make(map[string]int, len(data))
	for i, item := range data {
		pkg, err := item.toPackage()
		if err != nil {
			return nil, fmt.Errorf("decode seed: record at index %d: %w", i+1, err)
		}
		if prev, dup := seen[pkg.ID]; dup {
			return nil, fmt.Errorf("decode seed: record at index %d: duplicate id %q (first at index %d)", i+1, pkg.ID, prev)
		}
		seen[pkg.ID] = i + 1
		pkgs = append(pkgs, pkg)
	}

	return pkgs, nil
}

// EncodeSeed writes packages in the JSON export format.
func EncodeSeed(w io.Writer, pkgs []domain.ItineraryPackage) error {
	data := make([]PackageSeed, 0, len(pkgs))
	for _, p := range pkgs {
		acts := make([]seedActivity, 0, len(p.Activities))
		for _, a := range p.Activities {
			acts = append(acts, seedActivity{
				Day:      a.Day,
				Time:     string(a.TimeSlot),
				Name:     a.Name,
				City:     a.Location,
				Cost:     a.Cost,
				Interest: a.InterestTag,
				Lat:      a.Latitude,
				Lon:      a.Longitude,
			})
		}
		data = append(data, PackageSeed{
			ID:           seedID(p.ID),
			Name:         p.Name,
			Days:         p.TotalDays,
			Price:        p.TotalPrice,
			Destinations: p.Destinations,
			Interests:    p.InterestTags,
			Activities:   acts,
			HotelLevel:   p.AccommodationTier,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return nil
}

// Populate the catalog with package data from a JSON file.
func SeedFromJSON(ctx context.Context, repo ports.CatalogRepository, jsonPath string) (int, error) {
	f, err := os.Open(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed packages: open %q: %w", jsonPath, err)
	}
	defer f.Close()

	pkgs, err := DecodeSeed(f)
	if err != nil {
		return 0, fmt.Errorf("seed packages from %q: %w", jsonPath, err)
	}

	if err := repo.UpsertPackages(ctx, pkgs); err != nil {
		return 0, fmt.Errorf("seed packages: %w", err)
	}

	return len(pkgs), nil
}

// MarshalJSON keeps numeric ids numeric on export.
func (id seedID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}
