package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: a boundary for reading and writing catalog packages in persistent storage.
type CatalogRepository interface {
	// Return up to limit packages in stable id order. limit <= 0 means no limit.
	ListPackages(ctx context.Context, limit int) ([]domain.ItineraryPackage, error)
	// Return one package or an error wrapping domain.ErrPackageNotFound.
	GetPackage(ctx context.Context, id string) (domain.ItineraryPackage, error)
	// Insert or replace packages atomically.
	UpsertPackages(ctx context.Context, pkgs []domain.ItineraryPackage) error
}
