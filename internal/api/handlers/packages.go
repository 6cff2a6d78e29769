package handlers

import (
	"fmt"
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// PackageHandler exposes read-only views of the catalog the planner sees.
type PackageHandler struct {
	Catalog ports.CatalogSource
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, fmt.Errorf("list packages: %w", err))
		return
	}

	res := dto.ListPackagesResponse{
		Packages:  make([]dto.PackageSummary, 0, len(snap.Packages)),
		Total:     len(snap.Packages),
		FetchedAt: snap.FetchedAt.UTC().Format(time.RFC3339),
	}
	for _, p := range snap.Packages {
		res.Packages = append(res.Packages, dto.NewPackageSummary(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, err := h.Catalog.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, fmt.Errorf("get package: %w", err))
		return
	}

	for _, p := range snap.Packages {
		if p.ID == id {
			writeJSON(w, r, http.StatusOK, dto.NewPackageResponse(p))
			return
		}
	}

	handleError(w, r, fmt.Errorf("package %q: %w", id, domain.ErrPackageNotFound))
}
