package handlers

import (
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"net/http"
)

type PlanHandler struct {
	Catalog  ports.CatalogSource
	Provider ports.DistanceProvider
}

// Plan picks or builds an itinerary for the traveler's goals, lists catalog
// alternatives and, unless disabled, the travel legs between destinations.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "alternatives must be between 0 and 10")
		return
	}

	goals, err := domain.ParseGoals(req.GoalsInput())
	if err != nil {
		handleError(w, r, err)
		return
	}

	svcReq := services.PlanTripRequest{
		Goals:        goals,
		Alternatives: services.DefaultAlternatives,
		SkipLegs:     req.IncludeLegs != nil && !*req.IncludeLegs,
	}
	if req.Alternatives != nil {
		svcReq.Alternatives = *req.Alternatives
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Catalog, h.Provider)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}
