package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/services"
)

type PlanHandler struct {
	Planner *services.Planner
}

// Plan runs one full planning session: resolution, scheduling, weather
// annotation and link building. Resolution failures come back as 422 (the
// session is rejected before any schedule is built); an infeasible plan is a
// 200 with feasible=false and no maps_url.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.City) == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}
	if strings.TrimSpace(req.StartAddress) == "" || strings.TrimSpace(req.ReturnAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "start_address and return_address are required")
		return
	}
	if !h.Planner.Catalog.HasCity(req.City) {
		writeError(w, r, http.StatusBadRequest, "unknown city")
		return
	}

	startAt, err := services.ParseClock(req.StartTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_time must be HH:MM (24 hr)")
		return
	}
	desiredEnd, err := services.ParseClock(req.EndTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_time must be HH:MM (24 hr)")
		return
	}
	if !desiredEnd.After(startAt) {
		writeError(w, r, http.StatusBadRequest, "end_time must be later than start_time (same day)")
		return
	}

	stops := make([]services.StopRequest, 0, len(req.Stops))
	for _, s := range req.Stops {
		if strings.TrimSpace(s.Place) == "" {
			writeError(w, r, http.StatusBadRequest, "stop place is required")
			return
		}
		if s.DwellMinutes < 0 {
			writeError(w, r, http.StatusBadRequest, "dwell_minutes must be >= 0")
			return
		}
		stops = append(stops, services.StopRequest{Place: s.Place, DwellMinutes: s.DwellMinutes})
	}

	result, err := h.Planner.PlanTrip(r.Context(), services.PlanTripRequest{
		City:          req.City,
		StartAddress:  req.StartAddress,
		ReturnAddress: req.ReturnAddress,
		StartAt:       startAt,
		DesiredEnd:    desiredEnd,
		Stops:         stops,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrOutOfBounds) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(result))
}

func toPlanResponse(result *services.PlanResult) dto.PlanResponse {
	plan := result.Plan

	legs := make([]dto.LegResponse, 0, len(plan.Legs))
	for _, leg := range plan.Legs {
		legs = append(legs, dto.LegResponse{
			Label:         leg.Label,
			FromLat:       leg.From.Lat,
			FromLon:       leg.From.Lon,
			ToLat:         leg.To.Lat,
			ToLon:         leg.To.Lon,
			TravelMinutes: leg.TravelMinutes,
			DwellMinutes:  leg.DwellMinutes,
			ArriveAt:      services.FormatClock(leg.ArriveAt),
			DepartAt:      services.FormatClock(leg.DepartAt),
		})
	}

	stops := make([]dto.StopResponse, 0, len(result.Stops))
	for i, s := range result.Stops {
		var weather dto.StopWeatherResponse
		if i < len(result.Annotations) {
			a := result.Annotations[i]
			weather = dto.StopWeatherResponse{
				TemperatureC:    a.TemperatureC,
				WindKmh:         a.WindKmh,
				Suggestion:      string(a.Suggestion),
				BestTimeToVisit: a.BestTimeToVisit,
			}
		}
		stops = append(stops, dto.StopResponse{
			Label:        s.Label,
			Address:      s.Location.DisplayAddress,
			Lat:          s.Location.Coordinates.Lat,
			Lon:          s.Location.Coordinates.Lon,
			DwellMinutes: s.DwellMinutes,
			Weather:      weather,
		})
	}

	return dto.PlanResponse{
		City: result.City,
		Start: dto.LocationResponse{
			Address: result.Start.DisplayAddress,
			Lat:     result.Start.Coordinates.Lat,
			Lon:     result.Start.Coordinates.Lon,
		},
		Return: dto.LocationResponse{
			Address: result.Return.DisplayAddress,
			Lat:     result.Return.Coordinates.Lat,
			Lon:     result.Return.Coordinates.Lon,
		},
		StartAt:            services.FormatClock(plan.StartAt),
		ReturnAt:           services.FormatClock(plan.ReturnAt),
		Feasible:           plan.Feasible,
		Legs:               legs,
		Stops:              stops,
		TotalTravelMinutes: plan.TotalTravelMinutes,
		TotalStayMinutes:   plan.TotalStayMinutes,
		TotalMinutes:       plan.TotalMinutes(),
		MapsURL:            result.MapsURL,
	}
}
