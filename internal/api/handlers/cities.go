package handlers

import (
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/catalog"
)

// CityHandler exposes the read-only point-of-interest catalog.
type CityHandler struct {
	Catalog *catalog.Catalog
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cities := h.Catalog.Cities()
	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(cities))}
	for _, c := range cities {
		res.Cities = append(res.Cities, dto.CityResponse{
			Name:   c,
			Places: h.Catalog.Places(c),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
