package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/catalog"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/services"
)

func newTestHandler(t *testing.T) *PlanHandler {
	t.Helper()

	entries := map[string]domain.ResolvedLocation{
		"Main Road, Ranchi, India": {
			Coordinates:    domain.Coordinates{Lat: 23.36, Lon: 85.33},
			DisplayAddress: "Main Road, Ranchi, Jharkhand, India",
		},
		"Station Road, Ranchi, India": {
			Coordinates:    domain.Coordinates{Lat: 23.37, Lon: 85.32},
			DisplayAddress: "Station Road, Ranchi, Jharkhand, India",
		},
		"Tagore Hill, Ranchi, Jharkhand, India": {
			Coordinates:    domain.Coordinates{Lat: 23.40, Lon: 85.35},
			DisplayAddress: "Tagore Hill, Ranchi, Jharkhand, India",
		},
	}

	resolver, err := services.NewResolver(nil, geocode.NewMockGeocoder(entries))
	require.NoError(t, err)

	cat := catalog.New(catalog.Defaults())
	planner := &services.Planner{
		Resolver:  resolver,
		Estimator: services.NewEstimator(&routing.FixedDurationProvider{Seconds: 1200}),
		Advisor: services.NewAdvisor(&weather.MockWeatherProvider{
			Reading: domain.WeatherReading{TemperatureC: 20, WindKmh: 8, ConditionCode: 1},
		}, nil, cat),
		Boundary: &geocode.MockBoundaryProvider{
			Box: &domain.BoundingBox{South: 23.20, North: 23.45, West: 85.20, East: 85.45},
		},
		Catalog: cat,
	}

	return &PlanHandler{Planner: planner}
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

const validBody = `{
	"city": "Ranchi",
	"start_address": "Main Road",
	"return_address": "Station Road",
	"start_time": "09:00",
	"end_time": "10:30",
	"stops": [{"place": "Tagore Hill", "dwell_minutes": 30}]
}`

func TestPlanHandlerHappyPath(t *testing.T) {
	rec := postPlan(t, newTestHandler(t), validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	assert.True(t, res.Feasible)
	assert.Equal(t, "09:00", res.StartAt)
	assert.Equal(t, "10:10", res.ReturnAt)
	require.Len(t, res.Legs, 2)
	assert.Equal(t, "09:20", res.Legs[0].ArriveAt)
	assert.Equal(t, "09:50", res.Legs[0].DepartAt)
	assert.Equal(t, 40, res.TotalTravelMinutes)
	assert.Equal(t, 30, res.TotalStayMinutes)
	assert.Equal(t, 70, res.TotalMinutes)
	require.Len(t, res.Stops, 1)
	assert.Equal(t, "pleasant", res.Stops[0].Weather.Suggestion)
	assert.Equal(t, "October – March", res.Stops[0].Weather.BestTimeToVisit)
	assert.Contains(t, res.MapsURL, "google.com/maps/dir")
}

func TestPlanHandlerInfeasiblePlan(t *testing.T) {
	body := strings.Replace(validBody, `"end_time": "10:30"`, `"end_time": "10:00"`, 1)
	rec := postPlan(t, newTestHandler(t), body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	assert.False(t, res.Feasible)
	assert.Empty(t, res.MapsURL)
	assert.Len(t, res.Legs, 2)
}

func TestPlanHandlerValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown field", `{"city":"Ranchi","bogus":1}`, http.StatusBadRequest},
		{"missing city", strings.Replace(validBody, `"Ranchi"`, `""`, 1), http.StatusBadRequest},
		{"unknown city", strings.Replace(validBody, `"Ranchi"`, `"Gotham"`, 1), http.StatusBadRequest},
		{"bad start time", strings.Replace(validBody, `"09:00"`, `"9am"`, 1), http.StatusBadRequest},
		{"end before start", strings.Replace(validBody, `"10:30"`, `"08:00"`, 1), http.StatusBadRequest},
		{"negative dwell", strings.Replace(validBody, `"dwell_minutes": 30`, `"dwell_minutes": -1`, 1), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postPlan(t, newTestHandler(t), tc.body)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestPlanHandlerUnresolvableAddress(t *testing.T) {
	body := strings.Replace(validBody, `"Main Road"`, `"Atlantis Boulevard"`, 1)
	rec := postPlan(t, newTestHandler(t), body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	newTestHandler(t).Plan(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
