package dto

type PlanStopRequest struct {
	Place        string `json:"place"`
	DwellMinutes int    `json:"dwell_minutes"`
}

type PlanRequest struct {
	City          string            `json:"city"`
	StartAddress  string            `json:"start_address"`
	ReturnAddress string            `json:"return_address"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
	Stops         []PlanStopRequest `json:"stops"`
}

type LocationResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type LegResponse struct {
	Label         string  `json:"label"`
	FromLat       float64 `json:"from_lat"`
	FromLon       float64 `json:"from_lon"`
	ToLat         float64 `json:"to_lat"`
	ToLon         float64 `json:"to_lon"`
	TravelMinutes int     `json:"travel_minutes"`
	DwellMinutes  int     `json:"dwell_minutes"`
	ArriveAt      string  `json:"arrive_at"`
	DepartAt      string  `json:"depart_at"`
}

type StopWeatherResponse struct {
	TemperatureC    float64 `json:"temperature_c"`
	WindKmh         float64 `json:"wind_kmh"`
	Suggestion      string  `json:"suggestion"`
	BestTimeToVisit string  `json:"best_time_to_visit"`
}

type StopResponse struct {
	Label        string              `json:"label"`
	Address      string              `json:"address"`
	Lat          float64             `json:"lat"`
	Lon          float64             `json:"lon"`
	DwellMinutes int                 `json:"dwell_minutes"`
	Weather      StopWeatherResponse `json:"weather"`
}

type PlanResponse struct {
	City               string           `json:"city"`
	Start              LocationResponse `json:"start"`
	Return             LocationResponse `json:"return"`
	StartAt            string           `json:"start_at"`
	ReturnAt           string           `json:"return_at"`
	Feasible           bool             `json:"feasible"`
	Legs               []LegResponse    `json:"legs"`
	Stops              []StopResponse   `json:"stops"`
	TotalTravelMinutes int              `json:"total_travel_minutes"`
	TotalStayMinutes   int              `json:"total_stay_minutes"`
	TotalMinutes       int              `json:"total_minutes"`
	MapsURL            string           `json:"maps_url,omitempty"`
}
