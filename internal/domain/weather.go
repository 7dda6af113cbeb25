package domain

// Suggestion is the qualitative travel advice derived from a current-weather
// reading.
type Suggestion string

const (
	SuggestionRain        Suggestion = "rain"
	SuggestionHot         Suggestion = "hot"
	SuggestionCold        Suggestion = "cold"
	SuggestionPleasant    Suggestion = "pleasant"
	SuggestionUnavailable Suggestion = "unavailable"
)

// WeatherReading is a raw current-weather observation from a provider.
type WeatherReading struct {
	TemperatureC  float64
	WindKmh       float64
	ConditionCode int
}

// WeatherAnnotation decorates one stop after the schedule is built. It never
// affects feasibility. When the weather provider fails the readings are zero
// and Suggestion is SuggestionUnavailable, but BestTimeToVisit is still
// filled from the static catalog.
type WeatherAnnotation struct {
	TemperatureC    float64
	WindKmh         float64
	Suggestion      Suggestion
	BestTimeToVisit string
}
