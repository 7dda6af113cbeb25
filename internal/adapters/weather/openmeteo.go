package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// OpenMeteoProvider fetches the current weather from the keyless Open-Meteo
// forecast endpoint.
//
// Failures propagate to the caller; the weather advisor owns the
// "unavailable" fallback.
type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
}

func NewOpenMeteoProvider() *OpenMeteoProvider {
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.open-meteo.com",
	}
}

func NewOpenMeteoProviderAt(baseURL string) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// CurrentWeather fetches the current observation for a coordinate.
func (p *OpenMeteoProvider) CurrentWeather(
	ctx context.Context,
	at domain.Coordinates,
) (_ domain.WeatherReading, err error) {
	defer obs.Time(ctx, "openmeteo.CurrentWeather")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/forecast", nil)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherReading{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("decode forecast response: %w", err)
	}
	if decoded.CurrentWeather == nil {
		return domain.WeatherReading{}, fmt.Errorf("no current weather for %s", at)
	}

	return domain.WeatherReading{
		TemperatureC:  decoded.CurrentWeather.Temperature,
		WindKmh:       decoded.CurrentWeather.WindSpeed,
		ConditionCode: decoded.CurrentWeather.WeatherCode,
	}, nil
}
