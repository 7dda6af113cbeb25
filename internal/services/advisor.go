package services

import (
	"context"
	"log"
	"sync"

	"trip-planner-service/internal/catalog"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Open-Meteo condition codes that indicate rain or showers.
var rainCodes = map[int]bool{
	61: true, 63: true, 65: true,
	80: true, 81: true, 82: true,
}

// Advisor annotates stops with a qualitative weather suggestion and the
// catalog's best-time-to-visit text. It never fails outward: when the
// weather provider is unavailable the annotation carries zero readings and
// an "unavailable" suggestion, but the catalog lookup still runs.
type Advisor struct {
	provider ports.WeatherProvider
	cache    ports.WeatherCache
	catalog  *catalog.Catalog
}

// NewAdvisor builds an advisor. cache may be nil for uncached readings.
func NewAdvisor(provider ports.WeatherProvider, cache ports.WeatherCache, cat *catalog.Catalog) *Advisor {
	return &Advisor{provider: provider, cache: cache, catalog: cat}
}

// Classify maps a reading to a suggestion. Rain takes priority over
// temperature; the hot and cold thresholds are exclusive.
func Classify(r domain.WeatherReading) domain.Suggestion {
	switch {
	case rainCodes[r.ConditionCode]:
		return domain.SuggestionRain
	case r.TemperatureC > 30:
		return domain.SuggestionHot
	case r.TemperatureC < 15:
		return domain.SuggestionCold
	default:
		return domain.SuggestionPleasant
	}
}

// Annotate produces the weather annotation for one stop.
func (a *Advisor) Annotate(ctx context.Context, stop domain.Stop) domain.WeatherAnnotation {
	annotation := domain.WeatherAnnotation{
		Suggestion:      domain.SuggestionUnavailable,
		BestTimeToVisit: a.catalog.BestTime(stop.Label),
	}

	reading, ok := a.cachedReading(ctx, stop.Location.Coordinates)
	if !ok {
		var err error
		reading, err = a.provider.CurrentWeather(ctx, stop.Location.Coordinates)
		if err != nil {
			log.Printf("weather lookup failed: stop=%q err=%v", stop.Label, err)
			return annotation
		}
		a.storeReading(ctx, stop.Location.Coordinates, reading)
	}

	annotation.TemperatureC = reading.TemperatureC
	annotation.WindKmh = reading.WindKmh
	annotation.Suggestion = Classify(reading)
	return annotation
}

// AnnotateAll annotates every stop. The lookups are independent of each
// other, so they fan out with bounded concurrency; results are reassembled
// in stop order.
func (a *Advisor) AnnotateAll(ctx context.Context, stops []domain.Stop) []domain.WeatherAnnotation {
	annotations := make([]domain.WeatherAnnotation, len(stops))

	sem := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for i, stop := range stops {
		wg.Add(1)
		go func(i int, stop domain.Stop) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			annotations[i] = a.Annotate(ctx, stop)
		}(i, stop)
	}

	wg.Wait()
	return annotations
}

func (a *Advisor) cachedReading(ctx context.Context, at domain.Coordinates) (domain.WeatherReading, bool) {
	if a.cache == nil {
		return domain.WeatherReading{}, false
	}
	r, ok, err := a.cache.Get(ctx, at)
	if err != nil {
		log.Printf("weather cache read failed: %v", err)
		return domain.WeatherReading{}, false
	}
	return r, ok
}

func (a *Advisor) storeReading(ctx context.Context, at domain.Coordinates, r domain.WeatherReading) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Put(ctx, at, r); err != nil {
		log.Printf("weather cache write failed: %v", err)
	}
}
