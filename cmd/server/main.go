package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/catalog"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, ArcGIS, OSRM, Open-Meteo, Postgres,
// Redis) behind ports and starts the HTTP server. Postgres and Redis are
// optional: without them the planner runs with uncached providers and the
// built-in catalog.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	userAgent := config.Get("GEOCODER_USER_AGENT", "trip-planner-service")
	region := config.Get("TRIP_REGION", "Jharkhand, India")
	country := config.Get("TRIP_COUNTRY", "India")

	var geocodeCache ports.GeocodeCache
	var placeRepo ports.PlaceRepository

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}

		geocodeCache = cache.NewSQLGeocodeCache(pg)
		placeRepo = repositories.NewSQLPlaceRepository(pg)
		log.Println("postgres connected: geocode cache and place catalog enabled")
	}

	var weatherCache ports.WeatherCache
	if redisURL := strings.TrimSpace(os.Getenv("REDIS_URL")); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal(err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal(err)
		}
		weatherCache = cache.NewRedisWeatherCache(client, 10*time.Minute)
		log.Println("redis connected: weather cache enabled")
	}

	cat, err := catalog.Load(context.Background(), placeRepo)
	if err != nil {
		log.Fatal(err)
	}

	nominatim := geocode.NewNominatimProvider(userAgent)
	resolver, err := services.NewResolver(geocodeCache, nominatim, geocode.NewArcGISProvider())
	if err != nil {
		log.Fatal(err)
	}

	planner := &services.Planner{
		Resolver:  resolver,
		Estimator: services.NewEstimator(routing.NewOSRMProvider()),
		Advisor:   services.NewAdvisor(weather.NewOpenMeteoProvider(), weatherCache, cat),
		Boundary:  nominatim,
		Catalog:   cat,
		Region:    region,
		Country:   country,
	}

	router := api.NewRouter(planner, cat)

	// Timeouts are tuned for cold-cache planning (several external API calls
	// per session, the primary geocoder rate-limited to one call a second).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
