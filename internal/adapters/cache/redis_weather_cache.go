package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
)

// RedisWeatherCache stores short-lived current-weather readings. Keys round
// the coordinate to four decimals (~11 m) so stops at the same place share
// one provider call, and entries expire so readings stay current.
type RedisWeatherCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWeatherCache(client *redis.Client, ttl time.Duration) *RedisWeatherCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisWeatherCache{client: client, ttl: ttl}
}

func weatherKey(at domain.Coordinates) string {
	return fmt.Sprintf("weather:%.4f:%.4f", at.Lat, at.Lon)
}

// Fetch a cached reading. ok is false on a miss or after expiry.
func (c *RedisWeatherCache) Get(
	ctx context.Context,
	at domain.Coordinates,
) (domain.WeatherReading, bool, error) {
	if c.client == nil {
		return domain.WeatherReading{}, false, errors.New("weather cache: client is nil")
	}

	raw, err := c.client.Get(ctx, weatherKey(at)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.WeatherReading{}, false, nil
	}
	if err != nil {
		return domain.WeatherReading{}, false, fmt.Errorf("get weather cache: %w", err)
	}

	var r domain.WeatherReading
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.WeatherReading{}, false, fmt.Errorf("get weather cache: decode entry: %w", err)
	}
	return r, true, nil
}

// Store a reading with the cache TTL.
func (c *RedisWeatherCache) Put(
	ctx context.Context,
	at domain.Coordinates,
	r domain.WeatherReading,
) error {
	if c.client == nil {
		return errors.New("weather cache: client is nil")
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("put weather cache: encode entry: %w", err)
	}

	if err := c.client.Set(ctx, weatherKey(at), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put weather cache: %w", err)
	}
	return nil
}
