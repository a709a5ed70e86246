package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/pythia/internal/simulation"
)

// finalOddsPrefix keys the settled projection of a day.
const finalOddsPrefix = "pythia:odds:final:"

// RedisCache stores settled daily projections.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// FinalOdds returns the projection stored for day once all of its games
// finished. The bool is false on a miss.
func (rc *RedisCache) FinalOdds(ctx context.Context, day time.Time) ([]simulation.MatchupResult, bool, error) {
	raw, err := rc.client.Get(ctx, finalOddsPrefix+simulation.DayKey(day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading final odds: %w", err)
	}

	var results []simulation.MatchupResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false, fmt.Errorf("decoding final odds: %w", err)
	}
	return results, true, nil
}

// StoreFinalOdds saves the settled projection of day. A zero ttl keeps it.
func (rc *RedisCache) StoreFinalOdds(ctx context.Context, day time.Time, results []simulation.MatchupResult, ttl time.Duration) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding final odds: %w", err)
	}
	if err := rc.client.Set(ctx, finalOddsPrefix+simulation.DayKey(day), data, ttl).Err(); err != nil {
		return fmt.Errorf("writing final odds: %w", err)
	}
	return nil
}
