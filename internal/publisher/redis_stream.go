package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OddsStream receives one entry per odds refresh.
const OddsStream = "odds.live.basketball_nba"

// defaultMaxLen caps the stream, trimmed approximately.
const defaultMaxLen = 1000

// RedisStreamPublisher publishes events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
	maxLen int64
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		maxLen: defaultMaxLen,
	}
}

// PublishOdds appends an odds update to OddsStream.
func (rsp *RedisStreamPublisher) PublishOdds(ctx context.Context, update interface{}) error {
	return rsp.publish(ctx, OddsStream, update)
}

func (rsp *RedisStreamPublisher) publish(ctx context.Context, stream string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", stream, err)
	}

	err = rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: rsp.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", stream, err)
	}
	return nil
}
