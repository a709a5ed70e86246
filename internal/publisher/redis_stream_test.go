package publisher_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pythia/internal/publisher"
)

func TestPublishOddsAppendsToStream(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	pub := publisher.NewRedisStreamPublisher(client)

	require.NoError(t, pub.PublishOdds(ctx, map[string]interface{}{"run_id": "r1", "p_team_a": 0.55}))
	require.NoError(t, pub.PublishOdds(ctx, map[string]interface{}{"run_id": "r2"}))

	entries, err := client.XRange(ctx, publisher.OddsStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["data"].(string)), &first))
	assert.Equal(t, "r1", first["run_id"])
	assert.Equal(t, 0.55, first["p_team_a"])
	assert.NotEmpty(t, entries[0].Values["timestamp"])
}

func TestPublishOddsRejectsUnencodable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	err := publisher.NewRedisStreamPublisher(client).PublishOdds(context.Background(), make(chan int))
	assert.Error(t, err)
}
