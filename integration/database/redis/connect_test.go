package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attribly/correlate/integration/database/redis"
)

func TestConnect_EmptyURL(t *testing.T) {
	_, err := redis.Connect(context.Background(), redis.Config{})

	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
}

func TestConnect_MalformedURL(t *testing.T) {
	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL: "http://not-redis:6379",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_UnreachableHostTimesOut(t *testing.T) {
	start := time.Now()
	_, err := redis.Connect(context.Background(), redis.Config{
		// TEST-NET-1 address, nothing listens there.
		ConnectionURL:  "redis://192.0.2.1:6379/0",
		RetryAttempts:  1,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 200 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.Less(t, time.Since(start), 5*time.Second)
}
