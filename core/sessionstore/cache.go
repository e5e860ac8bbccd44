package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/attribly/correlate/core/session"
)

// cacheBackend stores records as JSON values with native Redis expiry.
type cacheBackend struct {
	client    *redis.Client
	scanBatch int64
}

func newCacheBackend(client *redis.Client, scanBatch int) *cacheBackend {
	if scanBatch <= 0 {
		scanBatch = 1000
	}
	return &cacheBackend{client: client, scanBatch: int64(scanBatch)}
}

func (c *cacheBackend) Save(ctx context.Context, key string, rec session.Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Recent walks the session keyspace with a cursor scan, accumulating keys
// until limit or keyspace exhaustion, then fetches and decodes each value.
// The scan is a point-in-time approximation: writes that interleave with it
// may or may not appear, which is acceptable for heuristic correlation.
//
// Scanning the whole prefix is fine at the low key cardinality this engine
// operates at; a deployment with a large keyspace should maintain a sorted
// index of recent keys instead.
func (c *cacheBackend) Recent(ctx context.Context, limit int) ([]session.Stored, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := c.client.Scan(ctx, cursor, session.KeyPrefix+"*", c.scanBatch).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 || len(keys) >= limit {
			break
		}
		cursor = next
	}
	if len(keys) > limit {
		keys = keys[:limit]
	}

	out := make([]session.Stored, 0, len(keys))
	for _, key := range keys {
		val, err := c.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			// Expired between scan and fetch.
			continue
		}
		if err != nil {
			return nil, err
		}
		var rec session.Record
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			// Foreign or corrupt value under our prefix; skip it.
			continue
		}
		out = append(out, session.Stored{Key: key, Record: rec})
	}

	sortByTimestampDesc(out)
	return out, nil
}

// DeleteExpired is a no-op: Redis evicts expired keys natively.
func (c *cacheBackend) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

func (c *cacheBackend) Kind() string { return StorageCache }

func (c *cacheBackend) Close() error { return c.client.Close() }

func sortByTimestampDesc(records []session.Stored) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Record.Timestamp > records[j].Record.Timestamp
	})
}
