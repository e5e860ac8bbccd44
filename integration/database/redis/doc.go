// Package redis provides Redis client initialization and health checking
// for the cache storage tier.
//
// Connect validates the connection URL, dials with a bounded timeout and
// retry loop, and verifies connectivity with a ping before handing the
// client back. The session store treats a Connect failure as "cache tier
// unavailable" and falls back to the durable tier, so the timeout here
// directly bounds process startup latency.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		ConnectTimeout: 5 * time.Second,
//	})
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. Errors are
// wrapped in the package sentinels for errors.Is checks.
package redis
