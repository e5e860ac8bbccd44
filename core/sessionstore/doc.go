// Package sessionstore persists session fingerprint records across two
// interchangeable storage tiers: a Redis cache tier with native TTL expiry
// (preferred) and a PostgreSQL durable tier with an explicit expiry column
// and periodic sweep (sole fallback).
//
// Tier selection happens once. Initialize probes the cache tier with a
// bounded connect timeout; on failure, or on any later cache runtime error,
// the durable tier becomes active for the remainder of the process. There
// is no automatic re-probe or promotion back — a deliberate
// availability-over-optimality choice.
//
//	store := sessionstore.New(cfg, log)
//	if err := store.Initialize(ctx); err != nil {
//		return err // durable tier down, process cannot serve correlation
//	}
//	defer store.Close()
//
//	store.SaveSession(ctx, key, rec, 48*time.Hour)
//	candidates := store.RecentSessions(ctx, 100)
//
// All per-operation errors soften to false or an empty slice. The business
// transaction a correlation supports (a payment confirmation, say) must
// complete regardless of store health; callers never see an error from the
// read or write path.
package sessionstore
