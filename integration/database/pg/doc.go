// Package pg provides PostgreSQL connection management and schema
// migrations for the durable storage tier.
//
// Connect creates a pgx connection pool with a bounded connect timeout and
// retry logic. Unlike the cache tier, a durable-tier connect failure is
// fatal to the session store: with no further fallback, the process cannot
// serve correlation at all.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err // fatal, nothing to fall back to
//	}
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, log); err != nil {
//		return err
//	}
//
// Migrate applies embedded goose migrations (the sessions table and its
// indexes). WithTx/TxFromContext let session writes join a caller-managed
// transaction.
package pg
