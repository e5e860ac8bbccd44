package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/attribly/correlate/core/session"
	"github.com/attribly/correlate/integration/database/pg"
)

// durableBackend stores records as rows in the sessions table with an
// explicit expiry column swept by DeleteExpired.
type durableBackend struct {
	pool *pgxpool.Pool
}

func newDurableBackend(pool *pgxpool.Pool) *durableBackend {
	return &durableBackend{pool: pool}
}

const insertSessionQuery = `
	INSERT INTO sessions
		(thumbmark_id, utms, fbclid, ip, screen_resolution, hardware_concurrency, canvas_hash, user_agent, timestamp, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Save inserts a session row. The key is not persisted: the natural key is
// reconstructible from thumbmark_id and timestamp. Joins a transaction from
// the context when one is present.
func (d *durableBackend) Save(ctx context.Context, _ string, rec session.Record, ttl time.Duration) error {
	utms, err := json.Marshal(rec.UTMs)
	if err != nil {
		return err
	}

	args := []any{
		nullable(rec.ThumbmarkID),
		utms,
		nullable(rec.FBCLID),
		nullable(rec.IP),
		nullable(rec.ScreenResolution),
		rec.HardwareConcurrency,
		nullable(rec.CanvasHash),
		nullable(rec.UserAgent),
		rec.Timestamp,
		time.Now().Add(ttl),
	}

	if tx, ok := pg.TxFromContext(ctx); ok {
		_, err = tx.Exec(ctx, insertSessionQuery, args...)
		return err
	}
	_, err = d.pool.Exec(ctx, insertSessionQuery, args...)
	return err
}

const recentSessionsQuery = `
	SELECT thumbmark_id, utms, fbclid, ip::text, screen_resolution, hardware_concurrency, canvas_hash, user_agent, timestamp
	FROM sessions
	WHERE expires_at > now()
	ORDER BY timestamp DESC
	LIMIT $1`

func (d *durableBackend) Recent(ctx context.Context, limit int) ([]session.Stored, error) {
	rows, err := d.pool.Query(ctx, recentSessionsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []session.Stored
	for rows.Next() {
		var (
			thumbmark, fbclid, ip, screen, concurrency, canvas, ua *string
			utms                                                   []byte
			timestamp                                              int64
		)
		if err := rows.Scan(&thumbmark, &utms, &fbclid, &ip, &screen, &concurrency, &canvas, &ua, &timestamp); err != nil {
			return nil, err
		}

		rec := session.Record{
			ThumbmarkID:         deref(thumbmark),
			CanvasHash:          deref(canvas),
			HardwareConcurrency: deref(concurrency),
			ScreenResolution:    deref(screen),
			IP:                  deref(ip),
			UserAgent:           deref(ua),
			FBCLID:              deref(fbclid),
			Timestamp:           timestamp,
		}
		if rec.HardwareConcurrency == "" {
			rec.HardwareConcurrency = session.UnknownConcurrency
		}
		if len(utms) > 0 {
			_ = json.Unmarshal(utms, &rec.UTMs)
		}

		out = append(out, session.Stored{
			Key:    session.Key(rec.ThumbmarkID, rec.Timestamp),
			Record: rec,
		})
	}
	return out, rows.Err()
}

const deleteExpiredQuery = `DELETE FROM sessions WHERE expires_at < now()`

func (d *durableBackend) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := d.pool.Exec(ctx, deleteExpiredQuery)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (d *durableBackend) Kind() string { return StorageDurable }

func (d *durableBackend) Close() error {
	d.pool.Close()
	return nil
}

// nullable maps empty strings to SQL NULL so that nullable TEXT/INET
// columns stay NULL instead of holding empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
