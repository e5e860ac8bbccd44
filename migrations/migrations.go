// Package migrations embeds the SQL schema migrations for the durable
// storage tier. Apply them with pg.Migrate during store initialization.
package migrations

import "embed"

// FS contains all goose migration files, rooted at this directory.
//
//go:embed *.sql
var FS embed.FS
