// Package client bootstraps the local persistence the MovieKeeper client
// runs on.
//
// # Overview
//
// InitStore turns a DSN into a ready kv.Store:
//
//   - ":memory:"                         — kv.MemoryStore, nothing persisted
//   - "postgres://..." / "postgresql://" — PostgreSQL through the pgx stdlib driver
//   - anything else                      — a SQLite file (modernc.org/sqlite); missing
//     parent directories are created
//
// SQL backends are migrated with goose from the embedded per-dialect
// migrations (see internal/client/migrations) before the store is returned.
//
// See Also
//
//   - Store:      internal/client/repositories/kv
//   - Migrations: RunMigrations
package client
