// Package kv provides the durable key/value surface the account store
// persists into.
//
// # Overview
//
// Repository is a flat byte-valued map (Get/Set/Delete/List/Clear). Store adds
// Atomically, which runs several writes as one unit: either all of them land
// or none do. Two implementations exist:
//
//   - SQLStore    — a kv_entries table in SQLite (modernc.org/sqlite) or
//     PostgreSQL (pgx stdlib), selected by Dialect. Atomically uses a
//     database transaction (dbx.WithTx).
//   - MemoryStore — a process-local map; Atomically applies writes to a copy
//     and swaps it in on success.
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not an
// error. Values are returned as fresh slices owned by the caller.
//
// Typical Usage
//
//	store := kv.NewSQLStore(db, kv.DialectSQLite)
//	_ = store.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
//	    if err := r.Set(ctx, "a", []byte("1")); err != nil {
//	        return err
//	    }
//	    return r.Delete(ctx, "b")
//	})
package kv
