// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the optional export archive.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres" (lib/pq)
and pings the database before returning:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes. The same DDL runs on both databases.

# Tables

  - result_snapshot: one row per exported result, keyed by id, looked up
    by share_slug

Only derived scores are stored. Per-item answers stay in the in-memory
session and are never written.

# Indexes

  - result_snapshot.share_slug (unique)
  - result_snapshot.computed_at

# Snapshot Store

	store := db.NewSnapshotStore(conn)
	err := store.Save(ctx, snap, auth.HashIP(ip, cfg.ExportSlugSalt))
	snap, err := store.GetBySlug(ctx, slug) // ErrSnapshotNotFound when absent

The snapshot is stored whole as JSON in the payload column and decoded on
read, so both drivers round-trip it identically.
*/
package db
