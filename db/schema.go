// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the export archive. dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	driver := dbType
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is shared by SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Only derived scores are archived; per-item answers never leave memory.
const schema = `
CREATE TABLE IF NOT EXISTS result_snapshot (
    id TEXT PRIMARY KEY,
    share_slug TEXT NOT NULL UNIQUE,
    total INTEGER NOT NULL,
    maximum INTEGER NOT NULL CHECK (maximum > 0),
    percentage INTEGER NOT NULL CHECK (percentage >= 0 AND percentage <= 100),
    interpretation TEXT NOT NULL,
    client_hash TEXT,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_result_snapshot_share_slug ON result_snapshot(share_slug);
CREATE INDEX IF NOT EXISTS idx_result_snapshot_computed_at ON result_snapshot(computed_at);
`
