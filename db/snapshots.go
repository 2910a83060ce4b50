// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/perma-check/models"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore archives exported score results.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save writes an immutable snapshot. The full snapshot is kept in payload;
// the scalar columns exist for querying.
func (s *SnapshotStore) Save(ctx context.Context, snap models.ExportSnapshot, clientHash string) error {
	snap.Archived = true
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var hash *string
	if clientHash != "" {
		hash = &clientHash
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO result_snapshot (id, share_slug, total, maximum, percentage, interpretation, client_hash, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, snap.ID, snap.ShareSlug, snap.Result.Total, snap.Result.Maximum,
		snap.Result.Percentage, string(snap.Result.Interpretation), hash,
		snap.ComputedAt.UTC(), string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// GetBySlug loads a snapshot by its share slug.
func (s *SnapshotStore) GetBySlug(ctx context.Context, slug string) (models.ExportSnapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM result_snapshot
		WHERE share_slug = $1
	`, slug).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ExportSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.ExportSnapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var snap models.ExportSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return models.ExportSnapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// Count returns the number of archived snapshots.
func (s *SnapshotStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM result_snapshot`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}
