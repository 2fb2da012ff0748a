// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the match archive.
// Safe to call multiple times - uses IF NOT EXISTS.
// Column types are limited to what both PostgreSQL and SQLite accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Tournament runs (one per process start)
CREATE TABLE IF NOT EXISTS tournament_run (
    id TEXT PRIMARY KEY,
    player_count INTEGER NOT NULL,
    rounds INTEGER NOT NULL DEFAULT 1,
    champion_id INTEGER,
    started_at TIMESTAMP NOT NULL,
    completed_at TIMESTAMP
);

-- Decided matches
CREATE TABLE IF NOT EXISTS match_result (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL REFERENCES tournament_run(id) ON DELETE CASCADE,
    round INTEGER NOT NULL,
    winner_id INTEGER NOT NULL,
    loser_id INTEGER NOT NULL,
    voter_hash TEXT,
    recorded_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_result_run_id ON match_result(run_id);

-- Byes
CREATE TABLE IF NOT EXISTS bye (
    run_id TEXT NOT NULL REFERENCES tournament_run(id) ON DELETE CASCADE,
    round INTEGER NOT NULL,
    player_id INTEGER NOT NULL,
    awarded_at TIMESTAMP NOT NULL,
    PRIMARY KEY (run_id, player_id)
);

-- Eliminations
CREATE TABLE IF NOT EXISTS elimination (
    run_id TEXT NOT NULL REFERENCES tournament_run(id) ON DELETE CASCADE,
    round INTEGER NOT NULL,
    player_id INTEGER NOT NULL,
    score INTEGER NOT NULL,
    eliminated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (run_id, player_id)
);
`
