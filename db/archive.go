// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/keycap-swiss/auth"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
)

// Archive writes controller events to the database. It implements
// tournament.Observer. Write failures are logged and never reach the
// request that caused them.
type Archive struct {
	db    *sql.DB
	runID string
}

// MatchRecord is one archived match.
type MatchRecord struct {
	ID         string    `json:"id"`
	Round      int       `json:"round"`
	WinnerID   int       `json:"winner_id"`
	LoserID    int       `json:"loser_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewArchive starts a new tournament run.
func NewArchive(ctx context.Context, db *sql.DB, playerCount int) (*Archive, error) {
	runID := uuid.NewString()
	_, err := db.ExecContext(ctx, `
		INSERT INTO tournament_run (id, player_count, rounds, started_at)
		VALUES ($1, $2, $3, $4)
	`, runID, playerCount, 1, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert tournament run: %w", err)
	}

	slog.Info("archive run started", "run_id", runID, "players", playerCount)
	return &Archive{db: db, runID: runID}, nil
}

// RunID identifies the tournament run this archive writes to.
func (a *Archive) RunID() string {
	return a.runID
}

func (a *Archive) RoundStarted(round int, _ []models.Pairing) {
	_, err := a.db.Exec(`
		UPDATE tournament_run SET rounds = $1 WHERE id = $2
	`, round, a.runID)
	if err != nil {
		slog.Error("failed to archive round", "error", err, "run_id", a.runID, "round", round)
	}
}

func (a *Archive) MatchRecorded(ev tournament.MatchEvent) {
	id, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate match ID", "error", err)
		return
	}

	var voter *string
	if ev.Voter != "" {
		voter = &ev.Voter
	}

	_, err = a.db.Exec(`
		INSERT INTO match_result (id, run_id, round, winner_id, loser_id, voter_hash, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, a.runID, ev.Round, ev.Winner.ID, ev.Loser.ID, voter, time.Now().UTC())
	if err != nil {
		slog.Error("failed to archive match", "error", err, "run_id", a.runID)
	}
}

func (a *Archive) ByeAwarded(round int, p *models.Player) {
	_, err := a.db.Exec(`
		INSERT INTO bye (run_id, round, player_id, awarded_at)
		VALUES ($1, $2, $3, $4)
	`, a.runID, round, p.ID, time.Now().UTC())
	if err != nil {
		slog.Error("failed to archive bye", "error", err, "run_id", a.runID, "player_id", p.ID)
	}
}

func (a *Archive) PlayersEliminated(round int, eliminated []*models.Player) {
	tx, err := a.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		return
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, p := range eliminated {
		_, err = tx.Exec(`
			INSERT INTO elimination (run_id, round, player_id, score, eliminated_at)
			VALUES ($1, $2, $3, $4, $5)
		`, a.runID, round, p.ID, p.Score, now)
		if err != nil {
			slog.Error("failed to archive elimination", "error", err, "player_id", p.ID)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
	}
}

func (a *Archive) TournamentCompleted(_ int, standings []*models.Player) {
	var champion *int
	if len(standings) > 0 {
		champion = &standings[0].ID
	}

	_, err := a.db.Exec(`
		UPDATE tournament_run SET completed_at = $1, champion_id = $2 WHERE id = $3
	`, time.Now().UTC(), champion, a.runID)
	if err != nil {
		slog.Error("failed to archive completion", "error", err, "run_id", a.runID)
	}
}

// Matches lists the archived matches of this run in the order they were played.
func (a *Archive) Matches(ctx context.Context) ([]MatchRecord, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, round, winner_id, loser_id, recorded_at
		FROM match_result
		WHERE run_id = $1
		ORDER BY round, recorded_at
	`, a.runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []MatchRecord{}
	for rows.Next() {
		var m MatchRecord
		if err := rows.Scan(&m.ID, &m.Round, &m.WinnerID, &m.LoserID, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Eliminations maps eliminated player ids to the round they left in.
func (a *Archive) Eliminations(ctx context.Context) (map[int]int, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT player_id, round FROM elimination WHERE run_id = $1
	`, a.runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query eliminations: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var playerID, round int
		if err := rows.Scan(&playerID, &round); err != nil {
			return nil, fmt.Errorf("failed to scan elimination: %w", err)
		}
		out[playerID] = round
	}
	return out, rows.Err()
}
