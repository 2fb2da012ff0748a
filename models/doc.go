// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, and response types for the tournament.

# Domain Types

  - Player: one keycap image set (id, name, images, score, opponents, active, bye flag)
  - Pairing: one head-to-head; a nil Right player is a bye
  - Snapshot: read-only copy of the round state for rendering

Players are created with NewPlayer, which rejects ids below 1 and starts
every player active with an empty opponent set:

	p, err := models.NewPlayer(1, "DSA Alchemy", images)

# Response Types

Types for JSON responses:

  - ResultsResponse: round, complete, standings
  - StandingEntry: rank, id, name, score, opponents, eliminated
  - ErrorResponse: error, message

# Constants

Round states:

	StateAwaitingMatch      = "awaiting_match"
	StateMatchResolved      = "match_resolved"
	StateRoundComplete      = "round_complete"
	StateTournamentComplete = "tournament_complete"

Form fields posted by the match page:

	FieldWinnerID = "winner_id"
	FieldP1ID     = "p1_id"
	FieldP2ID     = "p2_id"
*/
package models
