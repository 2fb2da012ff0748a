// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import "errors"

var (
	// ErrValidation marks a vote whose fields are inconsistent.
	ErrValidation = errors.New("invalid vote")
	// ErrNotFound marks a vote naming a player id that does not exist.
	ErrNotFound = errors.New("player not found")
	// ErrStaleMatch marks a vote for a pairing that is not the one awaiting a decision.
	ErrStaleMatch = errors.New("match is not current")
	// ErrTournamentComplete marks a vote arriving after fewer than two players remain.
	ErrTournamentComplete = errors.New("tournament complete")
)
