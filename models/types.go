// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"sort"
)

// Tournament state constants
const (
	StateAwaitingMatch      = "awaiting_match"
	StateMatchResolved      = "match_resolved"
	StateRoundComplete      = "round_complete"
	StateTournamentComplete = "tournament_complete"
)

// Form field names posted by the match page
const (
	FieldWinnerID = "winner_id"
	FieldP1ID     = "p1_id"
	FieldP2ID     = "p2_id"
	FieldBgColor  = "bg_color"
)

// DefaultBackground is the page background used until a colour is chosen.
const DefaultBackground = "#f2f2f2"

// Domain types

// Player is one image set competing in the tournament.
// Opponents only grows, Score only increases, and an inactive player is
// never paired or scored again.
type Player struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Images     []string         `json:"images"`
	Score      int              `json:"score"`
	Opponents  map[int]struct{} `json:"-"`
	Active     bool             `json:"active"`
	ByeAwarded bool             `json:"bye_awarded"`
}

// NewPlayer registers an active player with no score and no opponents.
func NewPlayer(id int, name string, images []string) (*Player, error) {
	if id < 1 {
		return nil, fmt.Errorf("player id must be >= 1, got %d", id)
	}
	if images == nil {
		images = []string{}
	}
	return &Player{
		ID:        id,
		Name:      name,
		Images:    images,
		Opponents: make(map[int]struct{}),
		Active:    true,
	}, nil
}

// HasFaced reports whether id is already in the opponent set.
func (p *Player) HasFaced(id int) bool {
	_, ok := p.Opponents[id]
	return ok
}

// AddOpponent records id as faced. Adding the same id twice is a no-op.
func (p *Player) AddOpponent(id int) {
	if p.Opponents == nil {
		p.Opponents = make(map[int]struct{})
	}
	p.Opponents[id] = struct{}{}
}

// OpponentIDs returns the opponent set in ascending order.
func (p *Player) OpponentIDs() []int {
	ids := make([]int, 0, len(p.Opponents))
	for id := range p.Opponents {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Pairing is one head-to-head of a round. A nil Right is a bye.
type Pairing struct {
	Left  *Player
	Right *Player
}

func (p Pairing) IsBye() bool {
	return p.Right == nil
}

// Snapshot is a read-only copy of the round state.
type Snapshot struct {
	State          string
	Round          int
	MatchIndex     int
	TotalMatches   int
	Progress       int
	TotalPlayers   int
	ActivePlayers  int
	CurrentPairing *Pairing
	Standings      []*Player
}

// Response types

type StandingEntry struct {
	Rank       int    `json:"rank"`
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Opponents  []int  `json:"opponents"`
	Eliminated bool   `json:"eliminated"`
}

type ResultsResponse struct {
	Round     int             `json:"round"`
	Complete  bool            `json:"complete"`
	Standings []StandingEntry `json:"standings"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
