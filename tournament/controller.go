// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/danielhkuo/keycap-swiss/models"
)

// Vote is one decision posted from the match page.
type Vote struct {
	WinnerID int
	P1ID     int
	P2ID     int
	Voter    string
}

// Controller owns the round state: current round, its pairings, and the
// index of the next match. All methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	players   []*models.Player
	byID      map[int]*models.Player
	round     int
	pairings  []models.Pairing
	index     int
	completed bool
	rng       *rand.Rand
	observer  Observer
}

type Option func(*Controller)

// WithRand sets the source used to shuffle the first round.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithSeed is WithRand over a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(newRand(seed))
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithObserver attaches an event observer.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		c.observer = obs
	}
}

// NewController starts round 1 with every player paired in shuffled order.
func NewController(players []*models.Player, opts ...Option) *Controller {
	c := &Controller{
		players:  players,
		byID:     make(map[int]*models.Player, len(players)),
		round:    1,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = newRand(uint64(time.Now().UnixNano()))
	}
	for _, p := range players {
		c.byID[p.ID] = p
	}

	c.pairings = RandomPair(ActivePlayers(players), c.rng)
	slog.Info("round started", "round", c.round, "matches", len(c.pairings))
	c.observer.RoundStarted(c.round, c.pairings)
	return c
}

// Current moves past byes and finished rounds until a match needs a
// decision, then returns it. The pairing is nil once the tournament is
// complete.
func (c *Controller) Current() (string, *models.Pairing) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, current := c.advanceLocked()
	if current == nil {
		return state, nil
	}
	return state, &models.Pairing{
		Left:  clonePlayer(current.Left),
		Right: clonePlayer(current.Right),
	}
}

// Next advances like Current and returns the resulting state as one
// consistent snapshot.
func (c *Controller) Next() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.advanceLocked()
	return c.snapshotLocked()
}

// Record applies a vote to the match awaiting a decision. It returns
// StateMatchResolved when more matches remain in the round and
// StateRoundComplete when the vote closed the round.
func (c *Controller) Record(v Vote) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checkCompleteLocked() {
		return models.StateTournamentComplete, ErrTournamentComplete
	}

	p1, ok := c.byID[v.P1ID]
	if !ok {
		return "", fmt.Errorf("%w: p1_id %d", ErrNotFound, v.P1ID)
	}
	p2, ok := c.byID[v.P2ID]
	if !ok {
		return "", fmt.Errorf("%w: p2_id %d", ErrNotFound, v.P2ID)
	}
	if p1 == p2 {
		return "", fmt.Errorf("%w: a player cannot face itself", ErrValidation)
	}

	var winner, loser *models.Player
	switch v.WinnerID {
	case p1.ID:
		winner, loser = p1, p2
	case p2.ID:
		winner, loser = p2, p1
	default:
		return "", fmt.Errorf("%w: winner_id %d is not in the match", ErrValidation, v.WinnerID)
	}

	if !c.isCurrentLocked(p1, p2) {
		return "", fmt.Errorf("%w: round %d match %d", ErrStaleMatch, c.round, c.index+1)
	}

	winner.Score++
	p1.AddOpponent(p2.ID)
	p2.AddOpponent(p1.ID)
	c.index++

	slog.Info("match recorded",
		"round", c.round,
		"winner_id", winner.ID,
		"loser_id", loser.ID,
	)
	c.observer.MatchRecorded(MatchEvent{
		Round:  c.round,
		Winner: winner,
		Loser:  loser,
		Voter:  v.Voter,
	})

	if c.index >= len(c.pairings) {
		c.rolloverLocked()
		return models.StateRoundComplete, nil
	}
	return models.StateMatchResolved, nil
}

// Complete reports whether fewer than two players are still active.
func (c *Controller) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkCompleteLocked()
}

// Round returns the current round number.
func (c *Controller) Round() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round
}

// Snapshot copies the round state without advancing it.
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Players returns copies of every player in registration order.
func (c *Controller) Players() []*models.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePlayers(c.players)
}

// Standings returns copies of every player, eliminated included, ordered by
// score descending then id ascending.
func (c *Controller) Standings() []*models.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePlayers(SortByStanding(c.players))
}

func (c *Controller) advanceLocked() (string, *models.Pairing) {
	for {
		if c.checkCompleteLocked() {
			return models.StateTournamentComplete, nil
		}
		if c.index >= len(c.pairings) {
			c.rolloverLocked()
			continue
		}

		current := c.pairings[c.index]
		if current.IsBye() {
			c.awardByeLocked(current.Left)
			c.index++
			continue
		}
		return models.StateAwaitingMatch, &current
	}
}

func (c *Controller) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		State:         models.StateAwaitingMatch,
		Round:         c.round,
		MatchIndex:    c.index,
		TotalMatches:  len(c.pairings),
		TotalPlayers:  len(c.players),
		ActivePlayers: len(ActivePlayers(c.players)),
		Standings:     clonePlayers(SortByStanding(c.players)),
	}
	if len(c.pairings) > 0 {
		snap.Progress = c.index * 100 / len(c.pairings)
	}

	switch {
	case snap.ActivePlayers < 2:
		snap.State = models.StateTournamentComplete
	case c.index >= len(c.pairings):
		snap.State = models.StateRoundComplete
	default:
		current := c.pairings[c.index]
		snap.CurrentPairing = &models.Pairing{
			Left:  clonePlayer(current.Left),
			Right: clonePlayer(current.Right),
		}
	}
	return snap
}

func (c *Controller) checkCompleteLocked() bool {
	if len(ActivePlayers(c.players)) >= 2 {
		return false
	}
	if !c.completed {
		c.completed = true
		slog.Info("tournament complete", "round", c.round)
		c.observer.TournamentCompleted(c.round, clonePlayers(SortByStanding(c.players)))
	}
	return true
}

func (c *Controller) isCurrentLocked(p1, p2 *models.Player) bool {
	if c.index >= len(c.pairings) {
		return false
	}
	current := c.pairings[c.index]
	if current.IsBye() {
		return false
	}
	return (current.Left == p1 && current.Right == p2) ||
		(current.Left == p2 && current.Right == p1)
}

// awardByeLocked gives the unpaired player one win, at most once per player.
func (c *Controller) awardByeLocked(p *models.Player) {
	if p.ByeAwarded {
		return
	}
	p.Score++
	p.ByeAwarded = true
	slog.Info("bye awarded", "round", c.round, "player_id", p.ID)
	c.observer.ByeAwarded(c.round, p)
}

// rolloverLocked closes the round: from round 2 on the lowest scorers are
// eliminated, then the survivors are re-paired by standing.
func (c *Controller) rolloverLocked() {
	if c.round >= 2 {
		if eliminated := Eliminate(c.players); len(eliminated) > 0 {
			ids := make([]int, len(eliminated))
			for i, p := range eliminated {
				ids[i] = p.ID
			}
			slog.Info("players eliminated", "round", c.round, "player_ids", ids)
			c.observer.PlayersEliminated(c.round, eliminated)
		}
	}

	c.round++
	c.pairings = SwissPair(SortByStanding(ActivePlayers(c.players)))
	c.index = 0
	slog.Info("round started", "round", c.round, "matches", len(c.pairings))
	c.observer.RoundStarted(c.round, c.pairings)
}

func clonePlayers(players []*models.Player) []*models.Player {
	out := make([]*models.Player, len(players))
	for i, p := range players {
		out[i] = clonePlayer(p)
	}
	return out
}

func clonePlayer(p *models.Player) *models.Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	cp.Opponents = make(map[int]struct{}, len(p.Opponents))
	for id := range p.Opponents {
		cp.Opponents[id] = struct{}{}
	}
	return &cp
}
