// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import "github.com/danielhkuo/keycap-swiss/models"

// MatchEvent describes one decided head-to-head.
type MatchEvent struct {
	Round  int
	Winner *models.Player
	Loser  *models.Player
	Voter  string // hashed client address, may be empty
}

// Observer receives controller events. Calls happen while the controller
// holds its lock, so implementations must not call back into it.
type Observer interface {
	RoundStarted(round int, pairings []models.Pairing)
	MatchRecorded(ev MatchEvent)
	ByeAwarded(round int, player *models.Player)
	PlayersEliminated(round int, eliminated []*models.Player)
	TournamentCompleted(round int, standings []*models.Player)
}

// NopObserver ignores every event. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) RoundStarted(int, []models.Pairing) {}
func (NopObserver) MatchRecorded(MatchEvent) {}
func (NopObserver) ByeAwarded(int, *models.Player) {}
func (NopObserver) PlayersEliminated(int, []*models.Player) {}
func (NopObserver) TournamentCompleted(int, []*models.Player) {}

// Observers fans each event out in order.
type Observers []Observer

func (o Observers) RoundStarted(round int, pairings []models.Pairing) {
	for _, obs := range o {
		obs.RoundStarted(round, pairings)
	}
}

func (o Observers) MatchRecorded(ev MatchEvent) {
	for _, obs := range o {
		obs.MatchRecorded(ev)
	}
}

func (o Observers) ByeAwarded(round int, player *models.Player) {
	for _, obs := range o {
		obs.ByeAwarded(round, player)
	}
}

func (o Observers) PlayersEliminated(round int, eliminated []*models.Player) {
	for _, obs := range o {
		obs.PlayersEliminated(round, eliminated)
	}
}

func (o Observers) TournamentCompleted(round int, standings []*models.Player) {
	for _, obs := range o {
		obs.TournamentCompleted(round, standings)
	}
}
