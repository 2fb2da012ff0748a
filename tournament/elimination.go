// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import "github.com/danielhkuo/keycap-swiss/models"

// minActiveForElimination is the smallest field the elimination rule will cut.
const minActiveForElimination = 3

// Eliminate deactivates every active player sitting on the lowest score and
// returns them. Nothing happens when fewer than three players are active or
// when every active player shares the lowest score.
func Eliminate(players []*models.Player) []*models.Player {
	active := ActivePlayers(players)
	if len(active) < minActiveForElimination {
		return nil
	}

	minScore := active[0].Score
	maxScore := active[0].Score
	for _, p := range active[1:] {
		minScore = min(minScore, p.Score)
		maxScore = max(maxScore, p.Score)
	}
	if minScore == maxScore {
		return nil
	}

	var eliminated []*models.Player
	for _, p := range active {
		if p.Score == minScore {
			p.Active = false
			eliminated = append(eliminated, p)
		}
	}
	return eliminated
}

// ActivePlayers filters players down to those still in the tournament,
// keeping their order.
func ActivePlayers(players []*models.Player) []*models.Player {
	active := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}
