// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"math/rand/v2"
	"sort"

	"github.com/danielhkuo/keycap-swiss/models"
)

// SortByStanding returns a copy of players ordered by score descending,
// ties broken by lower id first.
func SortByStanding(players []*models.Player) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// SwissPair pairs players already sorted by standing. The top remaining
// player meets the first remaining player it has not faced; when everyone
// left is a rematch it meets the next player anyway. An odd player out gets
// a bye.
//
// The search is greedy with no backtracking, so a rematch can be produced
// even when a rematch-free pairing of the whole field exists.
func SwissPair(players []*models.Player) []models.Pairing {
	pairings := make([]models.Pairing, 0, (len(players)+1)/2)
	unpaired := make([]*models.Player, len(players))
	copy(unpaired, players)

	for len(unpaired) > 1 {
		top := unpaired[0]
		unpaired = unpaired[1:]

		pick := 0
		for i, candidate := range unpaired {
			if !top.HasFaced(candidate.ID) {
				pick = i
				break
			}
		}

		opponent := unpaired[pick]
		unpaired = append(unpaired[:pick], unpaired[pick+1:]...)
		pairings = append(pairings, models.Pairing{Left: top, Right: opponent})
	}

	if len(unpaired) == 1 {
		pairings = append(pairings, models.Pairing{Left: unpaired[0]})
	}
	return pairings
}

// RandomPair shuffles players with rng and pairs them in order. Used for the
// first round, where there is no score to sort by.
func RandomPair(players []*models.Player, rng *rand.Rand) []models.Pairing {
	shuffled := make([]*models.Player, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pairings := make([]models.Pairing, 0, (len(shuffled)+1)/2)
	for len(shuffled) > 1 {
		pairings = append(pairings, models.Pairing{Left: shuffled[0], Right: shuffled[1]})
		shuffled = shuffled[2:]
	}
	if len(shuffled) == 1 {
		pairings = append(pairings, models.Pairing{Left: shuffled[0]})
	}
	return pairings
}
