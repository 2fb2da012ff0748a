// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/keycap-swiss/models"
)

func scored(t *testing.T, scores ...int) []*models.Player {
	t.Helper()
	players := newPlayers(t, len(scores))
	for i, s := range scores {
		players[i].Score = s
	}
	return players
}

func activeIDs(players []*models.Player) []int {
	var ids []int
	for _, p := range ActivePlayers(players) {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestEliminate(t *testing.T) {
	tests := []struct {
		name           string
		scores         []int
		inactive       []int
		wantEliminated []int
		wantActive     []int
	}{
		{
			name:       "all tied keeps everyone",
			scores:     []int{1, 1, 1, 1},
			wantActive: []int{1, 2, 3, 4},
		},
		{
			name:       "two players are never cut",
			scores:     []int{3, 0},
			wantActive: []int{1, 2},
		},
		{
			name:           "lowest group removed",
			scores:         []int{2, 1, 0, 0, 2},
			wantEliminated: []int{3, 4},
			wantActive:     []int{1, 2, 5},
		},
		{
			name:           "inactive players ignored when finding the minimum",
			scores:         []int{0, 2, 1, 1},
			inactive:       []int{1},
			wantEliminated: []int{3, 4},
			wantActive:     []int{2},
		},
		{
			name:       "fewer than three active after earlier cuts",
			scores:     []int{0, 0, 2, 1},
			inactive:   []int{1, 2},
			wantActive: []int{3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := scored(t, tt.scores...)
			for _, id := range tt.inactive {
				players[id-1].Active = false
			}

			var gotEliminated []int
			for _, p := range Eliminate(players) {
				gotEliminated = append(gotEliminated, p.ID)
			}

			assert.Equal(t, tt.wantEliminated, gotEliminated)
			assert.Equal(t, tt.wantActive, activeIDs(players))
		})
	}
}

func TestEliminateOnlyLowestScoreLeaves(t *testing.T) {
	players := scored(t, 3, 2, 2, 1, 1, 1)
	before := len(ActivePlayers(players))

	eliminated := Eliminate(players)

	assert.Len(t, eliminated, 3)
	assert.Equal(t, before-3, len(ActivePlayers(players)))
	for _, p := range eliminated {
		assert.False(t, p.Active)
		assert.Equal(t, 1, p.Score, "scores are not touched")
	}
}
