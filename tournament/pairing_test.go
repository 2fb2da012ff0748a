// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"math/rand/v2"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/keycap-swiss/models"
)

func newPlayers(t *testing.T, n int) []*models.Player {
	t.Helper()
	players := make([]*models.Player, n)
	for i := range players {
		p, err := models.NewPlayer(i+1, gofakeit.Color(), nil)
		require.NoError(t, err)
		players[i] = p
	}
	return players
}

// pairIDs flattens pairings to [left, right] ids; 0 marks a bye.
func pairIDs(pairings []models.Pairing) [][2]int {
	out := make([][2]int, len(pairings))
	for i, p := range pairings {
		out[i][0] = p.Left.ID
		if p.Right != nil {
			out[i][1] = p.Right.ID
		}
	}
	return out
}

func TestSwissPairEmpty(t *testing.T) {
	assert.Empty(t, SwissPair(nil))
}

func TestSwissPairSinglePlayerGetsBye(t *testing.T) {
	players := newPlayers(t, 1)
	pairings := SwissPair(players)

	require.Len(t, pairings, 1)
	assert.True(t, pairings[0].IsBye())
	assert.Equal(t, 1, pairings[0].Left.ID)
}

func TestSwissPairAvoidsRematch(t *testing.T) {
	players := newPlayers(t, 4)
	players[0].AddOpponent(2)
	players[1].AddOpponent(1)

	got := pairIDs(SwissPair(players))
	want := [][2]int{{1, 3}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairings mismatch (-want +got):\n%s", diff)
	}
}

func TestSwissPairFallsBackToRematch(t *testing.T) {
	players := newPlayers(t, 3)
	for _, a := range players {
		for _, b := range players {
			if a != b {
				a.AddOpponent(b.ID)
			}
		}
	}

	got := pairIDs(SwissPair(players))
	want := [][2]int{{1, 2}, {3, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairings mismatch (-want +got):\n%s", diff)
	}
}

// Greedy search pairs 1-3 and strands 2 against 4 even though
// 1-4 / 2-3 would have avoided every rematch.
func TestSwissPairGreedyCanForceRematch(t *testing.T) {
	players := newPlayers(t, 4)
	players[0].AddOpponent(2)
	players[1].AddOpponent(1)
	players[1].AddOpponent(4)
	players[3].AddOpponent(2)

	got := pairIDs(SwissPair(players))
	want := [][2]int{{1, 3}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairings mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, players[1].HasFaced(4), "second pairing is a rematch")
}

func TestSwissPairCoversEveryPlayerOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for n := 0; n <= 33; n++ {
		players := newPlayers(t, n)
		for _, p := range players {
			p.Score = rng.IntN(4)
			for k := 0; k < rng.IntN(n+1); k++ {
				p.AddOpponent(rng.IntN(n) + 1)
			}
		}

		pairings := SwissPair(SortByStanding(players))

		seen := map[int]int{}
		pairs, byes := 0, 0
		for _, p := range pairings {
			seen[p.Left.ID]++
			if p.IsBye() {
				byes++
				continue
			}
			pairs++
			seen[p.Right.ID]++
		}

		assert.LessOrEqual(t, byes, 1, "n=%d", n)
		assert.Equal(t, n, 2*pairs+byes, "n=%d", n)
		assert.Len(t, seen, n, "n=%d", n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "n=%d player %d", n, id)
		}
	}
}

func TestSortByStanding(t *testing.T) {
	players := newPlayers(t, 4)
	players[0].Score = 0
	players[1].Score = 2
	players[2].Score = 1
	players[3].Score = 2

	var got []int
	for _, p := range SortByStanding(players) {
		got = append(got, p.ID)
	}
	assert.Equal(t, []int{2, 4, 3, 1}, got)
	assert.Equal(t, 1, players[0].ID, "input order is untouched")
}

func TestRandomPairIsDeterministicForSeed(t *testing.T) {
	players := newPlayers(t, 7)

	first := pairIDs(RandomPair(players, rand.New(rand.NewPCG(42, 42))))
	second := pairIDs(RandomPair(players, rand.New(rand.NewPCG(42, 42))))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different pairings:\n%s", diff)
	}

	require.Len(t, first, 4)
	assert.Equal(t, 0, first[3][1], "odd player out gets the bye")
}
