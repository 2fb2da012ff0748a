// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
)

func TestTournament_CountsEvents(t *testing.T) {
	m := New(prometheus.NewRegistry(), 5)

	p := &models.Player{ID: 1}
	q := &models.Player{ID: 2}

	m.RoundStarted(1, nil)
	m.MatchRecorded(tournament.MatchEvent{Round: 1, Winner: p, Loser: q})
	m.MatchRecorded(tournament.MatchEvent{Round: 1, Winner: q, Loser: p})
	m.ByeAwarded(1, p)
	m.RoundStarted(2, nil)
	m.PlayersEliminated(2, []*models.Player{p, q})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.matches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.byes))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.eliminations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.round))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.active))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.complete))

	m.TournamentCompleted(3, nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.complete))
}

func TestTournament_Handler(t *testing.T) {
	m := New(nil, 4)
	m.RoundStarted(1, nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "keycap_swiss_round 1"), body)
	assert.True(t, strings.Contains(body, "keycap_swiss_active_players 4"), body)
}

func TestTournament_ObservesController(t *testing.T) {
	m := New(nil, 3)
	players := []*models.Player{
		{ID: 1, Active: true, Opponents: map[int]struct{}{}},
		{ID: 2, Active: true, Opponents: map[int]struct{}{}},
		{ID: 3, Active: true, Opponents: map[int]struct{}{}},
	}

	ctrl := tournament.NewController(players, tournament.WithSeed(1), tournament.WithObserver(m))
	_, pairing := ctrl.Current()
	require.NotNil(t, pairing)

	_, err := ctrl.Record(tournament.Vote{WinnerID: pairing.Left.ID, P1ID: pairing.Left.ID, P2ID: pairing.Right.ID})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.round))
}
