// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/keycap-swiss/db"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/testutil"
	"github.com/danielhkuo/keycap-swiss/tournament"
)

func TestHistory_Disabled(t *testing.T) {
	handler := NewHistoryHandler(nil)

	w := httptest.NewRecorder()
	handler.Matches(w, testutil.MakeRequest("GET", "/history.json", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestHistory_ListsArchivedMatches(t *testing.T) {
	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	players := testutil.NewTestPlayers(t, 4)
	archive, err := db.NewArchive(context.Background(), conn, len(players))
	if err != nil {
		t.Fatalf("Failed to start archive: %v", err)
	}

	ctrl := tournament.NewController(players, tournament.WithSeed(2), tournament.WithObserver(archive))
	_, pairing := ctrl.Current()
	if _, err := ctrl.Record(tournament.Vote{WinnerID: pairing.Right.ID, P1ID: pairing.Left.ID, P2ID: pairing.Right.ID, Voter: "hash"}); err != nil {
		t.Fatalf("Failed to record vote: %v", err)
	}

	archive.PlayersEliminated(2, []*models.Player{players[3]})

	handler := NewHistoryHandler(archive)
	w := httptest.NewRecorder()
	handler.Matches(w, testutil.MakeRequest("GET", "/history.json", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp historyResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.RunID != archive.RunID() {
		t.Errorf("Expected run %s, got %s", archive.RunID(), resp.RunID)
	}
	if len(resp.Matches) != 1 {
		t.Fatalf("Expected 1 archived match, got %d", len(resp.Matches))
	}
	if m := resp.Matches[0]; m.WinnerID != pairing.Right.ID || m.LoserID != pairing.Left.ID || m.Round != 1 {
		t.Errorf("Unexpected match %+v", m)
	}
	if len(resp.Eliminations) != 1 || resp.Eliminations[players[3].ID] != 2 {
		t.Errorf("Expected player %d eliminated in round 2, got %v", players[3].ID, resp.Eliminations)
	}
}
