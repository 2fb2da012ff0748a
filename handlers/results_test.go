// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/testutil"
	"github.com/danielhkuo/keycap-swiss/tournament"
)

// playOneMatch lets the left player of the current match win
func playOneMatch(t *testing.T, site *testSite) (winner, loser int) {
	t.Helper()
	_, pairing := site.ctrl.Current()
	if pairing == nil {
		t.Fatal("Expected a match to play")
	}
	_, err := site.ctrl.Record(tournament.Vote{
		WinnerID: pairing.Left.ID,
		P1ID:     pairing.Left.ID,
		P2ID:     pairing.Right.ID,
	})
	if err != nil {
		t.Fatalf("Failed to record vote: %v", err)
	}
	return pairing.Left.ID, pairing.Right.ID
}

func TestResultsJSON(t *testing.T) {
	site := setupSite(t, 4)
	handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	winner, loser := playOneMatch(t, site)

	w := httptest.NewRecorder()
	handler.JSON(w, testutil.MakeRequest("GET", "/results.json", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Round != 1 || resp.Complete {
		t.Errorf("Expected round 1 in progress, got round %d complete=%v", resp.Round, resp.Complete)
	}
	if len(resp.Standings) != 4 {
		t.Fatalf("Expected 4 standings, got %d", len(resp.Standings))
	}

	top := resp.Standings[0]
	if top.ID != winner || top.Score != 1 || top.Rank != 1 {
		t.Errorf("Expected winner %d ranked first with 1 point, got %+v", winner, top)
	}
	if len(top.Opponents) != 1 || top.Opponents[0] != loser {
		t.Errorf("Expected opponents [%d], got %v", loser, top.Opponents)
	}

	// Ties are broken by ascending id
	for i := 2; i < len(resp.Standings); i++ {
		prev, cur := resp.Standings[i-1], resp.Standings[i]
		if prev.Score == cur.Score && prev.ID > cur.ID {
			t.Errorf("Tie not broken by id: %d before %d", prev.ID, cur.ID)
		}
	}
}

func TestResultsJSON_DoesNotAdvance(t *testing.T) {
	site := setupSite(t, 3)
	handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	playOneMatch(t, site)

	// The round-1 bye is still pending; results must not award it
	before := site.ctrl.Snapshot()
	w := httptest.NewRecorder()
	handler.JSON(w, testutil.MakeRequest("GET", "/results.json", nil))
	after := site.ctrl.Snapshot()

	if before.MatchIndex != after.MatchIndex || before.Round != after.Round {
		t.Errorf("Results advanced the round state: %+v -> %+v", before, after)
	}
}

func TestResultsPage(t *testing.T) {
	site := setupSite(t, 4)
	handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	winner, _ := playOneMatch(t, site)

	w := httptest.NewRecorder()
	handler.Page(w, testutil.MakeRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	doc := parseHTML(t, w)
	items := doc.Find("#standings li")
	if items.Length() != 4 {
		t.Fatalf("Expected 4 ranked sets, got %d", items.Length())
	}
	id, _ := items.First().Attr("data-id")
	if id != strconv.Itoa(winner) {
		t.Errorf("Expected set %d first, got %s", winner, id)
	}
	if !strings.HasPrefix(strings.TrimSpace(items.First().Text()), "1st:") {
		t.Errorf("Expected ordinal rank, got %q", items.First().Text())
	}
	if doc.Find(`img[src="/results/chart.png"]`).Length() != 1 {
		t.Error("Expected the score chart on the page")
	}
}

func TestResultsPage_Complete(t *testing.T) {
	site := setupSite(t, 1)
	handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	site.ctrl.Current()

	w := httptest.NewRecorder()
	handler.Page(w, testutil.MakeRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := parseHTML(t, w).Find("h1").Text(); got != "Tournament Complete!" {
		t.Errorf("Expected completion heading, got %q", got)
	}
}

func TestResultsChart(t *testing.T) {
	tests := []struct {
		name  string
		votes int
	}{
		{"no scores yet", 0},
		{"after a match", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := setupSite(t, 4)
			handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
			for i := 0; i < tt.votes; i++ {
				playOneMatch(t, site)
			}

			w := httptest.NewRecorder()
			handler.Chart(w, testutil.MakeRequest("GET", "/results/chart.png", nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			if ct := w.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected image/png, got %q", ct)
			}
			if sniffed := http.DetectContentType(w.Body.Bytes()); sniffed != "image/png" {
				t.Errorf("Body is not a PNG: %s", sniffed)
			}
		})
	}
}

func TestResultsSpreadsheet(t *testing.T) {
	site := setupSite(t, 4)
	handler := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	winner, loser := playOneMatch(t, site)

	w := httptest.NewRecorder()
	handler.Spreadsheet(w, testutil.MakeRequest("GET", "/results.xlsx", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Unexpected content type %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Standings")
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected header plus 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][2] != "Score" {
		t.Errorf("Unexpected header %v", rows[0])
	}

	first := rows[1]
	if first[0] != "1st" || first[2] != "1" {
		t.Errorf("Expected winner row first, got %v", first)
	}
	if first[3] != strconv.Itoa(loser) {
		t.Errorf("Expected opponents column %d, got %q", loser, first[3])
	}
	if !strings.Contains(first[1], "Set"+strconv.Itoa(winner)) {
		t.Errorf("Expected winner name in row, got %q", first[1])
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{1, 12, 3}); got != "1, 12, 3" {
		t.Errorf("Unexpected join %q", got)
	}
	if got := joinInts(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
