// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/keycap-swiss/cliparse"
	"github.com/danielhkuo/keycap-swiss/models"
)

// pngHeader is enough of a PNG for content sniffing
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// MakeImageTree writes an images root under t.TempDir().
// Keys are set directories relative to the root ("dsa-keycaps/pulse"),
// values are image paths relative to the set ("kits_pics/1.png").
func MakeImageTree(t *testing.T, sets map[string][]string) string {
	t.Helper()

	root := t.TempDir()
	for setDir, images := range sets {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(setDir)), 0o755); err != nil {
			t.Fatalf("Failed to create set dir: %v", err)
		}
		for _, img := range images {
			path := filepath.Join(root, filepath.FromSlash(setDir), filepath.FromSlash(img))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatalf("Failed to create image dir: %v", err)
			}
			if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
				t.Fatalf("Failed to write image: %v", err)
			}
		}
	}
	return root
}

// NewTestPlayers registers n active players with ids 1..n
func NewTestPlayers(t *testing.T, n int) []*models.Player {
	t.Helper()

	players := make([]*models.Player, 0, n)
	for i := 1; i <= n; i++ {
		p, err := models.NewPlayer(i, fmt.Sprintf("DSA Set%d", i), []string{fmt.Sprintf("dsa-keycaps/set%d/kits_pics/1.png", i)})
		if err != nil {
			t.Fatalf("Failed to create player: %v", err)
		}
		players = append(players, p)
	}
	return players
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(imagesDir string) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		ImagesDir:    imagesDir,
		Sources:      []string{"dsa-keycaps", "gmk-keycaps"},
		DatabaseType: "sqlite",
		Background:   models.DefaultBackground,
		Seed:         1,
		IPHashSalt:   "test-ip-salt",
		VoteRate:     1000,
		VoteBurst:    1000,
		Metrics:      true,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// MakeFormRequest creates a url-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// VoteForm builds the form the match page posts
func VoteForm(winner, p1, p2 int) url.Values {
	return url.Values{
		models.FieldWinnerID: {fmt.Sprint(winner)},
		models.FieldP1ID:     {fmt.Sprint(p1)},
		models.FieldP2ID:     {fmt.Sprint(p2)},
	}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
