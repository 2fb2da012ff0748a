// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/testutil"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

type testSite struct {
	ctrl  *tournament.Controller
	tmpl  *views.Templates
	theme *Theme
}

func setupSite(t *testing.T, players int) *testSite {
	t.Helper()

	tmpl, err := views.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return &testSite{
		ctrl:  tournament.NewController(testutil.NewTestPlayers(t, players), tournament.WithSeed(1)),
		tmpl:  tmpl,
		theme: NewTheme(models.DefaultBackground),
	}
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func TestIndex(t *testing.T) {
	site := setupSite(t, 6)
	handler := NewPageHandler(site.ctrl, site.tmpl, site.theme)

	w := httptest.NewRecorder()
	handler.Index(w, testutil.MakeRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}

	doc := parseHTML(t, w)
	if got := doc.Find("#total-players").Text(); got != "6" {
		t.Errorf("Expected 6 registered players, got %q", got)
	}
	if got := doc.Find("#current-round").Text(); got != "1" {
		t.Errorf("Expected round 1, got %q", got)
	}
}

func TestSetBackground(t *testing.T) {
	tests := []struct {
		name           string
		color          string
		expectedStatus int
		expectedBg     string
	}{
		{"valid colour", "#336699", http.StatusSeeOther, "#336699"},
		{"uppercase hex", "#ABCDEF", http.StatusSeeOther, "#ABCDEF"},
		{"missing", "", http.StatusBadRequest, models.DefaultBackground},
		{"named colour", "red", http.StatusBadRequest, models.DefaultBackground},
		{"css injection", "#fff;}body{display:none", http.StatusBadRequest, models.DefaultBackground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := setupSite(t, 2)
			handler := NewPageHandler(site.ctrl, site.tmpl, site.theme)

			w := httptest.NewRecorder()
			handler.SetBackground(w, testutil.MakeFormRequest("/", url.Values{models.FieldBgColor: {tt.color}}))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusSeeOther {
				testutil.AssertRedirect(t, w, "/")
			}
			if got := site.theme.Background(); got != tt.expectedBg {
				t.Errorf("Expected background %s, got %s", tt.expectedBg, got)
			}
		})
	}
}

func TestBackgroundAppliesToEveryPage(t *testing.T) {
	site := setupSite(t, 4)
	site.theme.SetBackground("#102030")

	pages := NewPageHandler(site.ctrl, site.tmpl, site.theme)
	results := NewResultsHandler(site.ctrl, site.tmpl, site.theme)
	match := NewTournamentHandler(site.ctrl, site.tmpl, site.theme, testutil.GetTestConfig(t.TempDir()))

	for name, h := range map[string]http.HandlerFunc{
		"index":      pages.Index,
		"list":       pages.List,
		"results":    results.Page,
		"tournament": match.Match,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h(w, testutil.MakeRequest("GET", "/", nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			doc := parseHTML(t, w)
			if style := doc.Find("style").Text(); !strings.Contains(style, "#102030") {
				t.Errorf("Expected background in page style")
			}
		})
	}
}

func TestList(t *testing.T) {
	site := setupSite(t, 3)
	handler := NewPageHandler(site.ctrl, site.tmpl, site.theme)

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/list", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	doc := parseHTML(t, w)
	sets := doc.Find("li.set")
	if sets.Length() != 3 {
		t.Fatalf("Expected 3 sets, got %d", sets.Length())
	}

	// Registration order, not standing order
	sets.Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		if want := strconv.Itoa(i + 1); id != want {
			t.Errorf("Expected set %s at position %d, got %s", want, i, id)
		}
		src, _ := s.Find("img").Attr("src")
		if src == "" {
			t.Errorf("Expected an image for set %s", id)
		}
	})
}
