// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/keycap-swiss/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names
const (
	PageIndex      = "index.html"
	PageList       = "list.html"
	PageTournament = "tournament.html"
	PageResults    = "results.html"
)

var pages = []string{PageIndex, PageList, PageTournament, PageResults}

// Page carries what every page shares.
type Page struct {
	Background string
}

type IndexPage struct {
	Page
	TotalPlayers int
	Round        int
	Complete     bool
}

type ListPage struct {
	Page
	Players []*models.Player
}

type TournamentPage struct {
	Page
	Round        int
	MatchIndex   int
	TotalMatches int
	Progress     int
	Left         *models.Player
	Right        *models.Player
}

type ResultsPage struct {
	Page
	Round     int
	Complete  bool
	Standings []models.StandingEntry
}

// Templates holds one parsed set per page, each layered over the layout.
type Templates struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Templates, error) {
	funcs := template.FuncMap{
		"ordinal":  humanize.Ordinal,
		"imageURL": ImageURL,
		"inc":      func(i int) int { return i + 1 },
	}

	t := &Templates{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// Render executes a page into w. Nothing is written if execution fails.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// ImageURL maps an image path relative to the images root to the URL it is
// served under.
func ImageURL(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/images/" + strings.Join(parts, "/")
}

// Standings ranks players as returned by the controller: score descending,
// id ascending.
func Standings(players []*models.Player) []models.StandingEntry {
	entries := make([]models.StandingEntry, len(players))
	for i, p := range players {
		entries[i] = models.StandingEntry{
			Rank:       i + 1,
			ID:         p.ID,
			Name:       p.Name,
			Score:      p.Score,
			Opponents:  p.OpponentIDs(),
			Eliminated: !p.Active,
		}
	}
	return entries
}
