// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/keycap-swiss/auth"
	"github.com/danielhkuo/keycap-swiss/cliparse"
	"github.com/danielhkuo/keycap-swiss/middleware"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

type TournamentHandler struct {
	ctrl  *tournament.Controller
	tmpl  *views.Templates
	theme *Theme
	cfg   cliparse.Config
}

func NewTournamentHandler(ctrl *tournament.Controller, tmpl *views.Templates, theme *Theme, cfg cliparse.Config) *TournamentHandler {
	return &TournamentHandler{ctrl: ctrl, tmpl: tmpl, theme: theme, cfg: cfg}
}

// Match handles GET /tournament
// Byes and finished rounds are resolved before the next match is shown.
func (h *TournamentHandler) Match(w http.ResponseWriter, r *http.Request) {
	snap := h.ctrl.Next()
	if snap.State == models.StateTournamentComplete || snap.CurrentPairing == nil {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return
	}

	render(w, h.tmpl, views.PageTournament, views.TournamentPage{
		Page:         h.theme.page(),
		Round:        snap.Round,
		MatchIndex:   snap.MatchIndex,
		TotalMatches: snap.TotalMatches,
		Progress:     snap.Progress,
		Left:         snap.CurrentPairing.Left,
		Right:        snap.CurrentPairing.Right,
	})
}

// Vote handles POST /tournament
func (h *TournamentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if h.ctrl.Complete() {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.ErrorPage(w, http.StatusBadRequest, "invalid form")
		return
	}

	var ids [3]int
	for i, field := range []string{models.FieldWinnerID, models.FieldP1ID, models.FieldP2ID} {
		id, err := formInt(r, field)
		if err != nil {
			middleware.ErrorPage(w, http.StatusBadRequest, err.Error())
			return
		}
		ids[i] = id
	}

	_, err := h.ctrl.Record(tournament.Vote{
		WinnerID: ids[0],
		P1ID:     ids[1],
		P2ID:     ids[2],
		Voter:    auth.VoterHash(middleware.GetClientIP(r), h.cfg.IPHashSalt),
	})

	switch {
	case err == nil:
		http.Redirect(w, r, "/tournament", http.StatusSeeOther)
	case errors.Is(err, tournament.ErrStaleMatch):
		slog.Info("stale vote ignored", "error", err)
		http.Redirect(w, r, "/tournament", http.StatusSeeOther)
	case errors.Is(err, tournament.ErrTournamentComplete):
		http.Redirect(w, r, "/results", http.StatusSeeOther)
	case errors.Is(err, tournament.ErrNotFound):
		middleware.ErrorPage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tournament.ErrValidation):
		middleware.ErrorPage(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorPage(w, http.StatusInternalServerError, "")
	}
}

func formInt(r *http.Request, field string) (int, error) {
	raw := r.PostForm.Get(field)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return n, nil
}
