// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/keycap-swiss/cliparse"
	"github.com/danielhkuo/keycap-swiss/middleware"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

type PageHandler struct {
	ctrl  *tournament.Controller
	tmpl  *views.Templates
	theme *Theme
}

func NewPageHandler(ctrl *tournament.Controller, tmpl *views.Templates, theme *Theme) *PageHandler {
	return &PageHandler{ctrl: ctrl, tmpl: tmpl, theme: theme}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.ctrl.Snapshot()
	render(w, h.tmpl, views.PageIndex, views.IndexPage{
		Page:         h.theme.page(),
		TotalPlayers: snap.TotalPlayers,
		Round:        snap.Round,
		Complete:     snap.State == models.StateTournamentComplete,
	})
}

// SetBackground handles POST /
func (h *PageHandler) SetBackground(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorPage(w, http.StatusBadRequest, "invalid form")
		return
	}

	color := r.PostForm.Get(models.FieldBgColor)
	if !cliparse.ValidColor(color) {
		middleware.ErrorPage(w, http.StatusBadRequest, "bg_color must be #rrggbb")
		return
	}

	h.theme.SetBackground(color)
	slog.Info("background changed", "color", color)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// List handles GET /list
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, views.PageList, views.ListPage{
		Page:    h.theme.page(),
		Players: h.ctrl.Players(),
	})
}

func render(w http.ResponseWriter, tmpl *views.Templates, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Render(w, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		middleware.ErrorPage(w, http.StatusInternalServerError, "")
	}
}
