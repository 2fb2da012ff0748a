// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/keycap-swiss/middleware"
	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResultsHandler struct {
	ctrl  *tournament.Controller
	tmpl  *views.Templates
	theme *Theme
}

func NewResultsHandler(ctrl *tournament.Controller, tmpl *views.Templates, theme *Theme) *ResultsHandler {
	return &ResultsHandler{ctrl: ctrl, tmpl: tmpl, theme: theme}
}

// results reads the ranking without advancing the round
func (h *ResultsHandler) results() models.ResultsResponse {
	snap := h.ctrl.Snapshot()
	return models.ResultsResponse{
		Round:     snap.Round,
		Complete:  snap.State == models.StateTournamentComplete,
		Standings: views.Standings(snap.Standings),
	}
}

// Page handles GET /results
func (h *ResultsHandler) Page(w http.ResponseWriter, r *http.Request) {
	res := h.results()
	render(w, h.tmpl, views.PageResults, views.ResultsPage{
		Page:      h.theme.page(),
		Round:     res.Round,
		Complete:  res.Complete,
		Standings: res.Standings,
	})
}

// JSON handles GET /results.json
func (h *ResultsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.results())
}

// Chart handles GET /results/chart.png
func (h *ResultsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	png, err := RenderScoreChart(h.results().Standings)
	if err != nil {
		slog.Error("failed to render chart", "error", err)
		middleware.ErrorPage(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// Spreadsheet handles GET /results.xlsx
func (h *ResultsHandler) Spreadsheet(w http.ResponseWriter, r *http.Request) {
	res := h.results()
	data, err := RenderSpreadsheet(res)
	if err != nil {
		slog.Error("failed to render spreadsheet", "error", err)
		middleware.ErrorPage(w, http.StatusInternalServerError, "failed to render spreadsheet")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
	w.Write(data)
}
