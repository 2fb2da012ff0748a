// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/keycap-swiss/db"
	"github.com/danielhkuo/keycap-swiss/middleware"
)

type HistoryHandler struct {
	archive *db.Archive
}

// NewHistoryHandler accepts a nil archive when archiving is disabled.
func NewHistoryHandler(archive *db.Archive) *HistoryHandler {
	return &HistoryHandler{archive: archive}
}

type historyResponse struct {
	RunID        string           `json:"run_id"`
	Matches      []db.MatchRecord `json:"matches"`
	Eliminations map[int]int      `json:"eliminations"` // player id -> round
}

// Matches handles GET /history.json
func (h *HistoryHandler) Matches(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match archive is disabled")
		return
	}

	matches, err := h.archive.Matches(r.Context())
	if err != nil {
		slog.Error("failed to query match history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	eliminations, err := h.archive.Eliminations(r.Context())
	if err != nil {
		slog.Error("failed to query eliminations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, historyResponse{
		RunID:        h.archive.RunID(),
		Matches:      matches,
		Eliminations: eliminations,
	})
}
