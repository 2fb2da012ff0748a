// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/keycap-swiss/cliparse"
	"github.com/danielhkuo/keycap-swiss/db"
	"github.com/danielhkuo/keycap-swiss/handlers"
	"github.com/danielhkuo/keycap-swiss/middleware"
	"github.com/danielhkuo/keycap-swiss/tournament"
	"github.com/danielhkuo/keycap-swiss/views"
)

// Deps is everything the routes share. Archive and Metrics may be nil.
type Deps struct {
	Controller *tournament.Controller
	Templates  *views.Templates
	Theme      *handlers.Theme
	Archive    *db.Archive
	Metrics    http.Handler
}

func NewRouter(deps Deps, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(deps.Controller, deps.Templates, deps.Theme)
	tournamentHandler := handlers.NewTournamentHandler(deps.Controller, deps.Templates, deps.Theme, cfg)
	resultsHandler := handlers.NewResultsHandler(deps.Controller, deps.Templates, deps.Theme)
	historyHandler := handlers.NewHistoryHandler(deps.Archive)
	imageHandler := handlers.NewImageHandler(cfg.ImagesDir)

	voteLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.VoteRate), cfg.VoteBurst)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("POST /{$}", middleware.WithLogging(pageHandler.SetBackground))
	mux.HandleFunc("GET /list", middleware.WithLogging(pageHandler.List))

	// Matches (voting is rate limited per client)
	mux.HandleFunc("GET /tournament", middleware.WithLogging(tournamentHandler.Match))
	mux.HandleFunc("POST /tournament", middleware.WithLogging(middleware.RateLimit(voteLimiter, tournamentHandler.Vote)))

	// Results
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.Page))
	mux.HandleFunc("GET /results/chart.png", middleware.WithLogging(resultsHandler.Chart))
	mux.HandleFunc("GET /results.xlsx", middleware.WithLogging(resultsHandler.Spreadsheet))
	mux.HandleFunc("GET /results.json", middleware.WithLogging(middleware.CORS(resultsHandler.JSON)))
	mux.HandleFunc("GET /history.json", middleware.WithLogging(middleware.CORS(historyHandler.Matches)))

	// Set images
	mux.HandleFunc("GET /images/{path...}", middleware.WithLogging(imageHandler.Serve))

	// Metrics
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	return mux
}
