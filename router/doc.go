// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the keycap tournament.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{
		Controller: ctrl,
		Templates:  tmpl,
		Theme:      handlers.NewTheme(cfg.Background),
	}, cfg)

# Endpoints

Health:

	GET /health

Pages:

	GET  /     - Summary and background colour form
	POST /     - Set the background colour
	GET  /list - Every set with its images

Matches:

	GET  /tournament - Current match
	POST /tournament - Submit a decision (rate limited per client)

Results (public, never advance the round):

	GET /results           - Ranked standings
	GET /results/chart.png - Score chart
	GET /results.xlsx      - Spreadsheet export
	GET /results.json      - JSON export
	GET /history.json      - Archived matches and eliminations (archive enabled only)

Static:

	GET /images/{path...} - Set images
	GET /metrics          - Prometheus metrics (when enabled)
*/
package router
