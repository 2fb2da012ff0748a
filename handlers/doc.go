// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the keycap tournament.

# Handler Types

Each handler is a struct holding the controller and whatever it renders
with:

  - PageHandler: Summary page, background colour, set list
  - TournamentHandler: Match page and vote submission
  - ResultsHandler: Standings as HTML, PNG chart, XLSX and JSON
  - HistoryHandler: Archived matches of the current run
  - ImageHandler: Set images from the images root

Handlers are created via constructor functions:

	pages := handlers.NewPageHandler(ctrl, tmpl, theme)

Theme holds the page background. It is shared by every page handler and
changed only through POST /.

# Voting Flow

The match page posts the decision back as a form:

	GET  /tournament → Match (resolves byes and round changes first)
	POST /tournament → Vote  (winner_id, p1_id, p2_id)

Every outcome of a well-formed vote is a 303:

  - accepted or stale: back to /tournament
  - tournament over: to /results

Malformed ids give 400, unknown ids 404.

# Exports

RenderScoreChart and RenderSpreadsheet build the chart and workbook from
the standings. Reading results never advances the round.
*/
package handlers
