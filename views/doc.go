// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages from templates embedded in the binary.

Every page is layered over templates/layout.html, which applies the chosen
background colour. Links are root-relative; the freeze package rewrites
them when writing a static copy.

	tmpl, err := views.New()
	err = tmpl.Render(w, views.PageResults, views.ResultsPage{...})
*/
package views
