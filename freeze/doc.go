// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package freeze writes a static copy of the read-only pages.

Each route in Routes is requested through the site's handler and written
to a file; HTML pages are written as index.html files with links made
relative, so the copy can be opened from disk or any static host. The
match page and the background colour form need a server and are dropped
from the copy.

	files, err := freeze.New(mux, cfg.ImagesDir).Freeze(ctx, "site", images)

The result can then be uploaded:

	pub, err := freeze.NewS3Publisher(ctx, "keycaps-site")
	err = pub.Publish(ctx, "site", files)
*/
package freeze
