// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry discovers keycap image sets on disk and registers them as
players.

The expected layout under the images root is:

	<source>/<set>/kits_pics/*.{png,jpg,jpeg,gif}
	<source>/<set>/rendering_pics/*.{png,jpg,jpeg,gif}

where source defaults to dsa-keycaps and gmk-keycaps. Image paths are kept
relative to the root so they can be served under /images/.
*/
package registry
