// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the keycap Swiss tournament server.

Keycap sets found on disk compete head to head. Each match shows two sets
side by side and a visitor picks the winner. Rounds are paired Swiss
style, and from round 2 on the lowest scorers drop out until one set is
left.

# Starting the Server

Point the server at an images root:

	go run . -i ./images

Expected layout:

	images/dsa-keycaps/<set>/kits_pics/*.png
	images/gmk-keycaps/<set>/rendering_pics/*.jpg

A .env file in the working directory is loaded before the environment is
read.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - IMAGES_DIR (-i): Images root (default: images)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Match archive (sqlite or postgres)
  - TOURNAMENT_SEED (-seed): Reproducible first round
  - FREEZE_DIR (-freeze), S3_BUCKET (-s3-bucket): Static export

See package cliparse for the full list.

# Static Export

With -freeze the server renders the read-only pages to a directory
instead of listening, and with -s3-bucket uploads them:

	go run . -i ./images -freeze ./site -s3-bucket keycaps-site

# Architecture

  - registry: Image set discovery
  - tournament: Pairing, elimination and the round controller
  - handlers: HTTP request handlers (pages, matches, results)
  - views: Embedded HTML templates
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, rate limiting, response helpers
  - db: Optional match archive
  - metrics: Prometheus collectors
  - freeze: Static export
  - cliparse: Configuration parsing

State lives in memory and resets on restart.
*/
package main
