// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are decoded first (with defaults), then command-line
flags override them. CLI flags take precedence over environment variables.

# Settings

	-p          PORT             Server port (default: 3318)
	-i          IMAGES_DIR       Images root (default: images)
	-sources    SET_SOURCES      Set source dirs (default: dsa-keycaps,gmk-keycaps)
	-d          DATABASE_URL     Match archive URL (empty disables the archive)
	-t          DATABASE_TYPE    sqlite or postgres (default: sqlite)
	-ip-salt    IP_HASH_SALT     Salt for hashed voter addresses
	-bg         TOURNAMENT_BG    Initial background colour (default: #f2f2f2)
	-seed       TOURNAMENT_SEED  First-round shuffle seed (0 = time based)
	-vote-rate  VOTE_RATE        Votes per second per client (default: 5)
	-vote-burst VOTE_BURST       Vote burst per client (default: 10)
	-metrics    METRICS_ENABLED  Expose /metrics (default: true)
	-freeze     FREEZE_DIR       Write a static copy of the site and exit
	-s3-bucket  S3_BUCKET        Publish the static copy to S3

# Validation

ParseFlags returns an error if:

  - the port is outside 1-65535
  - no set source is given
  - the database type is not sqlite or postgres
  - the background is not a #rrggbb colour
  - the vote rate or burst is not positive
  - an S3 bucket is given without a freeze directory
*/
package cliparse
