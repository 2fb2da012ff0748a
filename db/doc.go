// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists an append-only archive of tournament events.

The archive is optional. The live tournament state is kept in memory by
the tournament controller; the archive only mirrors what happened so a run
can be inspected after the process exits.

# Opening

Open accepts either driver supported by the server:

	conn, err := db.Open(db.TypeSQLite, "file:keycaps.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - tournament_run: One row per process start
  - match_result: Decided matches with an optional hashed voter address
  - bye: Byes awarded
  - elimination: Players dropped after a round

# Archive

Archive implements tournament.Observer. Register it with the controller
and every event is written as it happens:

	archive, err := db.NewArchive(ctx, conn, len(players))
	ctrl := tournament.NewController(players, tournament.WithObserver(archive))

Write failures are logged and do not affect voting.
*/
package db
