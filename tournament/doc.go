// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tournament runs the Swiss-style elimination between image sets.

# Rounds

Round 1 pairs every player in shuffled order. Each later round sorts the
active players by score (descending, lower id first on ties) and pairs them
with SwissPair. An odd player out receives a bye worth one win; a player
collects a bye win at most once.

When a round is exhausted the Controller rolls over:

	round >= 2 → Eliminate (lowest score group leaves)
	round++
	pairings = SwissPair(SortByStanding(active))

The tournament is complete once fewer than two players are active.

# Elimination

Eliminate removes every active player on the minimum score, unless all
active players share it or fewer than three are active.

Two active players are never cut down to one, so a final pair keeps playing
new rounds against each other until the process restarts.

# Controller

	c := tournament.NewController(players, tournament.WithSeed(42))
	state, pairing := c.Current()
	state, err := c.Record(tournament.Vote{WinnerID: 3, P1ID: 3, P2ID: 7})

Record rejects unknown ids (ErrNotFound), winners outside the match
(ErrValidation), and votes for a match other than the one awaiting a decision
(ErrStaleMatch). Mutations are serialized by an internal mutex.

# Events

Attach an Observer with WithObserver to receive round, match, bye,
elimination, and completion events. The db and metrics packages both
implement it.

Observers run synchronously while the controller lock is held. A slow
observer, such as an archive on an unresponsive database, delays every vote
and page view until it returns.
*/
package tournament
