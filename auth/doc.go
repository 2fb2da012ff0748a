// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and voter-hash utilities for the match archive.

# ID Generation

Random hex IDs for archive records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Voter Hashing

Votes are archived with a salted hash of the client address so repeated
voting from one client can be spotted without storing the address:

	hash := auth.VoterHash(middleware.GetClientIP(r), cfg.IPHashSalt)

VoterHash returns an empty string when no salt is configured. HashIP returns
the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
