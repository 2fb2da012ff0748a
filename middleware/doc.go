// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Vote Rate Limiting

Limit how fast a single client can post votes:

	limiter := middleware.NewIPRateLimiter(rate.Limit(5), 10)
	mux.HandleFunc("POST /tournament",
		middleware.WithLogging(middleware.RateLimit(limiter, h.Vote)))

Clients over the limit get 429. Idle clients are pruned once the table
grows past a few hundred entries.

# CORS

Read-only JSON exports can be fetched from any origin:

	mux.HandleFunc("GET /results.json", middleware.WithLogging(middleware.CORS(h.JSON)))

# Responses

JSON routes:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

HTML form routes:

	middleware.ErrorPage(w, http.StatusBadRequest, "winner_id must be an integer")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for rate limiting and for the hashed voter column of the archive.
*/
package middleware
