// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the cycletrack server.

Configuration comes from CLI flags with environment-variable fallback; a
.env file loaded in main feeds the latter during development.

# Settings

  - PORT (-p): server port (default 3324)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite file path (default cycletrack.db) or
    postgres connection string (required for postgres)
  - CYCLETRACK_USER (-u): user id the single-user server tracks
    (default "local")
*/
package cliparse
