// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the cycletrack server.

# Schema Overview

A single table backs the whole application:

  - period: one row per logged period (id, user_id, start_date, end_date,
    created_at). A NULL end_date marks an ongoing period.

Cycle phases and forecasts are derived in memory and never persisted.

# Usage

Call CreateSchema once at server startup, after the connection is verified:

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

The DDL uses IF NOT EXISTS throughout and only constructs shared by sqlite
and postgres, so the same schema runs against either backend.
*/
package db
