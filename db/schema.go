// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL is restricted to
// the dialect both sqlite and postgres accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Logged periods. end_date NULL means the period is ongoing.
-- Dates are YYYY-MM-DD text so sqlite and postgres order them identically.
CREATE TABLE IF NOT EXISTS period (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_period_user_id ON period(user_id);
CREATE INDEX IF NOT EXISTS idx_period_start ON period(user_id, start_date);
`
