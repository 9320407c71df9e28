// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/cycletrack/models"
)

// SQL is the database-backed PeriodStore. It works against both sqlite and
// postgres: dates are persisted as YYYY-MM-DD text and the queries use $N
// placeholders, which both drivers accept.
type SQL struct {
	db     *sql.DB
	userID string
}

// NewSQL returns a store scoped to a single user's records.
func NewSQL(db *sql.DB, userID string) *SQL {
	return &SQL{db: db, userID: userID}
}

func (s *SQL) ListPeriods(ctx context.Context) ([]models.Period, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, start_date, end_date
		FROM period
		WHERE user_id = $1
		ORDER BY start_date DESC
	`, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []models.Period
	for rows.Next() {
		var p models.Period
		var startStr string
		var endStr sql.NullString
		if err := rows.Scan(&p.ID, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}

		p.Start, err = time.Parse(models.DateFormat, startStr)
		if err != nil {
			return nil, fmt.Errorf("bad start date %q for period %s: %w", startStr, p.ID, err)
		}
		if endStr.Valid {
			end, err := time.Parse(models.DateFormat, endStr.String)
			if err != nil {
				return nil, fmt.Errorf("bad end date %q for period %s: %w", endStr.String, p.ID, err)
			}
			p.End = &end
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (s *SQL) InsertPeriod(ctx context.Context, start time.Time, end *time.Time) (string, error) {
	start, end = normalizeDates(start, end)

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO period (id, user_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, s.userID, start.Format(models.DateFormat), endParam(end), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to insert period: %w", err)
	}

	return id, nil
}

func (s *SQL) UpdatePeriod(ctx context.Context, id string, start time.Time, end *time.Time) error {
	start, end = normalizeDates(start, end)

	res, err := s.db.ExecContext(ctx, `
		UPDATE period
		SET start_date = $1, end_date = $2
		WHERE id = $3 AND user_id = $4
	`, start.Format(models.DateFormat), endParam(end), id, s.userID)
	if err != nil {
		return fmt.Errorf("failed to update period: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQL) DeletePeriod(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM period
		WHERE id = $1 AND user_id = $2
	`, id, s.userID)
	if err != nil {
		return fmt.Errorf("failed to delete period: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// endParam renders an optional end date for binding: nil stays NULL.
func endParam(end *time.Time) any {
	if end == nil {
		return nil
	}
	return end.Format(models.DateFormat)
}
