// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

// ErrNotFound is returned when an update or delete targets an id that does
// not exist.
var ErrNotFound = errors.New("period not found")

// PeriodStore is the persistence port for period records. The store is the
// authority for ids; callers re-list after every write rather than trusting
// local optimistic state.
type PeriodStore interface {
	ListPeriods(ctx context.Context) ([]models.Period, error)
	InsertPeriod(ctx context.Context, start time.Time, end *time.Time) (string, error)
	UpdatePeriod(ctx context.Context, id string, start time.Time, end *time.Time) error
	DeletePeriod(ctx context.Context, id string) error
}

// normalizeDates swaps start and end when the end precedes the start, and
// truncates both to calendar days. Every implementation applies this before
// persisting.
func normalizeDates(start time.Time, end *time.Time) (time.Time, *time.Time) {
	start = dateutil.Day(start)
	if end == nil {
		return start, nil
	}
	e := dateutil.Day(*end)
	if e.Before(start) {
		start, e = e, start
	}
	return start, &e
}
