// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists period records.

PeriodStore is the port the tracker writes through. Two implementations:

  - SQL: database/sql over sqlite (modernc.org/sqlite) or postgres (lib/pq).
    Ids are uuids minted on insert; dates are stored as YYYY-MM-DD text so
    both dialects behave identically.
  - Memory: map-backed store for tests, with write-failure injection.

Both implementations normalize dates before persisting: start and end are
truncated to calendar days, and a reversed pair (end before start) is
swapped rather than rejected.
*/
package store
