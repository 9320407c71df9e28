// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tracker implements the marking state machine: what a single tap on a
calendar date does to the stored periods.

# States

	Idle                 no pending action
	MarkingEnd           an open period waits for its end date
	ResolvingOldPeriod   a stale open period blocks all marking

# Marking Rules

HandleMarkPeriod resolves a selected date in priority order:

 1. A date adjacent to an existing period (day before its start, day after
    its end) extends that period.
 2. A date inside an existing period's span updates that period's end — or
    deletes the period entirely when the date hits its exact start or end.
 3. Otherwise, from Idle the date starts a new open period (rejected while
    another is open); from MarkingEnd it closes the pending one.

Future dates are always rejected, as is an end before its start. While a
stale open period (14+ days without an end) awaits the keep/remove prompt,
every mark attempt fails with ErrBlockedByStalePeriod.

Each accepted transition persists through the store port, then re-derives
estimates, phases, and forecasts from a fresh listing. A failed write leaves
local state at the last-known-good snapshot.
*/
package tracker
