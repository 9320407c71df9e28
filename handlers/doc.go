// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the cycletrack
server.

# Handler Groups

CycleHandler serves the three collaborators of the core engine:

  - Marking: POST /cycle/mark, DELETE /cycle/periods, POST /cycle/resolve —
    the calendar forwards taps and the stale-period prompt answer here
  - Rendering: GET /cycle/calendar, GET /cycle/action — per-day phase
    labels and the affordance text for a selected date
  - Information: GET /cycle/info, GET /cycle/summary, GET /cycle/state,
    GET /cycle/periods — read-only views of derived and stored state

# Error Mapping

Tracker taxonomy errors become user-visible messages: a stale period
blocking marking maps to 409, invalid selections (future date, end before
start, second open period) map to 400, and persistence failures map to 500
with the local state left at the last-known-good snapshot.
*/
package handlers
