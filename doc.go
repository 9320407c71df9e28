// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cycletrack API server.

Cycletrack is a single-user menstrual cycle tracker: it stores period
start/end dates and derives cycle phases (Menstruation, Follicular,
Ovulation, Luteal) and period forecasts from that history, serving them to
a calendar frontend.

# Starting the Server

The server runs against a local sqlite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags or env, .env supported):

  - PORT (-p): server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite path (default: cycletrack.db) or postgres URL
  - CYCLETRACK_USER (-u): user id to track (default: local)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - cycle: pure derivation engine (estimates, phases, forecasts)
  - tracker: marking state machine over the period store
  - store: period persistence (sqlite/postgres, plus in-memory for tests)
  - handlers: HTTP request handlers for the calendar and info panel
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, metrics, CORS, JSON helpers
  - models: domain and request/response types
  - dateutil: calendar-day arithmetic
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
