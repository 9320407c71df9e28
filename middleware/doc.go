// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting concerns for the cycletrack
server.

# Components

  - WithLogging: structured request logging (log/slog) plus prometheus
    request count and latency metrics, labeled by route pattern
  - JSONResponse / ErrorResponse: response helpers used by every handler
  - ParseJSONBody: request body decoding
  - CORS: permissive CORS for the calendar frontend

The prometheus collectors register on the default registry; the router
exposes them at /metrics.
*/
package middleware
