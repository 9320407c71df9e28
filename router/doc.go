// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table for the cycletrack server.

Routes use Go 1.22+ method patterns on net/http.ServeMux. Every cycle route
is wrapped in middleware.WithLogging; /metrics serves the prometheus
default registry and /health is a bare liveness probe.
*/
package router
