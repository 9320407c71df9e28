// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/cycletrack/handlers"
	"github.com/danielhkuo/cycletrack/middleware"
	"github.com/danielhkuo/cycletrack/tracker"
)

func NewRouter(t *tracker.Tracker) *http.ServeMux {
	mux := http.NewServeMux()

	cycleHandler := handlers.NewCycleHandler(t)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Marking (writes)
	mux.HandleFunc("POST /cycle/mark", middleware.WithLogging(cycleHandler.MarkPeriod))
	mux.HandleFunc("DELETE /cycle/periods", middleware.WithLogging(cycleHandler.RemovePeriod))
	mux.HandleFunc("POST /cycle/resolve", middleware.WithLogging(cycleHandler.ResolvePrompt))

	// Calendar rendering (reads)
	mux.HandleFunc("GET /cycle/calendar", middleware.WithLogging(cycleHandler.GetCalendar))
	mux.HandleFunc("GET /cycle/action", middleware.WithLogging(cycleHandler.GetMarkAction))

	// Informational panel (reads)
	mux.HandleFunc("GET /cycle/periods", middleware.WithLogging(cycleHandler.ListPeriods))
	mux.HandleFunc("GET /cycle/state", middleware.WithLogging(cycleHandler.GetState))
	mux.HandleFunc("GET /cycle/info", middleware.WithLogging(cycleHandler.GetInfo))
	mux.HandleFunc("GET /cycle/summary", middleware.WithLogging(cycleHandler.GetSummary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cycletrack API v1"))
	})

	return mux
}
