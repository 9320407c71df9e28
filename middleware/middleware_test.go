// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/cycletrack/middleware"
	"github.com/danielhkuo/cycletrack/models"
	"github.com/danielhkuo/cycletrack/testutil"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Bad Request" {
		t.Errorf("Expected status text in error field, got %q", resp.Error)
	}
	if resp.Message != "date must be YYYY-MM-DD" {
		t.Errorf("Expected the message to pass through, got %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := testutil.MakeRequest("POST", "/cycle/mark", models.MarkPeriodRequest{Date: "2024-01-01"})

	var parsed models.MarkPeriodRequest
	if err := middleware.ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("Failed to parse body: %v", err)
	}
	if parsed.Date != "2024-01-01" {
		t.Errorf("Expected 2024-01-01, got %q", parsed.Date)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight must not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/cycle/mark", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8081" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}

func TestCORSPassesThrough(t *testing.T) {
	called := false
	handler := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/cycle/periods", nil))
	if !called {
		t.Error("GET request should reach the wrapped handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin without an Origin header, got %q", got)
	}
}
