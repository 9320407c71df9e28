// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/cycletrack/db"
	"github.com/danielhkuo/cycletrack/models"
	"github.com/danielhkuo/cycletrack/store"
	"github.com/danielhkuo/cycletrack/tracker"
)

// TestUserID is the user id used by all database-backed tests
const TestUserID = "test-user"

// SetupTestDB opens an in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// In-memory sqlite drops the schema when the last connection closes
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// Date parses a YYYY-MM-DD string into a midnight-UTC time
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return d
}

// SeedPeriod inserts a period row directly and returns its ID.
// end may be empty for an ongoing period.
func SeedPeriod(t *testing.T, conn *sql.DB, start, end string) string {
	t.Helper()

	id := uuid.NewString()
	var endVal interface{}
	if end != "" {
		endVal = end
	}
	_, err := conn.Exec(`
		INSERT INTO period (id, user_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, TestUserID, start, endVal, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to seed period: %v", err)
	}

	return id
}

// NewTestTracker builds a tracker over an in-memory store with a fixed
// clock, seeded with the given periods and loaded.
func NewTestTracker(t *testing.T, today string, periods ...models.Period) (*tracker.Tracker, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	ctx := context.Background()
	for _, p := range periods {
		if _, err := mem.InsertPeriod(ctx, p.Start, p.End); err != nil {
			t.Fatalf("Failed to seed period: %v", err)
		}
	}

	now := Date(t, today)
	trk := tracker.NewWithClock(mem, func() time.Time { return now })
	if err := trk.Load(ctx); err != nil {
		t.Fatalf("Failed to load tracker: %v", err)
	}

	return trk, mem
}

// ClosedPeriod builds a complete period value for seeding
func ClosedPeriod(t *testing.T, start, end string) models.Period {
	t.Helper()
	e := Date(t, end)
	return models.Period{Start: Date(t, start), End: &e}
}

// OpenPeriod builds an ongoing period value for seeding
func OpenPeriod(t *testing.T, start string) models.Period {
	t.Helper()
	return models.Period{Start: Date(t, start)}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		return req
	}
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
