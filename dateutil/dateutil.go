// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dateutil

import "time"

// Day normalizes t to midnight UTC. Every comparison in this package works
// on normalized days so time-of-day never affects interval membership.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AddDays returns d shifted forward by n calendar days.
func AddDays(d time.Time, n int) time.Time {
	return Day(d).AddDate(0, 0, n)
}

// SubDays returns d shifted backward by n calendar days.
func SubDays(d time.Time, n int) time.Time {
	return Day(d).AddDate(0, 0, -n)
}

// DaysBetween returns the signed day count a - b.
func DaysBetween(a, b time.Time) int {
	return int(Day(a).Sub(Day(b)) / (24 * time.Hour))
}

// Interval is a closed date interval; both ends are inclusive.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Within reports whether d falls inside iv, inclusive of both ends.
func Within(d time.Time, iv Interval) bool {
	day := Day(d)
	return !day.Before(Day(iv.Start)) && !day.After(Day(iv.End))
}
