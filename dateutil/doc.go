// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dateutil provides calendar-day arithmetic for the cycle engine.

All helpers normalize their inputs to midnight UTC, so two timestamps on the
same calendar day always compare equal and interval membership (Within) is
inclusive of both ends. DaysBetween is signed: DaysBetween(a, b) is positive
when a is after b.
*/
package dateutil
