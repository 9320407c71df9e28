// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import "errors"

// The error taxonomy for marking actions. All of these are recoverable:
// handlers surface the message to the user and nothing in the store or the
// local state changes.
var (
	// ErrFutureDate: the selected date lies after today.
	ErrFutureDate = errors.New("cannot mark future dates as part of a period")

	// ErrEndBeforeStart: an end date would precede its period's start.
	ErrEndBeforeStart = errors.New("period end date cannot be before the start date")

	// ErrBlockedByStalePeriod: a stale open period awaits resolution and
	// blocks all other marking.
	ErrBlockedByStalePeriod = errors.New("please resolve the old period before marking a new one")

	// ErrOngoingPeriod: a new period cannot start while another is open.
	ErrOngoingPeriod = errors.New("please end the current period before starting a new one")
)
