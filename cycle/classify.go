// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"time"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

const (
	// RecentPeriodDays: an ongoing period started at most this many days ago
	// still auto-fills the calendar day by day. Older open periods color only
	// their start date until the user resolves them.
	RecentPeriodDays = 3

	// StalePeriodDays caps how far an unresolved open period may color the
	// calendar, and is the age at which the tracker flags it for resolution.
	StalePeriodDays = 14
)

// IsRecentPeriod reports whether an ongoing period started within the last
// RecentPeriodDays days.
func IsRecentPeriod(p models.Period, today time.Time) bool {
	return dateutil.DaysBetween(today, p.Start) <= RecentPeriodDays
}

// EffectiveEndDate bounds the visible span of an ongoing period: today, but
// never more than StalePeriodDays after the start.
func EffectiveEndDate(p models.Period, today time.Time) time.Time {
	ceiling := dateutil.AddDays(p.Start, StalePeriodDays)
	today = dateutil.Day(today)
	if today.Before(ceiling) {
		return today
	}
	return ceiling
}

// PhaseForDate classifies a single calendar date. Resolution order is
// load-bearing: real period data out-ranks everything, computed phases
// out-rank generic predicted-period blocks, and prediction windows come
// last before "Unknown".
func PhaseForDate(date time.Time, phases []models.CyclePhase, periods, predictions []models.Period, today time.Time) string {
	date = dateutil.Day(date)
	today = dateutil.Day(today)

	// 1. Closed periods: exact membership.
	for _, p := range periods {
		if p.End != nil {
			if dateutil.Within(date, dateutil.Interval{Start: p.Start, End: *p.End}) {
				return models.PhaseMenstruation
			}
		}
	}

	// 2. Ongoing periods.
	periodLen := AveragePeriodLength(CompletePeriods(periods))
	for _, p := range periods {
		if p.End != nil {
			continue
		}
		if IsRecentPeriod(p, today) {
			if dateutil.Within(date, dateutil.Interval{Start: p.Start, End: EffectiveEndDate(p, today)}) {
				return models.PhaseMenstruation
			}
			if date.After(today) {
				window := dateutil.Interval{
					Start: dateutil.AddDays(today, 1),
					End:   dateutil.AddDays(p.Start, periodLen-1),
				}
				if dateutil.Within(date, window) {
					return models.PhasePredicted
				}
			}
		} else if dateutil.SameDay(date, p.Start) {
			// A stale open period colors only its own start date until the
			// user resolves it.
			return models.PhaseMenstruation
		}
	}

	// 3. Computed cycle phases.
	for _, ph := range phases {
		if dateutil.Within(date, dateutil.Interval{Start: ph.Start, End: ph.End}) {
			return ph.Name
		}
	}

	// 4. Predicted periods.
	for _, p := range predictions {
		if p.End != nil && dateutil.Within(date, dateutil.Interval{Start: p.Start, End: *p.End}) {
			return models.PhasePredicted
		}
	}

	return models.PhaseUnknown
}
