// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"fmt"
	"time"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

// DefaultForecastCycles is how many future cycles PredictFuturePeriods
// projects when the caller has no preference.
const DefaultForecastCycles = 6

// anchorPeriod picks the period predictions project from: the ongoing one if
// present, else the most recent complete one. periods must be sorted
// most-recent-first.
func anchorPeriod(periods []models.Period) *models.Period {
	for i := range periods {
		if periods[i].Ongoing() && !periods[i].Predicted {
			return &periods[i]
		}
	}
	for i := range periods {
		if !periods[i].Predicted {
			return &periods[i]
		}
	}
	return nil
}

// PredictNextPeriod projects the single next period from the most recent
// one. Returns nil when there is no history at all. periods must be sorted
// most-recent-first.
func PredictNextPeriod(periods []models.Period) *models.Period {
	anchor := anchorPeriod(periods)
	if anchor == nil {
		return nil
	}

	complete := CompletePeriods(periods)
	cycleLen := AverageCycleLength(complete)
	periodLen := AveragePeriodLength(complete)

	start := dateutil.AddDays(anchor.Start, cycleLen)
	end := dateutil.AddDays(start, periodLen-1)
	return &models.Period{Start: start, End: &end, Predicted: true}
}

// PredictFuturePeriods projects n future periods from the anchor period.
// Each prediction's start is computed independently from the anchor start
// (anchorStart + cycleLen*(i+1)) rather than chained off the previous
// prediction, so rounding never compounds across the horizon.
//
// When a period is ongoing and its expected duration has not yet elapsed,
// the result additionally begins with a near-term prediction covering the
// likely remainder of that period (tomorrow through start+periodLen-1).
func PredictFuturePeriods(periods []models.Period, today time.Time, n int) []models.Period {
	anchor := anchorPeriod(periods)
	if anchor == nil {
		return nil
	}

	complete := CompletePeriods(periods)
	cycleLen := AverageCycleLength(complete)
	periodLen := AveragePeriodLength(complete)
	today = dateutil.Day(today)

	var predictions []models.Period

	if anchor.Ongoing() {
		remainderEnd := dateutil.AddDays(anchor.Start, periodLen-1)
		if remainderEnd.After(today) {
			start := dateutil.AddDays(today, 1)
			end := remainderEnd
			predictions = append(predictions, models.Period{
				ID:        "forecast-current",
				Start:     start,
				End:       &end,
				Predicted: true,
			})
		}
	}

	for i := 0; i < n; i++ {
		start := dateutil.AddDays(anchor.Start, cycleLen*(i+1))
		end := dateutil.AddDays(start, periodLen-1)
		predictions = append(predictions, models.Period{
			ID:        fmt.Sprintf("forecast-%d", i+1),
			Start:     start,
			End:       &end,
			Predicted: true,
		})
	}

	return predictions
}
