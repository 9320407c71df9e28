// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"math"
	"sort"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

// Defaults used when history is too sparse to estimate from.
const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// SortPeriodsDesc returns a copy of periods sorted most-recent-first by
// start date. The estimators and the forecaster assume this ordering.
func SortPeriodsDesc(periods []models.Period) []models.Period {
	sorted := make([]models.Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.After(sorted[j].Start)
	})
	return sorted
}

// CompletePeriods filters out ongoing and predicted periods.
func CompletePeriods(periods []models.Period) []models.Period {
	var complete []models.Period
	for _, p := range periods {
		if p.End != nil && !p.Predicted {
			complete = append(complete, p)
		}
	}
	return complete
}

// AverageCycleLength estimates the days between consecutive period starts.
// completePeriods must be sorted most-recent-first. Returns
// DefaultCycleLength when fewer than two complete periods exist.
func AverageCycleLength(completePeriods []models.Period) int {
	if len(completePeriods) < 2 {
		return DefaultCycleLength
	}

	total := 0
	for i := 0; i < len(completePeriods)-1; i++ {
		total += dateutil.DaysBetween(completePeriods[i].Start, completePeriods[i+1].Start)
	}
	return int(math.Round(float64(total) / float64(len(completePeriods)-1)))
}

// AveragePeriodLength estimates the mean duration of a period in days,
// counting both the start and end day. Returns DefaultPeriodLength when no
// complete periods exist.
func AveragePeriodLength(completePeriods []models.Period) int {
	if len(completePeriods) == 0 {
		return DefaultPeriodLength
	}

	total := 0
	for _, p := range completePeriods {
		total += dateutil.DaysBetween(*p.End, p.Start) + 1
	}
	return int(math.Round(float64(total) / float64(len(completePeriods))))
}
