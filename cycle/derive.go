// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"time"

	"github.com/danielhkuo/cycletrack/models"
)

// Derived bundles everything computed from the period store: the two scalar
// estimates, the phase partition, and the forecast. It is rebuilt from
// scratch after every store mutation, never patched incrementally.
type Derived struct {
	CycleLength  int
	PeriodLength int
	Phases       []models.CyclePhase
	Predictions  []models.Period
}

// DeriveAll recomputes all derived state from the raw period list. The input
// need not be sorted.
func DeriveAll(periods []models.Period, today time.Time) Derived {
	sorted := SortPeriodsDesc(periods)
	complete := CompletePeriods(sorted)

	predictions := PredictFuturePeriods(sorted, today, DefaultForecastCycles)

	return Derived{
		CycleLength:  AverageCycleLength(complete),
		PeriodLength: AveragePeriodLength(complete),
		Phases:       CalculateCyclePhases(sorted, predictions, today),
		Predictions:  predictions,
	}
}
