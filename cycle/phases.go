// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"math"
	"time"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

// CalculateCyclePhases partitions the current cycle into its phases:
// Menstruation, Follicular, Ovulation, and (when room remains) Luteal.
// Phases are contiguous and non-overlapping; the partition spans from the
// anchor period's start to the day before the next expected period start.
//
// periods must be sorted most-recent-first. predictions supplies candidate
// next-period starts (see PredictFuturePeriods); when none lands after the
// menstruation end, the next start falls back to anchorStart + cycle length.
func CalculateCyclePhases(periods, predictions []models.Period, today time.Time) []models.CyclePhase {
	anchor := anchorPeriod(periods)
	if anchor == nil {
		return nil
	}

	complete := CompletePeriods(periods)
	cycleLen := AverageCycleLength(complete)
	periodLen := AveragePeriodLength(complete)
	today = dateutil.Day(today)

	anchorStart := dateutil.Day(anchor.Start)

	// Menstruation runs to the real end for a complete period. For an
	// ongoing one it runs to a projected end that grows with today, capped
	// at the expected period duration.
	var mensEnd time.Time
	if anchor.End != nil {
		mensEnd = dateutil.Day(*anchor.End)
	} else {
		mensEnd = dateutil.AddDays(anchorStart, periodLen-1)
		if today.Before(mensEnd) {
			mensEnd = today
		}
		if mensEnd.Before(anchorStart) {
			mensEnd = anchorStart
		}
	}

	phases := []models.CyclePhase{{
		Name:  models.PhaseMenstruation,
		Start: anchorStart,
		End:   mensEnd,
	}}

	// First predicted start strictly after the menstruation end; fall back
	// to a plain cycle-length projection.
	nextStart := dateutil.AddDays(anchorStart, cycleLen)
	for _, p := range predictions {
		if dateutil.Day(p.Start).After(mensEnd) {
			nextStart = dateutil.Day(p.Start)
			break
		}
	}

	daysUntilNext := dateutil.DaysBetween(nextStart, dateutil.AddDays(mensEnd, 1))
	if daysUntilNext <= 0 {
		// Malformed or too-short cycle: no room for the later phases.
		return phases
	}

	follicularDays := int(math.Round(0.35 * float64(daysUntilNext)))
	if follicularDays < 1 {
		follicularDays = 1
	}
	if daysUntilNext-follicularDays < 2 {
		// Not enough room for the 35% split; shrink Follicular so Ovulation
		// keeps its day and Luteal gets whatever is left.
		follicularDays = daysUntilNext - 2
		if follicularDays < 1 {
			follicularDays = 1
		}
	}

	folStart := dateutil.AddDays(mensEnd, 1)
	folEnd := dateutil.AddDays(mensEnd, follicularDays)
	phases = append(phases, models.CyclePhase{
		Name:  models.PhaseFollicular,
		Start: folStart,
		End:   folEnd,
	})

	if daysUntilNext-follicularDays < 1 {
		return phases
	}

	ovuDay := dateutil.AddDays(folEnd, 1)
	phases = append(phases, models.CyclePhase{
		Name:  models.PhaseOvulation,
		Start: ovuDay,
		End:   ovuDay,
	})

	lutealStart := dateutil.AddDays(ovuDay, 1)
	lutealEnd := dateutil.SubDays(nextStart, 1)
	if !lutealEnd.Before(lutealStart) {
		phases = append(phases, models.CyclePhase{
			Name:  models.PhaseLuteal,
			Start: lutealStart,
			End:   lutealEnd,
		})
	}

	return phases
}
