// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"testing"

	"github.com/danielhkuo/cycletrack/models"
)

func TestIsRecentPeriodBoundary(t *testing.T) {
	today := date(t, "2024-01-10")

	if !IsRecentPeriod(open(t, "2024-01-07"), today) {
		t.Error("Period started exactly 3 days ago should be recent")
	}
	if IsRecentPeriod(open(t, "2024-01-06"), today) {
		t.Error("Period started 4 days ago should not be recent")
	}
}

func TestEffectiveEndDateCeiling(t *testing.T) {
	p := open(t, "2024-01-01")

	if got := EffectiveEndDate(p, date(t, "2024-01-05")); !got.Equal(date(t, "2024-01-05")) {
		t.Errorf("Expected today, got %s", got.Format(models.DateFormat))
	}
	// 14-day hard ceiling
	if got := EffectiveEndDate(p, date(t, "2024-01-20")); !got.Equal(date(t, "2024-01-15")) {
		t.Errorf("Expected ceiling 2024-01-15, got %s", got.Format(models.DateFormat))
	}
}

func TestPhaseForDateRealPeriodBeatsPrediction(t *testing.T) {
	periods := []models.Period{closed(t, "2024-01-01", "2024-01-05")}
	predictions := []models.Period{predicted(t, "2024-01-02", "2024-01-06")}

	got := PhaseForDate(date(t, "2024-01-03"), nil, periods, predictions, date(t, "2024-01-10"))
	if got != models.PhaseMenstruation {
		t.Errorf("Expected Menstruation for a real period day, got %q", got)
	}
}

func TestPhaseForDateRecentOngoing(t *testing.T) {
	today := date(t, "2024-01-10")
	periods := []models.Period{open(t, "2024-01-09")}

	// Elapsed days color as menstruation
	if got := PhaseForDate(date(t, "2024-01-10"), nil, periods, nil, today); got != models.PhaseMenstruation {
		t.Errorf("Expected Menstruation for elapsed day, got %q", got)
	}
	// Future days within the expected 5-day window are predicted
	if got := PhaseForDate(date(t, "2024-01-12"), nil, periods, nil, today); got != models.PhasePredicted {
		t.Errorf("Expected Predicted Period for expected-window day, got %q", got)
	}
	// Beyond the window nothing colors
	if got := PhaseForDate(date(t, "2024-01-14"), nil, periods, nil, today); got != models.PhaseUnknown {
		t.Errorf("Expected Unknown past the window, got %q", got)
	}
}

func TestPhaseForDateStaleOngoingColorsOnlyStart(t *testing.T) {
	today := date(t, "2024-01-20")
	periods := []models.Period{open(t, "2024-01-10")}

	if got := PhaseForDate(date(t, "2024-01-10"), nil, periods, nil, today); got != models.PhaseMenstruation {
		t.Errorf("Expected Menstruation on the stale period's start, got %q", got)
	}
	if got := PhaseForDate(date(t, "2024-01-11"), nil, periods, nil, today); got != models.PhaseUnknown {
		t.Errorf("Expected Unknown for other stale-period days, got %q", got)
	}
}

func TestPhaseForDatePhaseBeatsPrediction(t *testing.T) {
	phases := []models.CyclePhase{{
		Name:  models.PhaseLuteal,
		Start: date(t, "2024-01-15"),
		End:   date(t, "2024-01-28"),
	}}
	predictions := []models.Period{predicted(t, "2024-01-20", "2024-01-24")}

	got := PhaseForDate(date(t, "2024-01-22"), phases, nil, predictions, date(t, "2024-01-16"))
	if got != models.PhaseLuteal {
		t.Errorf("Expected Luteal to out-rank the forecast block, got %q", got)
	}
}

func TestPhaseForDatePredictionAndUnknown(t *testing.T) {
	predictions := []models.Period{predicted(t, "2024-01-29", "2024-02-02")}

	if got := PhaseForDate(date(t, "2024-01-30"), nil, nil, predictions, date(t, "2024-01-10")); got != models.PhasePredicted {
		t.Errorf("Expected Predicted Period, got %q", got)
	}
	if got := PhaseForDate(date(t, "2024-03-15"), nil, nil, predictions, date(t, "2024-01-10")); got != models.PhaseUnknown {
		t.Errorf("Expected Unknown, got %q", got)
	}
}

func TestDeriveAllConsistency(t *testing.T) {
	periods := []models.Period{
		closed(t, "2024-01-01", "2024-01-05"),
		closed(t, "2024-01-29", "2024-02-02"),
	}

	d := DeriveAll(periods, date(t, "2024-02-10"))
	if d.CycleLength != 28 {
		t.Errorf("Expected cycle length 28, got %d", d.CycleLength)
	}
	if d.PeriodLength != 5 {
		t.Errorf("Expected period length 5, got %d", d.PeriodLength)
	}
	if len(d.Predictions) != DefaultForecastCycles {
		t.Errorf("Expected %d predictions, got %d", DefaultForecastCycles, len(d.Predictions))
	}
	if len(d.Phases) == 0 || d.Phases[0].Name != models.PhaseMenstruation {
		t.Fatalf("Expected phases anchored on menstruation, got %+v", d.Phases)
	}
	// Anchored on the most recent period even though input is unsorted
	if !d.Phases[0].Start.Equal(date(t, "2024-01-29")) {
		t.Errorf("Expected anchor 2024-01-29, got %s", d.Phases[0].Start.Format(models.DateFormat))
	}
}
