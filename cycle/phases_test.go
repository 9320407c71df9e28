// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"testing"

	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
)

// assertContiguous verifies the phase partition invariant: ordered, gapless,
// starting at the anchor period's start.
func assertContiguous(t *testing.T, phases []models.CyclePhase, anchorStart string) {
	t.Helper()

	if len(phases) == 0 {
		t.Fatal("Expected at least one phase")
	}
	if !phases[0].Start.Equal(date(t, anchorStart)) {
		t.Errorf("Expected partition to start at %s, got %s",
			anchorStart, phases[0].Start.Format(models.DateFormat))
	}
	for i := 0; i < len(phases)-1; i++ {
		if phases[i].End.Before(phases[i].Start) {
			t.Errorf("Phase %s ends before it starts", phases[i].Name)
		}
		next := dateutil.AddDays(phases[i].End, 1)
		if !phases[i+1].Start.Equal(next) {
			t.Errorf("Gap between %s and %s: %s + 1 != %s",
				phases[i].Name, phases[i+1].Name,
				phases[i].End.Format(models.DateFormat),
				phases[i+1].Start.Format(models.DateFormat))
		}
	}
}

func TestCalculateCyclePhasesEmpty(t *testing.T) {
	if phases := CalculateCyclePhases(nil, nil, date(t, "2024-01-01")); phases != nil {
		t.Errorf("Expected nil for empty history, got %+v", phases)
	}
}

func TestCalculateCyclePhasesFullPartition(t *testing.T) {
	periods := []models.Period{closed(t, "2024-01-01", "2024-01-05")}
	today := date(t, "2024-01-10")
	predictions := PredictFuturePeriods(periods, today, DefaultForecastCycles)

	phases := CalculateCyclePhases(periods, predictions, today)
	if len(phases) != 4 {
		t.Fatalf("Expected 4 phases, got %d: %+v", len(phases), phases)
	}
	assertContiguous(t, phases, "2024-01-01")

	wantNames := []string{
		models.PhaseMenstruation, models.PhaseFollicular,
		models.PhaseOvulation, models.PhaseLuteal,
	}
	for i, want := range wantNames {
		if phases[i].Name != want {
			t.Errorf("Phase %d: expected %q, got %q", i, want, phases[i].Name)
		}
	}

	// 23 days until the 2024-01-29 forecast: Follicular gets round(0.35*23)=8
	if !phases[1].Start.Equal(date(t, "2024-01-06")) || !phases[1].End.Equal(date(t, "2024-01-13")) {
		t.Errorf("Follicular: got %s..%s",
			phases[1].Start.Format(models.DateFormat), phases[1].End.Format(models.DateFormat))
	}
	if !phases[2].Start.Equal(date(t, "2024-01-14")) || !phases[2].End.Equal(date(t, "2024-01-14")) {
		t.Errorf("Ovulation should be the single day 2024-01-14, got %s..%s",
			phases[2].Start.Format(models.DateFormat), phases[2].End.Format(models.DateFormat))
	}
	// Luteal ends the day before the next predicted start
	if !phases[3].End.Equal(date(t, "2024-01-28")) {
		t.Errorf("Luteal should end 2024-01-28, got %s", phases[3].End.Format(models.DateFormat))
	}
}

func TestCalculateCyclePhasesOngoingCollapsesToMenstruation(t *testing.T) {
	// While a period is open and its expected window has not elapsed, the
	// near-term remainder forecast starts tomorrow, leaving no room for the
	// later phases.
	periods := []models.Period{open(t, "2024-01-01")}
	today := date(t, "2024-01-03")
	predictions := PredictFuturePeriods(periods, today, DefaultForecastCycles)

	phases := CalculateCyclePhases(periods, predictions, today)
	if len(phases) != 1 || phases[0].Name != models.PhaseMenstruation {
		t.Fatalf("Expected only Menstruation, got %+v", phases)
	}
	if !phases[0].End.Equal(today) {
		t.Errorf("Menstruation should grow to today, got end %s", phases[0].End.Format(models.DateFormat))
	}
}

func TestCalculateCyclePhasesOngoingElapsedWindow(t *testing.T) {
	// The open period outlived its expected 5 days: menstruation is capped at
	// start+4 and the full partition resumes.
	periods := []models.Period{open(t, "2024-01-01")}
	today := date(t, "2024-01-10")
	predictions := PredictFuturePeriods(periods, today, DefaultForecastCycles)

	phases := CalculateCyclePhases(periods, predictions, today)
	if len(phases) != 4 {
		t.Fatalf("Expected 4 phases, got %d: %+v", len(phases), phases)
	}
	assertContiguous(t, phases, "2024-01-01")
	if !phases[0].End.Equal(date(t, "2024-01-05")) {
		t.Errorf("Menstruation should cap at 2024-01-05, got %s", phases[0].End.Format(models.DateFormat))
	}
}

func TestCalculateCyclePhasesMinimalAllocation(t *testing.T) {
	periods := []models.Period{closed(t, "2024-01-01", "2024-01-05")}

	// Two days until the next start: Follicular shrinks to 1, Ovulation keeps
	// its day, Luteal is omitted.
	tight := []models.Period{predicted(t, "2024-01-08", "2024-01-12")}
	phases := CalculateCyclePhases(periods, tight, date(t, "2024-01-06"))
	if len(phases) != 3 {
		t.Fatalf("Expected 3 phases, got %d: %+v", len(phases), phases)
	}
	assertContiguous(t, phases, "2024-01-01")
	if phases[1].Name != models.PhaseFollicular || !phases[1].End.Equal(date(t, "2024-01-06")) {
		t.Errorf("Follicular should be the single day 2024-01-06, got %+v", phases[1])
	}
	if phases[2].Name != models.PhaseOvulation || !phases[2].Start.Equal(date(t, "2024-01-07")) {
		t.Errorf("Ovulation should be 2024-01-07, got %+v", phases[2])
	}

	// One day: only Follicular fits after menstruation.
	tighter := []models.Period{predicted(t, "2024-01-07", "2024-01-11")}
	phases = CalculateCyclePhases(periods, tighter, date(t, "2024-01-06"))
	if len(phases) != 2 {
		t.Fatalf("Expected 2 phases, got %d: %+v", len(phases), phases)
	}
	if phases[1].Name != models.PhaseFollicular {
		t.Errorf("Expected Follicular second, got %q", phases[1].Name)
	}
}

func TestCalculateCyclePhasesNoRoom(t *testing.T) {
	// A prediction starting the day after menstruation ends leaves zero days
	periods := []models.Period{closed(t, "2024-01-01", "2024-01-05")}
	overlapping := []models.Period{predicted(t, "2024-01-06", "2024-01-10")}

	phases := CalculateCyclePhases(periods, overlapping, date(t, "2024-01-06"))
	if len(phases) != 1 || phases[0].Name != models.PhaseMenstruation {
		t.Fatalf("Expected only Menstruation, got %+v", phases)
	}
}

// predicted builds a predicted period for handing to the phase calculator
func predicted(t *testing.T, start, end string) models.Period {
	t.Helper()
	p := closed(t, start, end)
	p.Predicted = true
	return p
}
