// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Phase label constants. These are the only values PhaseForDate produces.
const (
	PhaseMenstruation = "Menstruation"
	PhaseFollicular   = "Follicular"
	PhaseOvulation    = "Ovulation"
	PhaseLuteal       = "Luteal"
	PhasePredicted    = "Predicted Period"
	PhaseUnknown      = "Unknown"
)

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// Domain types

// Period is a logged menstruation interval. End == nil means the period is
// ongoing (started but not yet closed). Predicted periods are derived, never
// stored; the Predicted flag distinguishes them in mixed slices.
type Period struct {
	ID        string     `json:"id,omitempty"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Predicted bool       `json:"predicted,omitempty"`
}

// Ongoing reports whether the period has no end date yet.
func (p Period) Ongoing() bool {
	return p.End == nil
}

// CyclePhase is a derived, contiguous slice of the current cycle. Phases are
// recomputed from the period store on every mutation and never persisted.
type CyclePhase struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Request types

type MarkPeriodRequest struct {
	Date string `json:"date"`
}

type ResolvePromptRequest struct {
	Keep bool `json:"keep"`
}

// Response types

// PeriodJSON is the wire form of a Period: dates as YYYY-MM-DD strings.
type PeriodJSON struct {
	ID        string  `json:"id,omitempty"`
	Start     string  `json:"start"`
	End       *string `json:"end,omitempty"`
	Predicted bool    `json:"predicted,omitempty"`
}

// NewPeriodJSON converts a domain Period for the wire.
func NewPeriodJSON(p Period) PeriodJSON {
	out := PeriodJSON{
		ID:        p.ID,
		Start:     p.Start.Format(DateFormat),
		Predicted: p.Predicted,
	}
	if p.End != nil {
		end := p.End.Format(DateFormat)
		out.End = &end
	}
	return out
}

// PhaseJSON is the wire form of a CyclePhase.
type PhaseJSON struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewPhaseJSON converts a derived phase for the wire.
func NewPhaseJSON(ph CyclePhase) PhaseJSON {
	return PhaseJSON{
		Name:  ph.Name,
		Start: ph.Start.Format(DateFormat),
		End:   ph.End.Format(DateFormat),
	}
}

type ListPeriodsResponse struct {
	Periods []PeriodJSON `json:"periods"`
}

// MarkPeriodResponse reports the action taken and the refreshed store.
type MarkPeriodResponse struct {
	Action  string       `json:"action"`
	State   string       `json:"state"`
	Periods []PeriodJSON `json:"periods"`
}

type RemovePeriodResponse struct {
	Removed bool         `json:"removed"`
	Periods []PeriodJSON `json:"periods"`
}

// DayState is one calendar day as the renderer collaborator consumes it.
type DayState struct {
	Date   string `json:"date"`
	Phase  string `json:"phase"`
	Marked bool   `json:"marked"`
	Today  bool   `json:"today"`
}

type CalendarResponse struct {
	Month string     `json:"month"`
	Days  []DayState `json:"days"`
}

// MarkActionResponse is the affordance for a selected date ("Mark Period
// Start", "Remove Period", ...), mirroring what HandleMarkPeriod would do.
type MarkActionResponse struct {
	Date    string `json:"date"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
}

// TrackerStateResponse exposes the marking state machine so the renderer can
// drive the stale-period dialog.
type TrackerStateResponse struct {
	State       string      `json:"state"`
	TempPeriod  *PeriodJSON `json:"temp_period,omitempty"`
	StalePeriod *PeriodJSON `json:"stale_period,omitempty"`
}

type SummaryResponse struct {
	AverageCycleLength  int          `json:"average_cycle_length"`
	AveragePeriodLength int          `json:"average_period_length"`
	Phases              []PhaseJSON  `json:"phases"`
	Predictions         []PeriodJSON `json:"predictions"`
}

// PhaseInfoResponse is the informational panel payload for one date.
type PhaseInfoResponse struct {
	Date   string       `json:"date"`
	Phase  string       `json:"phase"`
	Detail *PhaseDetail `json:"detail,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
