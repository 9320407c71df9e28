// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/cycletrack/cycle"
	"github.com/danielhkuo/cycletrack/dateutil"
	"github.com/danielhkuo/cycletrack/models"
	"github.com/danielhkuo/cycletrack/store"
)

// State is the marking state machine's current state.
type State int

const (
	// StateIdle: no pending action; the next date selection decides.
	StateIdle State = iota
	// StateMarkingEnd: an open period is pending; the next selection
	// supplies its end date.
	StateMarkingEnd
	// StateResolvingOldPeriod: a stale open period blocks all marking until
	// the user answers the keep/remove prompt.
	StateResolvingOldPeriod
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMarkingEnd:
		return "marking_end"
	case StateResolvingOldPeriod:
		return "resolving_old_period"
	default:
		return "unknown"
	}
}

// Action labels returned by HandleMarkPeriod and MarkAction. These double as
// the affordance text the renderer shows for a selected date.
const (
	ActionMarkStart  = "Mark Period Start"
	ActionMarkEnd    = "Mark Period End"
	ActionUpdateEnd  = "Update Period End"
	ActionExtend     = "Extend Period"
	ActionRemove     = "Remove Period"
	ActionFutureDate = "Cannot mark future dates"
	ActionEndBefore  = "Cannot mark end before start"
	ActionBlocked    = "Resolve the old period first"
	ActionSelectDate = "Select a date"
)

// Tracker owns the single user's period store interactions. All transitions
// run under one mutex: the next mark action is not accepted until the
// previous one's persistence completed. Derived state (phases, forecasts)
// is recomputed from a fresh store listing after every accepted mutation;
// a failed write leaves both the store and the local snapshot untouched.
type Tracker struct {
	mu    sync.Mutex
	store store.PeriodStore
	now   func() time.Time

	periods []models.Period // last-known-good, sorted most-recent-first
	derived cycle.Derived

	state       State
	tempPeriod  *models.Period
	stalePeriod *models.Period

	// recentID exempts a period created this session from the stale scan;
	// resolving suppresses the scan while the user closes a kept stale
	// period.
	recentID  string
	resolving bool
}

// New returns a tracker over the given store, using the wall clock.
func New(s store.PeriodStore) *Tracker {
	return NewWithClock(s, time.Now)
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(s store.PeriodStore, now func() time.Time) *Tracker {
	return &Tracker{store: s, now: now}
}

func (t *Tracker) today() time.Time {
	return dateutil.Day(t.now())
}

// Load populates the tracker from the store and runs the initial stale-period
// scan. Call once at startup.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refresh(ctx)
}

// refresh re-lists the store, re-derives phases and forecasts, and scans for
// stale open periods. Callers hold t.mu.
func (t *Tracker) refresh(ctx context.Context) error {
	periods, err := t.store.ListPeriods(ctx)
	if err != nil {
		return fmt.Errorf("failed to load periods: %w", err)
	}

	t.periods = cycle.SortPeriodsDesc(periods)
	t.derived = cycle.DeriveAll(t.periods, t.today())
	t.scanForStalePeriod()
	return nil
}

// scanForStalePeriod flags an open period that started StalePeriodDays or
// more ago, except one just created this session or one already being
// resolved. Callers hold t.mu.
func (t *Tracker) scanForStalePeriod() {
	if t.resolving || t.state == StateResolvingOldPeriod {
		return
	}

	today := t.today()
	for i := range t.periods {
		p := t.periods[i]
		if !p.Ongoing() || p.ID == t.recentID {
			continue
		}
		if dateutil.DaysBetween(today, p.Start) >= cycle.StalePeriodDays {
			stale := p
			t.stalePeriod = &stale
			t.state = StateResolvingOldPeriod
			slog.Info("stale open period flagged", "period_id", p.ID, "start", p.Start.Format(models.DateFormat))
			return
		}
	}
}

// HandleMarkPeriod applies a single date selection to the store. It returns
// the action taken (one of the Action constants) or an error from the
// taxonomy in errors.go. Every successful transition re-derives all cycle
// state from a fresh store listing.
func (t *Tracker) HandleMarkPeriod(ctx context.Context, selected time.Time) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateResolvingOldPeriod {
		return "", ErrBlockedByStalePeriod
	}

	date := dateutil.Day(selected)
	today := t.today()
	if date.After(today) {
		return "", ErrFutureDate
	}

	// Adjacency wins over everything else: a tap on the day before a start
	// or the day after an end extends that period.
	for i := range t.periods {
		p := t.periods[i]
		if dateutil.SameDay(date, dateutil.SubDays(p.Start, 1)) {
			if err := t.store.UpdatePeriod(ctx, p.ID, date, p.End); err != nil {
				return "", fmt.Errorf("failed to extend period: %w", err)
			}
			slog.Info("period extended", "period_id", p.ID, "new_start", date.Format(models.DateFormat))
			t.clearMarking()
			return ActionExtend, t.refresh(ctx)
		}
		if p.End != nil && dateutil.SameDay(date, dateutil.AddDays(*p.End, 1)) {
			if err := t.store.UpdatePeriod(ctx, p.ID, p.Start, &date); err != nil {
				return "", fmt.Errorf("failed to extend period: %w", err)
			}
			slog.Info("period extended", "period_id", p.ID, "new_end", date.Format(models.DateFormat))
			t.clearMarking()
			return ActionExtend, t.refresh(ctx)
		}
	}

	// Containment: the tap lands inside an existing period's span. For an
	// open period the span runs through the selected date itself.
	if p := t.containingPeriod(date); p != nil {
		onBoundary := dateutil.SameDay(date, p.Start) || (p.End != nil && dateutil.SameDay(date, *p.End))
		if onBoundary {
			if err := t.store.DeletePeriod(ctx, p.ID); err != nil {
				return "", fmt.Errorf("failed to remove period: %w", err)
			}
			slog.Info("period removed", "period_id", p.ID)
			t.clearAfterClose(p.ID)
			t.clearMarking()
			return ActionRemove, t.refresh(ctx)
		}

		if date.Before(dateutil.Day(p.Start)) {
			return "", ErrEndBeforeStart
		}

		if err := t.store.UpdatePeriod(ctx, p.ID, p.Start, &date); err != nil {
			return "", fmt.Errorf("failed to update period: %w", err)
		}
		slog.Info("period end updated", "period_id", p.ID, "end", date.Format(models.DateFormat))
		t.clearAfterClose(p.ID)
		t.clearMarking()
		return ActionUpdateEnd, t.refresh(ctx)
	}

	switch t.state {
	case StateIdle:
		// Starting a new period requires no other period be open, unless
		// the open one is the stale period being resolved.
		for _, p := range t.periods {
			if p.Ongoing() && !t.resolving {
				return "", ErrOngoingPeriod
			}
		}

		id, err := t.store.InsertPeriod(ctx, date, nil)
		if err != nil {
			return "", fmt.Errorf("failed to save period: %w", err)
		}
		slog.Info("period started", "period_id", id, "start", date.Format(models.DateFormat))

		t.recentID = id
		t.tempPeriod = &models.Period{ID: id, Start: date}
		t.state = StateMarkingEnd
		return ActionMarkStart, t.refresh(ctx)

	case StateMarkingEnd:
		// Reached only when the selected date precedes the pending period's
		// span; later dates are handled by the containment branch above.
		if t.tempPeriod != nil && date.Before(dateutil.Day(t.tempPeriod.Start)) {
			return "", ErrEndBeforeStart
		}
		if t.tempPeriod == nil {
			t.state = StateIdle
			return "", fmt.Errorf("no pending period to close")
		}

		if err := t.store.UpdatePeriod(ctx, t.tempPeriod.ID, t.tempPeriod.Start, &date); err != nil {
			return "", fmt.Errorf("failed to save period: %w", err)
		}
		slog.Info("period closed", "period_id", t.tempPeriod.ID, "end", date.Format(models.DateFormat))
		t.clearAfterClose(t.tempPeriod.ID)
		t.clearMarking()
		return ActionMarkEnd, t.refresh(ctx)
	}

	return "", fmt.Errorf("unexpected marking state %v", t.state)
}

// containingPeriod finds the stored period whose span covers date. An open
// period's span extends through the given date. Callers hold t.mu.
func (t *Tracker) containingPeriod(date time.Time) *models.Period {
	for i := range t.periods {
		p := t.periods[i]
		end := date
		if p.End != nil {
			end = *p.End
		}
		if dateutil.Within(date, dateutil.Interval{Start: p.Start, End: end}) {
			return &t.periods[i]
		}
	}
	return nil
}

// clearMarking returns the machine to Idle. Callers hold t.mu.
func (t *Tracker) clearMarking() {
	t.state = StateIdle
	t.tempPeriod = nil
}

// clearAfterClose drops the session flags once the period they guard has an
// end date (or is gone). Callers hold t.mu.
func (t *Tracker) clearAfterClose(id string) {
	if t.recentID == id {
		t.recentID = ""
	}
	t.resolving = false
}

// RemovePeriod deletes the period whose start or end equals date. A miss is
// a no-op, not an error: the bool reports whether anything was removed.
func (t *Tracker) RemovePeriod(ctx context.Context, date time.Time) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	date = dateutil.Day(date)
	var target *models.Period
	for i := range t.periods {
		p := t.periods[i]
		if dateutil.SameDay(p.Start, date) || (p.End != nil && dateutil.SameDay(*p.End, date)) {
			target = &t.periods[i]
			break
		}
	}

	if target == nil {
		slog.Info("no period found to remove", "date", date.Format(models.DateFormat))
		return false, nil
	}

	if err := t.store.DeletePeriod(ctx, target.ID); err != nil {
		return false, fmt.Errorf("failed to remove period: %w", err)
	}
	slog.Info("period removed", "period_id", target.ID)

	t.clearAfterClose(target.ID)
	t.clearMarking()
	return true, t.refresh(ctx)
}

// HandleOldPeriodPromptResponse resolves the stale-period prompt. Keeping
// the period arms MarkingEnd so the very next date selection closes it;
// declining deletes it outright. Either way the blocking state ends.
func (t *Tracker) HandleOldPeriodPromptResponse(ctx context.Context, keep bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateResolvingOldPeriod || t.stalePeriod == nil {
		return nil
	}

	stale := *t.stalePeriod
	t.stalePeriod = nil

	if keep {
		t.tempPeriod = &stale
		t.state = StateMarkingEnd
		t.resolving = true
		slog.Info("stale period kept, awaiting end date", "period_id", stale.ID)
		return nil
	}

	if err := t.store.DeletePeriod(ctx, stale.ID); err != nil {
		// Restore the blocking state so the prompt can be retried.
		t.stalePeriod = &stale
		return fmt.Errorf("failed to remove period: %w", err)
	}
	slog.Info("stale period removed", "period_id", stale.ID)

	t.state = StateIdle
	t.resolving = false
	return t.refresh(ctx)
}

// MarkAction reports, without mutating anything, what HandleMarkPeriod would
// do for the date. The renderer uses it as button text.
func (t *Tracker) MarkAction(selected time.Time) (action string, allowed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	date := dateutil.Day(selected)
	today := t.today()

	if date.After(today) {
		return ActionFutureDate, false
	}
	if t.state == StateResolvingOldPeriod {
		return ActionBlocked, false
	}

	for _, p := range t.periods {
		if dateutil.SameDay(date, dateutil.SubDays(p.Start, 1)) ||
			(p.End != nil && dateutil.SameDay(date, dateutil.AddDays(*p.End, 1))) {
			return ActionExtend, true
		}
	}

	if p := t.containingPeriod(date); p != nil {
		if dateutil.SameDay(date, p.Start) || (p.End != nil && dateutil.SameDay(date, *p.End)) {
			return ActionRemove, true
		}
		if date.Before(dateutil.Day(p.Start)) {
			return ActionEndBefore, false
		}
		if p.Ongoing() {
			return ActionMarkEnd, true
		}
		return ActionUpdateEnd, true
	}

	if t.state == StateMarkingEnd {
		if t.tempPeriod != nil && date.Before(dateutil.Day(t.tempPeriod.Start)) {
			return ActionEndBefore, false
		}
		return ActionMarkEnd, true
	}

	for _, p := range t.periods {
		if p.Ongoing() && !t.resolving {
			return ActionEndBefore, false
		}
	}

	return ActionMarkStart, true
}

// Snapshot accessors. Each returns a copy; derived state is only ever
// replaced wholesale under the mutex.

// State returns the current machine state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Periods returns the last-known-good period list, most recent first.
func (t *Tracker) Periods() []models.Period {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Period, len(t.periods))
	copy(out, t.periods)
	return out
}

// Derived returns the current estimates, phases, and predictions.
func (t *Tracker) Derived() cycle.Derived {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.derived
}

// TempPeriod returns the pending open period while in MarkingEnd, else nil.
func (t *Tracker) TempPeriod() *models.Period {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tempPeriod == nil {
		return nil
	}
	p := *t.tempPeriod
	return &p
}

// StalePeriod returns the period awaiting resolution, else nil.
func (t *Tracker) StalePeriod() *models.Period {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stalePeriod == nil {
		return nil
	}
	p := *t.stalePeriod
	return &p
}

// PhaseForDate classifies a date against the current snapshot.
func (t *Tracker) PhaseForDate(date time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cycle.PhaseForDate(date, t.derived.Phases, t.periods, t.derived.Predictions, t.today())
}

// Today exposes the tracker's normalized clock for the handlers.
func (t *Tracker) Today() time.Time {
	return t.today()
}
