// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielhkuo/cycletrack/middleware"
	"github.com/danielhkuo/cycletrack/models"
	"github.com/danielhkuo/cycletrack/tracker"
)

var marksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cycletrack_marks_total",
	Help: "Accepted mark actions, by resulting action.",
}, []string{"action"})

type CycleHandler struct {
	tracker *tracker.Tracker
}

func NewCycleHandler(t *tracker.Tracker) *CycleHandler {
	return &CycleHandler{tracker: t}
}

// parseDate reads a YYYY-MM-DD value; empty and malformed are both errors.
func parseDate(value string) (time.Time, error) {
	return time.Parse(models.DateFormat, value)
}

func periodsJSON(periods []models.Period) []models.PeriodJSON {
	out := make([]models.PeriodJSON, len(periods))
	for i, p := range periods {
		out[i] = models.NewPeriodJSON(p)
	}
	return out
}

// ListPeriods handles GET /cycle/periods
func (h *CycleHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ListPeriodsResponse{
		Periods: periodsJSON(h.tracker.Periods()),
	})
}

// MarkPeriod handles POST /cycle/mark
func (h *CycleHandler) MarkPeriod(w http.ResponseWriter, r *http.Request) {
	var req models.MarkPeriodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	action, err := h.tracker.HandleMarkPeriod(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrBlockedByStalePeriod):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, tracker.ErrFutureDate),
			errors.Is(err, tracker.ErrEndBeforeStart),
			errors.Is(err, tracker.ErrOngoingPeriod):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("mark period failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save period")
		}
		return
	}

	marksTotal.WithLabelValues(action).Inc()

	middleware.JSONResponse(w, http.StatusOK, models.MarkPeriodResponse{
		Action:  action,
		State:   h.tracker.State().String(),
		Periods: periodsJSON(h.tracker.Periods()),
	})
}

// RemovePeriod handles DELETE /cycle/periods?date=YYYY-MM-DD
func (h *CycleHandler) RemovePeriod(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	removed, err := h.tracker.RemovePeriod(r.Context(), date)
	if err != nil {
		slog.Error("remove period failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove period")
		return
	}

	// A miss is a no-op, not an error.
	middleware.JSONResponse(w, http.StatusOK, models.RemovePeriodResponse{
		Removed: removed,
		Periods: periodsJSON(h.tracker.Periods()),
	})
}

// ResolvePrompt handles POST /cycle/resolve
func (h *CycleHandler) ResolvePrompt(w http.ResponseWriter, r *http.Request) {
	var req models.ResolvePromptRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.tracker.HandleOldPeriodPromptResponse(r.Context(), req.Keep); err != nil {
		slog.Error("resolve prompt failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve period")
		return
	}

	h.writeState(w)
}

// GetState handles GET /cycle/state
func (h *CycleHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w)
}

func (h *CycleHandler) writeState(w http.ResponseWriter) {
	resp := models.TrackerStateResponse{State: h.tracker.State().String()}

	if temp := h.tracker.TempPeriod(); temp != nil {
		pj := models.NewPeriodJSON(*temp)
		resp.TempPeriod = &pj
	}
	if stale := h.tracker.StalePeriod(); stale != nil {
		pj := models.NewPeriodJSON(*stale)
		resp.StalePeriod = &pj
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetCalendar handles GET /cycle/calendar?month=YYYY-MM
func (h *CycleHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	today := h.tracker.Today()
	periods := h.tracker.Periods()

	var days []models.DayState
	for day := month; day.Month() == month.Month(); day = day.AddDate(0, 0, 1) {
		days = append(days, models.DayState{
			Date:   day.Format(models.DateFormat),
			Phase:  h.tracker.PhaseForDate(day),
			Marked: isMarkedDay(day, periods),
			Today:  day.Equal(today),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.CalendarResponse{
		Month: monthStr,
		Days:  days,
	})
}

// isMarkedDay reports whether the day carries real logged data: inside a
// closed period, or the start of an open one.
func isMarkedDay(day time.Time, periods []models.Period) bool {
	for _, p := range periods {
		if p.End != nil {
			if !day.Before(p.Start) && !day.After(*p.End) {
				return true
			}
		} else if day.Equal(p.Start) {
			return true
		}
	}
	return false
}

// GetMarkAction handles GET /cycle/action?date=YYYY-MM-DD
func (h *CycleHandler) GetMarkAction(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	action, allowed := h.tracker.MarkAction(date)
	middleware.JSONResponse(w, http.StatusOK, models.MarkActionResponse{
		Date:    date.Format(models.DateFormat),
		Action:  action,
		Allowed: allowed,
	})
}

// GetInfo handles GET /cycle/info?date=YYYY-MM-DD
func (h *CycleHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	phase := h.tracker.PhaseForDate(date)
	middleware.JSONResponse(w, http.StatusOK, models.PhaseInfoResponse{
		Date:   date.Format(models.DateFormat),
		Phase:  phase,
		Detail: models.PhaseDetailFor(phase),
	})
}

// GetSummary handles GET /cycle/summary
func (h *CycleHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	derived := h.tracker.Derived()

	phases := make([]models.PhaseJSON, len(derived.Phases))
	for i, ph := range derived.Phases {
		phases[i] = models.NewPhaseJSON(ph)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		AverageCycleLength:  derived.CycleLength,
		AveragePeriodLength: derived.PeriodLength,
		Phases:              phases,
		Predictions:         periodsJSON(derived.Predictions),
	})
}
