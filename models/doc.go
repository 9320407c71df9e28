// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and API request/response types for
the cycletrack server.

# Domain Types

The central type is Period: a logged menstruation interval with a start date
and an optional end date. A nil end means the period is ongoing. CyclePhase
is a derived interval (Menstruation, Follicular, Ovulation, Luteal) computed
by the cycle package; phases are never persisted.

# Wire Types

Dates cross the HTTP boundary as YYYY-MM-DD strings (DateFormat). PeriodJSON
and PhaseJSON are the wire forms of the domain types; NewPeriodJSON and
NewPhaseJSON convert.

# Phase Reference Content

PhaseDetailFor returns the static description, symptom list, and tip
categories the informational panel displays for a phase label.
*/
package models
