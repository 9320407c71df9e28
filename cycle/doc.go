// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cycle derives phases and forecasts from logged periods.

Everything in this package is a pure function of the period list plus an
explicit "today"; nothing here holds state or touches storage. The caller
(the tracker) re-derives after every confirmed store mutation via DeriveAll.

# Estimates

AverageCycleLength is the mean gap between consecutive period starts
(default 28 days with fewer than two complete periods). AveragePeriodLength
is the mean inclusive duration of complete periods (default 5 days with
none).

# Forecasting

PredictNextPeriod projects one period ahead of the anchor (the ongoing
period if one exists, else the most recent complete one).
PredictFuturePeriods projects a run of cycles, each start computed
independently from the anchor so rounding never compounds, and prefixes a
near-term remainder prediction while a period is ongoing and its expected
duration has not elapsed.

# Phases

CalculateCyclePhases splits the current cycle into Menstruation, Follicular
(roughly 35% of the gap to the next period), a single Ovulation day, and
Luteal. PhaseForDate classifies one date against real periods first, then
phases, then prediction windows.
*/
package cycle
