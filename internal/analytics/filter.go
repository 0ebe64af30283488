// Package analytics derives dashboard metrics, time series, breakdowns, and
// calendar aggregates from journal records. All functions are pure: they take
// slices in and return values out, so callers can recompute freely when the
// active date range changes.
package analytics

import (
	"math"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// FilterByRange returns the trades whose day falls inside r. Trades with
// unparseable timestamps are excluded from every range, the unbounded one
// included. The input slice is never modified.
func FilterByRange(trades []models.Trade, r dates.DateRange) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, tr := range trades {
		if r.ContainsKey(tr.Timestamp) {
			out = append(out, tr)
		}
	}
	return out
}

// FilterSummariesByRange returns the day summaries whose date falls inside r.
// Rows with unparseable dates are excluded.
func FilterSummariesByRange(days []models.DaySummary, r dates.DateRange) []models.DaySummary {
	out := make([]models.DaySummary, 0, len(days))
	for _, d := range days {
		if r.ContainsKey(d.Date) {
			out = append(out, d)
		}
	}
	return out
}

// Round2 rounds to two decimal places. Derived values stay full precision
// internally and are rounded once at the point of emission.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parsedDayKey returns the canonical day-key for a timestamp, reporting
// whether it parsed at all. Day-grouping functions skip records with
// unparseable dates instead of emitting raw-string buckets.
func parsedDayKey(ts string) (string, bool) {
	t, err := dates.Parse(ts)
	if err != nil {
		return "", false
	}
	return dates.KeyOf(t), true
}
