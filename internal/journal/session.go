// Package journal holds the in-memory session state: the loaded record set
// and the derived views computed from it. Derivations are pure functions of
// (records, date range), so the only synchronization needed is around
// swapping the record set itself.
package journal

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tradelens/internal/analytics"
	"tradelens/internal/dates"
	"tradelens/internal/logging"
	"tradelens/internal/models"
	"tradelens/internal/sheets"
)

// Fetcher retrieves a complete record set from some data source.
type Fetcher interface {
	FetchAll(ctx context.Context) (sheets.Dataset, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (sheets.Dataset, error)

func (f FetcherFunc) FetchAll(ctx context.Context) (sheets.Dataset, error) { return f(ctx) }

// Session is the application state. A fetch that resolves replaces the whole
// record set atomically; whichever fetch resolves last wins, and readers
// always see a complete, consistent dataset.
type Session struct {
	mu   sync.RWMutex
	data sheets.Dataset

	anchors         analytics.ScoreAnchors
	startingBalance float64
	logger          zerolog.Logger
}

// NewSession creates an empty session.
func NewSession(anchors analytics.ScoreAnchors, startingBalance float64, logger zerolog.Logger) *Session {
	return &Session{
		anchors:         anchors,
		startingBalance: startingBalance,
		logger:          logger,
	}
}

// Load fetches a record set and installs it. A concurrent Load simply
// installs later; there is no cancellation of in-flight fetches.
func (s *Session) Load(ctx context.Context, f Fetcher) error {
	start := time.Now()
	ds, err := f.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.Replace(ds)
	logging.LogFetch(s.logger, string(ds.Source),
		len(ds.Trades), len(ds.DaySummaries), len(ds.DayPerformance), time.Since(start))
	return nil
}

// Replace swaps the session's record set.
func (s *Session) Replace(ds sheets.Dataset) {
	s.mu.Lock()
	s.data = ds
	s.mu.Unlock()
	s.logger.Debug().
		Str("source", string(ds.Source)).
		Int("trades", len(ds.Trades)).
		Msg("Session dataset replaced")
}

// Dataset returns the current record set.
func (s *Session) Dataset() sheets.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Empty reports whether no records are loaded.
func (s *Session) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Trades) == 0 && len(s.data.DaySummaries) == 0
}

// View is the complete derived state for one date range: everything the
// dashboard and chart commands render.
type View struct {
	Range  dates.DateRange
	Source models.DataSource

	Trades         []models.Trade
	DaySummaries   []models.DaySummary
	DayPerformance []models.DayPerformance

	Metrics analytics.Metrics
	Score   analytics.Score

	Daily      []analytics.DailyPoint
	Cumulative []analytics.CumulativePoint
	Balance    []analytics.BalancePoint
	Drawdown   []analytics.DrawdownPoint

	TimeScatter     []analytics.TimePoint
	DurationScatter []analytics.DurationPoint

	Setups           []analytics.BreakdownRow
	MarketConditions []analytics.BreakdownRow
	TimeOfDay        []analytics.BreakdownRow
	Directions       []analytics.BreakdownRow
}

// View derives the full dashboard state for a date range. The computation
// reads the record set once and works on its own copies, so concurrent calls
// just duplicate work.
func (s *Session) View(r dates.DateRange) View {
	ds := s.Dataset()

	v := View{Range: r, Source: ds.Source}
	v.Trades = analytics.FilterByRange(ds.Trades, r)
	v.DaySummaries = analytics.FilterSummariesByRange(ds.DaySummaries, r)
	v.DayPerformance = ds.DayPerformance

	v.Metrics = analytics.ComputeMetrics(v.Trades)
	v.Score = analytics.ComputeScore(v.Metrics, s.anchors)

	// Day summaries are the authoritative list of trading days when they
	// exist; otherwise the series fall back to the trades themselves.
	if len(v.DaySummaries) > 0 {
		v.Daily = analytics.DailySeriesFromSummaries(v.DaySummaries)
		v.Cumulative = analytics.CumulativeFromSummaries(v.DaySummaries)
		v.Balance = analytics.BalanceSeries(v.DaySummaries)
	} else {
		v.Daily = analytics.DailySeries(v.Trades)
		v.Cumulative = analytics.CumulativeSeries(v.Daily)
		v.Balance = analytics.BalanceSeriesFromTrades(v.Trades, s.startingBalance)
	}
	v.Drawdown = analytics.DrawdownSeries(v.Daily)

	v.TimeScatter = analytics.TradeTimePoints(v.Trades)
	v.DurationScatter = analytics.TradeDurationPoints(v.Trades)

	v.Setups = analytics.BySetup(v.Trades)
	v.MarketConditions = analytics.ByMarketConditions(v.Trades)
	v.TimeOfDay = analytics.ByTimeOfDay(v.Trades)
	v.Directions = analytics.ByDirection(v.Trades)
	return v
}

// Calendar builds the month grid for the given month from the current record
// set, preferring day summaries as the per-day aggregate source.
func (s *Session) Calendar(year int, month time.Month) analytics.MonthView {
	ds := s.Dataset()
	var aggs analytics.DayAggregates
	if len(ds.DaySummaries) > 0 {
		aggs = analytics.AggregateSummaries(ds.DaySummaries)
	} else {
		aggs = analytics.AggregateTrades(ds.Trades)
	}
	return analytics.MonthGrid(aggs, year, month)
}

// Tracker builds the weekly discipline matrix for the work week containing
// anchor.
func (s *Session) Tracker(anchor time.Time) analytics.WeekView {
	return analytics.WeekMatrix(s.Dataset().DayPerformance, anchor)
}
