package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tradelens/internal/analytics"
	"tradelens/internal/dates"
	"tradelens/internal/models"
	"tradelens/internal/sheets"
)

func testDataset() sheets.Dataset {
	return sheets.Dataset{
		Source: models.SourceMock,
		Trades: []models.Trade{
			{ID: "a", Timestamp: "2025-06-02", Setup: "Breakout", OptionType: "Call", ProfitLoss: 100},
			{ID: "b", Timestamp: "2025-06-03", Setup: "Reversal", OptionType: "Put", ProfitLoss: -40},
			{ID: "c", Timestamp: "2025-07-01", Setup: "Breakout", OptionType: "Call", ProfitLoss: 25},
		},
		DaySummaries: []models.DaySummary{
			{Date: "2025-06-02", EndBalance: 25100, ProfitLoss: 100},
			{Date: "2025-06-03", EndBalance: 25060, ProfitLoss: -40},
		},
		DayPerformance: []models.DayPerformance{
			{Date: "2025-06-02", PremarketRoutine: 4},
		},
	}
}

func newTestSession() *Session {
	return NewSession(analytics.DefaultAnchors(), 25000, zerolog.Nop())
}

func TestSessionLoad(t *testing.T) {
	s := newTestSession()
	if !s.Empty() {
		t.Fatal("new session should be empty")
	}
	err := s.Load(context.Background(), FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
		return testDataset(), nil
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Empty() {
		t.Error("session should hold records after Load")
	}
}

func TestSessionLoadErrorKeepsOldData(t *testing.T) {
	s := newTestSession()
	s.Replace(testDataset())

	err := s.Load(context.Background(), FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
		return sheets.Dataset{}, errors.New("network down")
	}))
	if err == nil {
		t.Fatal("Load should surface the fetch error")
	}
	if s.Empty() {
		t.Error("a failed fetch must not clobber the loaded records")
	}
}

func TestSessionViewJuneRange(t *testing.T) {
	s := newTestSession()
	s.Replace(testDataset())

	r := dates.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	v := s.View(r)

	if len(v.Trades) != 2 {
		t.Fatalf("filtered trades = %d, want 2", len(v.Trades))
	}
	if v.Metrics.NetPnL != 60 {
		t.Errorf("NetPnL = %v, want 60", v.Metrics.NetPnL)
	}
	// Summaries exist for the range, so they drive the series.
	if len(v.Daily) != 2 || v.Daily[0].PnL != 100 {
		t.Errorf("daily = %+v", v.Daily)
	}
	if len(v.Balance) != 2 || v.Balance[1].Balance != 25060 {
		t.Errorf("balance = %+v", v.Balance)
	}
	if len(v.Setups) != 2 {
		t.Errorf("setups = %+v", v.Setups)
	}
	if v.Score.Overall < 0 || v.Score.Overall > 100 {
		t.Errorf("score = %d", v.Score.Overall)
	}
}

func TestSessionViewFallsBackToTrades(t *testing.T) {
	ds := testDataset()
	ds.DaySummaries = nil
	s := newTestSession()
	s.Replace(ds)

	v := s.View(dates.DateRange{})
	if len(v.Daily) != 3 {
		t.Fatalf("daily = %d points, want 3 (one per trading day)", len(v.Daily))
	}
	// Balance reconstructed from the seeded starting balance.
	if v.Balance[0].Balance != 25100 {
		t.Errorf("first balance = %v, want 25100", v.Balance[0].Balance)
	}
}

func TestSessionConcurrentLoadLastWriterWins(t *testing.T) {
	s := newTestSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ds := testDataset()
			ds.Trades = ds.Trades[:1+n%3]
			_ = s.Load(context.Background(), FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
				return ds, nil
			}))
			_ = s.View(dates.DateRange{})
		}(i)
	}
	wg.Wait()

	// Whichever load resolved last, the session holds one complete
	// dataset, never a torn mix.
	n := len(s.Dataset().Trades)
	if n < 1 || n > 3 {
		t.Errorf("dataset trades = %d, want one of the written sizes", n)
	}
}

func TestSessionCalendarPrefersSummaries(t *testing.T) {
	s := newTestSession()
	s.Replace(testDataset())

	view := s.Calendar(2025, time.June)
	if view.MonthlyPnL != 60 {
		t.Errorf("MonthlyPnL = %v, want 60", view.MonthlyPnL)
	}
	if view.TradingDays != 2 {
		t.Errorf("TradingDays = %d, want 2", view.TradingDays)
	}
}

func TestSessionTracker(t *testing.T) {
	s := newTestSession()
	s.Replace(testDataset())

	view := s.Tracker(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	if view.WeekStart != "2025-06-02" {
		t.Errorf("WeekStart = %q", view.WeekStart)
	}
	var premarket analytics.TrackerRow
	for _, row := range view.Rows {
		if row.Category == models.RatingPremarket {
			premarket = row
		}
	}
	if premarket.Average != 4 {
		t.Errorf("premarket average = %v, want 4", premarket.Average)
	}
}
