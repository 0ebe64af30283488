package analytics

import (
	"testing"

	"tradelens/internal/models"
)

func TestDailySeriesGroupsAndSorts(t *testing.T) {
	trades := []models.Trade{
		trade("2025-01-02", 30),
		trade("2025-01-01", 100),
		trade("2025-01-02", -10),
	}
	got := DailySeries(trades)
	want := []DailyPoint{{"2025-01-01", 100}, {"2025-01-02", 20}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDailySeriesFromSummariesSkipsEmptyDates(t *testing.T) {
	days := []models.DaySummary{
		{Date: "2025-01-02", ProfitLoss: -50},
		{Date: "", ProfitLoss: 999},
		{Date: "2025-01-01", ProfitLoss: 100},
	}
	got := DailySeriesFromSummaries(days)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Date != "2025-01-01" || got[1].Date != "2025-01-02" {
		t.Errorf("order = %v, %v", got[0].Date, got[1].Date)
	}
}

func TestCumulativeSeriesRoundTrip(t *testing.T) {
	daily := []DailyPoint{{"2025-01-01", 100}, {"2025-01-02", -150}, {"2025-01-03", 50}}
	cum := CumulativeSeries(daily)
	want := []float64{100, -50, 0}
	for i, p := range cum {
		if p.PnL != want[i] {
			t.Errorf("cumulative[%d] = %v, want %v", i, p.PnL, want[i])
		}
	}
}

func TestCumulativeFromSummariesTracksPercent(t *testing.T) {
	days := []models.DaySummary{
		{Date: "2025-01-01", ProfitLoss: 100, ProfitLossPercent: 1.5},
		{Date: "2025-01-02", ProfitLoss: -40, ProfitLossPercent: -0.5},
	}
	got := CumulativeFromSummaries(days)
	if got[1].PnL != 60 || got[1].Percent != 1 {
		t.Errorf("final point = %+v, want PnL 60 Percent 1", got[1])
	}
}

func TestBalanceSeriesUsesEndBalance(t *testing.T) {
	days := []models.DaySummary{
		{Date: "2025-01-02", StartBalance: 10100, EndBalance: 10050, ProfitLoss: -50},
		{Date: "2025-01-01", StartBalance: 10000, EndBalance: 10100, ProfitLoss: 95},
	}
	got := BalanceSeries(days)
	if got[0].Balance != 10100 || got[1].Balance != 10050 {
		t.Errorf("balances = %v, %v", got[0].Balance, got[1].Balance)
	}
}

func TestBalanceSeriesFromTradesSeeded(t *testing.T) {
	trades := []models.Trade{trade("2025-01-01", 100), trade("2025-01-02", -50)}
	got := BalanceSeriesFromTrades(trades, 5000)
	if got[0].Balance != 5100 || got[1].Balance != 5050 {
		t.Errorf("balances = %v, %v, want 5100, 5050", got[0].Balance, got[1].Balance)
	}
}

func TestDrawdownSeriesSigned(t *testing.T) {
	daily := []DailyPoint{{"2025-01-01", 100}, {"2025-01-02", -150}, {"2025-01-03", 50}}
	got := DrawdownSeries(daily)
	want := []float64{0, -150, -100}
	for i, p := range got {
		if p.Drawdown != want[i] {
			t.Errorf("drawdown[%d] = %v, want %v", i, p.Drawdown, want[i])
		}
		if p.Drawdown > 0 {
			t.Errorf("drawdown[%d] = %v, must be <= 0", i, p.Drawdown)
		}
	}
}

func TestDailySeriesSkipsUnparseableDates(t *testing.T) {
	trades := []models.Trade{
		trade("2025-06-02", 100),
		trade("not-a-date", 50),
		trade("", -25),
	}
	got := DailySeries(trades)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Date != "2025-06-02" || got[0].PnL != 100 {
		t.Errorf("point = %+v", got[0])
	}
}

func TestTradeTimePoints(t *testing.T) {
	trades := []models.Trade{
		{Timestamp: "2025-01-01", Ticker: "SPY", BuyTime: "9:30:00", ProfitLoss: 25},
		{Timestamp: "2025-01-01", Ticker: "QQQ", BuyTime: "17:00:00", ProfitLoss: 10}, // outside session
		{Timestamp: "2025-01-01", Ticker: "IWM", BuyTime: "", ProfitLoss: 5},          // unparseable
	}
	got := TradeTimePoints(trades)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := TimePoint{Hour: 9.5, PnL: 25, Ticker: "SPY", Win: true}
	if got[0] != want {
		t.Errorf("point = %+v, want %+v", got[0], want)
	}
}

func TestTradeDurationPoints(t *testing.T) {
	trades := []models.Trade{
		{Ticker: "SPY", BuyTime: "9:30:00", SellTime: "9:30:20", ProfitLoss: 5},    // clamps to 1 minute
		{Ticker: "QQQ", BuyTime: "9:30:00", SellTime: "10:15:00", ProfitLoss: -40}, // 45 minutes
		{Ticker: "IWM", BuyTime: "9:30:00", SellTime: "21:00:00", ProfitLoss: 10},  // over 10 hours, dropped
	}
	got := TradeDurationPoints(trades)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Minutes != 1 || got[1].Minutes != 45 {
		t.Errorf("minutes = %d, %d, want 1, 45", got[0].Minutes, got[1].Minutes)
	}
	if !got[0].Win || got[0].Ticker != "SPY" {
		t.Errorf("first point = %+v", got[0])
	}
	if got[1].Win || got[1].Ticker != "QQQ" {
		t.Errorf("second point = %+v", got[1])
	}
}
