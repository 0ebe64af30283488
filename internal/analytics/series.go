package analytics

import (
	"sort"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// DailyPoint is one day's P&L.
type DailyPoint struct {
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}

// CumulativePoint is the running P&L through a day. Percent is populated only
// in the summary-driven variant, where the source records carry a daily
// percent alongside the dollar figure.
type CumulativePoint struct {
	Date    string  `json:"date"`
	PnL     float64 `json:"pnl"`
	Percent float64 `json:"percent"`
}

// BalancePoint is the account balance at the close of a day.
type BalancePoint struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// DrawdownPoint is the signed distance from the running peak through a day,
// always <= 0.
type DrawdownPoint struct {
	Date     string  `json:"date"`
	Drawdown float64 `json:"drawdown"`
}

// DailySeries groups trades by day and emits one point per day with at least
// one trade, sorted ascending by day-key. Gaps are not zero-filled; trades
// with unparseable dates are skipped.
func DailySeries(trades []models.Trade) []DailyPoint {
	byDay := make(map[string]float64)
	for _, tr := range trades {
		key, ok := parsedDayKey(tr.Timestamp)
		if !ok {
			continue
		}
		byDay[key] += tr.ProfitLoss
	}
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]DailyPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, DailyPoint{Date: k, PnL: Round2(byDay[k])})
	}
	return out
}

// DailySeriesFromSummaries emits one point per day summary, treating the
// summary list as the authoritative set of trading days. Rows with empty
// dates are skipped.
func DailySeriesFromSummaries(days []models.DaySummary) []DailyPoint {
	out := make([]DailyPoint, 0, len(days))
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		out = append(out, DailyPoint{Date: dates.Key(d.Date), PnL: Round2(d.ProfitLoss)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CumulativeSeries is the running-sum transform of a daily series, computed
// as a single scan. Rounding happens at emission only so the running sum does
// not compound rounding error.
func CumulativeSeries(daily []DailyPoint) []CumulativePoint {
	out := make([]CumulativePoint, 0, len(daily))
	var sum float64
	for _, p := range daily {
		sum += p.PnL
		out = append(out, CumulativePoint{Date: p.Date, PnL: Round2(sum)})
	}
	return out
}

// CumulativeFromSummaries accumulates both the dollar and percent columns of
// the day summaries in day order.
func CumulativeFromSummaries(days []models.DaySummary) []CumulativePoint {
	sorted := make([]models.DaySummary, 0, len(days))
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return dates.Key(sorted[i].Date) < dates.Key(sorted[j].Date)
	})
	out := make([]CumulativePoint, 0, len(sorted))
	var pnl, pct float64
	for _, d := range sorted {
		pnl += d.ProfitLoss
		pct += d.ProfitLossPercent
		out = append(out, CumulativePoint{
			Date:    dates.Key(d.Date),
			PnL:     Round2(pnl),
			Percent: Round2(pct),
		})
	}
	return out
}

// BalanceSeries reads the closing balance straight off the day summaries,
// which are authoritative for balance even when they disagree with the
// trade-derived P&L.
func BalanceSeries(days []models.DaySummary) []BalancePoint {
	sorted := make([]models.DaySummary, 0, len(days))
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return dates.Key(sorted[i].Date) < dates.Key(sorted[j].Date)
	})
	out := make([]BalancePoint, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, BalancePoint{Date: dates.Key(d.Date), Balance: Round2(d.EndBalance)})
	}
	return out
}

// BalanceSeriesFromTrades reconstructs a balance curve from trades alone,
// seeded from a known starting balance. Used when no day summaries exist for
// the selected range.
func BalanceSeriesFromTrades(trades []models.Trade, startingBalance float64) []BalancePoint {
	daily := DailySeries(trades)
	out := make([]BalancePoint, 0, len(daily))
	balance := startingBalance
	for _, p := range daily {
		balance += p.PnL
		out = append(out, BalancePoint{Date: p.Date, Balance: Round2(balance)})
	}
	return out
}

// DrawdownSeries emits the per-day signed drawdown of the cumulative curve,
// cumulative minus running peak.
func DrawdownSeries(daily []DailyPoint) []DrawdownPoint {
	out := make([]DrawdownPoint, 0, len(daily))
	var cumulative, peak float64
	for _, p := range daily {
		cumulative += p.PnL
		if cumulative > peak {
			peak = cumulative
		}
		out = append(out, DrawdownPoint{Date: p.Date, Drawdown: Round2(cumulative - peak)})
	}
	return out
}

// TimePoint locates a trade's P&L at its entry time of day, hour expressed as
// a decimal for scatter plotting.
type TimePoint struct {
	Hour   float64 `json:"hour"`
	PnL    float64 `json:"pnl"`
	Ticker string  `json:"ticker"`
	Win    bool    `json:"win"`
}

// DurationPoint locates a trade's P&L against its hold time in minutes.
type DurationPoint struct {
	Minutes int     `json:"minutes"`
	PnL     float64 `json:"pnl"`
	Ticker  string  `json:"ticker"`
	Win     bool    `json:"win"`
}

// TradeTimePoints maps each trade with a parseable entry time inside regular
// session hours (9 through 16) to a scatter point.
func TradeTimePoints(trades []models.Trade) []TimePoint {
	out := make([]TimePoint, 0, len(trades))
	for _, tr := range trades {
		h, m, ok := clockOf(tr.BuyTime)
		if !ok || h < 9 || h > 16 {
			continue
		}
		out = append(out, TimePoint{
			Hour:   float64(h) + float64(m)/60,
			PnL:    Round2(tr.ProfitLoss),
			Ticker: tr.Ticker,
			Win:    tr.IsWin(),
		})
	}
	return out
}

// TradeDurationPoints maps hold times to scatter points. Sub-minute holds
// clamp to one minute; holds over ten hours are treated as data entry errors
// and dropped.
func TradeDurationPoints(trades []models.Trade) []DurationPoint {
	out := make([]DurationPoint, 0, len(trades))
	for _, tr := range trades {
		mins, ok := minutesBetween(tr.BuyTime, tr.SellTime)
		if !ok || mins > 600 || mins < 0 {
			continue
		}
		if mins < 1 {
			mins = 1
		}
		out = append(out, DurationPoint{
			Minutes: mins,
			PnL:     Round2(tr.ProfitLoss),
			Ticker:  tr.Ticker,
			Win:     tr.IsWin(),
		})
	}
	return out
}
