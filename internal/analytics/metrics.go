package analytics

import (
	"sort"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// ProfitFactorCap is the sentinel reported when there are profits but no
// losses, where the true ratio would be unbounded.
const ProfitFactorCap = 999

// Metrics is the headline statistics block for a set of trades. All dollar
// and percent fields are rounded to two decimals.
type Metrics struct {
	TotalTrades int `json:"totalTrades"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`

	NetPnL      float64 `json:"netPnl"`
	TotalProfit float64 `json:"totalProfit"`
	TotalLoss   float64 `json:"totalLoss"` // reported as a positive magnitude

	TradeWinPercent float64 `json:"tradeWinPercent"`
	DayWinPercent   float64 `json:"dayWinPercent"`
	TradingDays     int     `json:"tradingDays"`

	ProfitFactor    float64 `json:"profitFactor"`
	AvgWin          float64 `json:"avgWin"`
	AvgLoss         float64 `json:"avgLoss"` // positive magnitude
	AvgWinLossRatio float64 `json:"avgWinLossRatio"`

	MaxDrawdown float64 `json:"maxDrawdown"` // positive magnitude
	LargestWin  float64 `json:"largestWin"`
	LargestLoss float64 `json:"largestLoss"` // negative or zero

	AvgHoldMinutes float64 `json:"avgHoldMinutes"`
}

// ComputeMetrics derives the statistics block from trades. Breakeven trades
// (exactly zero P&L) count toward totals but are neither wins nor losses.
// Trades with unparseable dates count in the trade-level figures but not in
// the day-level ones. An empty input yields all-zero metrics, never NaN.
func ComputeMetrics(trades []models.Trade) Metrics {
	var m Metrics
	m.TotalTrades = len(trades)
	if len(trades) == 0 {
		return m
	}

	var netPnL, totalProfit, totalLoss float64
	var largestWin, largestLoss float64
	dayPnL := make(map[string]float64)
	var holdMinutes, heldTrades int

	for _, tr := range trades {
		pnl := tr.ProfitLoss
		netPnL += pnl
		switch {
		case pnl > 0:
			m.Wins++
			totalProfit += pnl
			if pnl > largestWin {
				largestWin = pnl
			}
		case pnl < 0:
			m.Losses++
			totalLoss += -pnl
			if pnl < largestLoss {
				largestLoss = pnl
			}
		}
		if key, ok := parsedDayKey(tr.Timestamp); ok {
			dayPnL[key] += pnl
		}
		if mins, ok := minutesBetween(tr.BuyTime, tr.SellTime); ok && mins >= 0 {
			holdMinutes += mins
			heldTrades++
		}
	}

	var winningDays int
	for _, pnl := range dayPnL {
		if pnl > 0 {
			winningDays++
		}
	}
	m.TradingDays = len(dayPnL)

	m.NetPnL = Round2(netPnL)
	m.TotalProfit = Round2(totalProfit)
	m.TotalLoss = Round2(totalLoss)
	m.TradeWinPercent = Round2(float64(m.Wins) / float64(m.TotalTrades) * 100)
	if m.TradingDays > 0 {
		m.DayWinPercent = Round2(float64(winningDays) / float64(m.TradingDays) * 100)
	}

	switch {
	case totalLoss > 0:
		m.ProfitFactor = Round2(totalProfit / totalLoss)
	case totalProfit > 0:
		m.ProfitFactor = ProfitFactorCap
	}

	if m.Wins > 0 {
		m.AvgWin = Round2(totalProfit / float64(m.Wins))
	}
	if m.Losses > 0 {
		m.AvgLoss = Round2(totalLoss / float64(m.Losses))
	}
	if m.Wins > 0 && m.Losses > 0 {
		avgWin := totalProfit / float64(m.Wins)
		avgLoss := totalLoss / float64(m.Losses)
		m.AvgWinLossRatio = Round2(avgWin / avgLoss)
	}

	m.MaxDrawdown = Round2(maxDrawdown(trades))
	m.LargestWin = Round2(largestWin)
	m.LargestLoss = Round2(largestLoss)
	if heldTrades > 0 {
		m.AvgHoldMinutes = Round2(float64(holdMinutes) / float64(heldTrades))
	}
	return m
}

// maxDrawdown is the largest peak-to-trough drop of the cumulative P&L curve,
// returned as a positive magnitude. Trades are ordered chronologically first
// so the result does not depend on input order.
func maxDrawdown(trades []models.Trade) float64 {
	ordered := sortChronological(trades)
	var cumulative, peak, maxDD float64
	for _, tr := range ordered {
		cumulative += tr.ProfitLoss
		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// sortChronological returns a copy ordered by day, then sell time, then ID.
// The ID tiebreaker keeps the ordering stable across runs.
func sortChronological(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := dates.Key(out[i].Timestamp), dates.Key(out[j].Timestamp)
		if ki != kj {
			return ki < kj
		}
		mi := sellMinutes(out[i])
		mj := sellMinutes(out[j])
		if mi != mj {
			return mi < mj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sellMinutes(tr models.Trade) int {
	h, m, ok := clockOf(tr.SellTime)
	if !ok {
		return -1
	}
	return h*60 + m
}
