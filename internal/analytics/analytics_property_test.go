package analytics

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// tradeSliceGen generates journal trades spread over a small window of days
// with P&L values on both sides of zero.
func tradeSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Struct(
		reflect.TypeOf(tradeSeed{}),
		map[string]gopter.Gen{
			"Day": gen.IntRange(0, 20),
			"PnL": gen.Float64Range(-5000, 5000),
		},
	)).Map(func(raw []tradeSeed) []models.Trade {
		out := make([]models.Trade, 0, len(raw))
		base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		for i, r := range raw {
			day := base.AddDate(0, 0, r.Day)
			out = append(out, models.Trade{
				ID:         fmt.Sprintf("trade-%d", i),
				Timestamp:  dates.KeyOf(day),
				ProfitLoss: r.PnL,
			})
		}
		return out
	})
}

type tradeSeed struct {
	Day int
	PnL float64
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0
	return gopter.NewProperties(parameters)
}

func TestProperty_MetricsBounds(t *testing.T) {
	properties := newProperties()

	properties.Property("win percent stays in [0, 100] and counts partition", prop.ForAll(
		func(trades []models.Trade) bool {
			m := ComputeMetrics(trades)
			if m.TradeWinPercent < 0 || m.TradeWinPercent > 100 {
				return false
			}
			if m.DayWinPercent < 0 || m.DayWinPercent > 100 {
				return false
			}
			return m.Wins+m.Losses <= m.TotalTrades && m.TotalTrades == len(trades)
		},
		tradeSliceGen(50),
	))

	properties.Property("no metric is NaN or infinite", prop.ForAll(
		func(trades []models.Trade) bool {
			m := ComputeMetrics(trades)
			for _, v := range []float64{
				m.NetPnL, m.TotalProfit, m.TotalLoss, m.TradeWinPercent,
				m.DayWinPercent, m.ProfitFactor, m.AvgWin, m.AvgLoss,
				m.AvgWinLossRatio, m.MaxDrawdown, m.LargestWin, m.LargestLoss,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return false
				}
			}
			return true
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_MaxDrawdownNonNegative(t *testing.T) {
	properties := newProperties()

	properties.Property("max drawdown is never negative", prop.ForAll(
		func(trades []models.Trade) bool {
			return ComputeMetrics(trades).MaxDrawdown >= 0
		},
		tradeSliceGen(50),
	))

	properties.Property("all-winning sequences have zero drawdown", prop.ForAll(
		func(trades []models.Trade) bool {
			for i := range trades {
				trades[i].ProfitLoss = math.Abs(trades[i].ProfitLoss)
			}
			return ComputeMetrics(trades).MaxDrawdown == 0
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_CumulativeMatchesPrefixSums(t *testing.T) {
	properties := newProperties()

	properties.Property("each cumulative point equals the prefix sum of the daily series", prop.ForAll(
		func(trades []models.Trade) bool {
			daily := DailySeries(trades)
			cum := CumulativeSeries(daily)
			if len(cum) != len(daily) {
				return false
			}
			var sum float64
			for i, p := range cum {
				sum += daily[i].PnL
				if math.Abs(p.PnL-Round2(sum)) > 1e-9 {
					return false
				}
				if i > 0 && p.Date <= cum[i-1].Date {
					return false
				}
			}
			return true
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_FilterIdempotent(t *testing.T) {
	properties := newProperties()

	r := dates.DateRange{
		Start: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	properties.Property("filtering twice equals filtering once", prop.ForAll(
		func(trades []models.Trade) bool {
			once := FilterByRange(trades, r)
			twice := FilterByRange(once, r)
			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i].ID != twice[i].ID {
					return false
				}
			}
			return true
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_BreakdownPartitionsTrades(t *testing.T) {
	properties := newProperties()

	properties.Property("breakdown rows partition the trade set and preserve total P&L", prop.ForAll(
		func(trades []models.Trade) bool {
			for i := range trades {
				trades[i].Setup = []string{"A", "B", "C", ""}[i%4]
			}
			rows := BySetup(trades)
			var n int
			var pnl float64
			for _, row := range rows {
				n += row.Trades
				pnl += row.PnL
				if row.WinRate < 0 || row.WinRate > 100 {
					return false
				}
			}
			var want float64
			for _, tr := range trades {
				want += tr.ProfitLoss
			}
			// Rows are rounded individually, so allow a cent per row.
			return n == len(trades) && math.Abs(pnl-want) <= 0.01*float64(len(rows)+1)
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

func TestProperty_ScoreWithinBounds(t *testing.T) {
	properties := newProperties()

	properties.Property("overall score and every component stay in [0, 100]", prop.ForAll(
		func(trades []models.Trade) bool {
			s := ComputeScore(ComputeMetrics(trades), DefaultAnchors())
			c := s.Components
			for _, v := range []float64{
				c.WinPercent, c.ProfitFactor, c.Consistency,
				c.AvgWinLoss, c.MaxDrawdown, c.RecoveryFactor,
			} {
				if v < 0 || v > 100 {
					return false
				}
			}
			return s.Overall >= 0 && s.Overall <= 100
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}
