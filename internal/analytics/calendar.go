package analytics

import (
	"time"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// DayAggregate is one calendar day's rollup, keyed by day-key.
type DayAggregate struct {
	PnL        float64 `json:"pnl"`
	PnLPercent float64 `json:"pnlPercent"`
	Trades     int     `json:"trades"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"winRate"`
}

// DayAggregates maps day-keys to their aggregates. It is the shared input of
// the calendar views regardless of which record type produced it.
type DayAggregates map[string]DayAggregate

// AggregateTrades rolls trades up into per-day aggregates. Trades with
// unparseable dates are skipped.
func AggregateTrades(trades []models.Trade) DayAggregates {
	out := make(DayAggregates)
	for _, tr := range trades {
		key, ok := parsedDayKey(tr.Timestamp)
		if !ok {
			continue
		}
		agg := out[key]
		agg.PnL += tr.ProfitLoss
		agg.PnLPercent += tr.ProfitPercent
		agg.Trades++
		if tr.IsWin() {
			agg.Wins++
		}
		out[key] = agg
	}
	for key, agg := range out {
		if agg.Trades > 0 {
			agg.WinRate = Round2(float64(agg.Wins) / float64(agg.Trades) * 100)
		}
		agg.PnL = Round2(agg.PnL)
		agg.PnLPercent = Round2(agg.PnLPercent)
		out[key] = agg
	}
	return out
}

// AggregateSummaries rolls day summaries up into per-day aggregates, one per
// summary row.
func AggregateSummaries(days []models.DaySummary) DayAggregates {
	out := make(DayAggregates)
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		out[dates.Key(d.Date)] = DayAggregate{
			PnL:        Round2(d.ProfitLoss),
			PnLPercent: Round2(d.ProfitLossPercent),
			Trades:     d.TotalTrades,
			Wins:       d.WinningTrades,
			WinRate:    Round2(d.WinRate),
		}
	}
	return out
}

// DayCell is one cell of the month grid.
type DayCell struct {
	Date    string       `json:"date"`
	Day     int          `json:"day"`
	InMonth bool         `json:"inMonth"`
	HasData bool         `json:"hasData"`
	Agg     DayAggregate `json:"agg"`
}

// WeekTotal is one displayed week's subtotal over its in-month cells.
type WeekTotal struct {
	PnL         float64 `json:"pnl"`
	PnLPercent  float64 `json:"pnlPercent"`
	TradingDays int     `json:"tradingDays"`
}

// MonthView is a full calendar month laid out in Sunday-start weeks, from
// the week containing the 1st through the week containing the last day.
type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	Weeks      [][]DayCell `json:"weeks"` // each inner slice has 7 cells
	WeekTotals []WeekTotal `json:"weekTotals"`

	MonthlyPnL        float64 `json:"monthlyPnl"`
	MonthlyPnLPercent float64 `json:"monthlyPnlPercent"`
	TradingDays       int     `json:"tradingDays"`
}

// MonthGrid lays the aggregates for one month out as a calendar grid with
// weekly subtotals and monthly totals. The aggregate map is read only, so
// navigating between months is just a call with a different year and month.
func MonthGrid(aggs DayAggregates, year int, month time.Month) MonthView {
	view := MonthView{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	cur := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	var monthlyPnL, monthlyPct float64
	for !cur.After(gridEnd) {
		week := make([]DayCell, 0, 7)
		var wt WeekTotal
		for i := 0; i < 7; i++ {
			key := dates.KeyOf(cur)
			agg, has := aggs[key]
			cell := DayCell{
				Date:    key,
				Day:     cur.Day(),
				InMonth: cur.Month() == month,
				HasData: has,
				Agg:     agg,
			}
			if cell.InMonth && has {
				wt.PnL += agg.PnL
				wt.PnLPercent += agg.PnLPercent
				wt.TradingDays++
				monthlyPnL += agg.PnL
				monthlyPct += agg.PnLPercent
				view.TradingDays++
			}
			week = append(week, cell)
			cur = cur.AddDate(0, 0, 1)
		}
		wt.PnL = Round2(wt.PnL)
		wt.PnLPercent = Round2(wt.PnLPercent)
		view.Weeks = append(view.Weeks, week)
		view.WeekTotals = append(view.WeekTotals, wt)
	}
	view.MonthlyPnL = Round2(monthlyPnL)
	view.MonthlyPnLPercent = Round2(monthlyPct)
	return view
}
