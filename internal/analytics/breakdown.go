package analytics

import (
	"sort"
	"strings"

	"tradelens/internal/models"
)

// UnknownBucket collects trades whose category value is missing or
// unparseable. They are reported, not dropped.
const UnknownBucket = "Unknown"

// BreakdownRow is one category's aggregate in a categorical breakdown.
type BreakdownRow struct {
	Name    string  `json:"name"`
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
	PnL     float64 `json:"pnl"`
}

// KeyFunc maps a trade to its category label.
type KeyFunc func(models.Trade) string

// BreakdownBy aggregates trades per category label, ordered descending by
// summed P&L. Empty labels fall into the Unknown bucket.
func BreakdownBy(trades []models.Trade, keyFn KeyFunc) []BreakdownRow {
	rows := breakdownRows(trades, keyFn)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].PnL > rows[j].PnL })
	return rows
}

// BreakdownBySorted is BreakdownBy with a caller-supplied ordering.
func BreakdownBySorted(trades []models.Trade, keyFn KeyFunc, less func(a, b BreakdownRow) bool) []BreakdownRow {
	rows := breakdownRows(trades, keyFn)
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return rows
}

func breakdownRows(trades []models.Trade, keyFn KeyFunc) []BreakdownRow {
	byName := make(map[string]*BreakdownRow)
	order := make([]string, 0)
	for _, tr := range trades {
		name := strings.TrimSpace(keyFn(tr))
		if name == "" {
			name = UnknownBucket
		}
		row, ok := byName[name]
		if !ok {
			row = &BreakdownRow{Name: name}
			byName[name] = row
			order = append(order, name)
		}
		row.Trades++
		if tr.IsWin() {
			row.Wins++
		}
		row.PnL += tr.ProfitLoss
	}
	out := make([]BreakdownRow, 0, len(order))
	for _, name := range order {
		row := byName[name]
		if row.Trades > 0 {
			row.WinRate = Round2(float64(row.Wins) / float64(row.Trades) * 100)
		}
		row.PnL = Round2(row.PnL)
		out = append(out, *row)
	}
	return out
}

// BySetup breaks trades down by their recorded setup name.
func BySetup(trades []models.Trade) []BreakdownRow {
	return BreakdownBy(trades, func(tr models.Trade) string { return tr.Setup })
}

// ByMarketConditions breaks trades down by the recorded market conditions.
func ByMarketConditions(trades []models.Trade) []BreakdownRow {
	return BreakdownBy(trades, func(tr models.Trade) string { return tr.MarketConditions })
}

// ByDirection breaks trades down by normalized option direction, Call or Put.
func ByDirection(trades []models.Trade) []BreakdownRow {
	return BreakdownBy(trades, func(tr models.Trade) string {
		return models.NormalizeOptionType(tr.OptionType)
	})
}

// timeSlots lists the session-hour buckets in chronological order. Other and
// Unknown always sort last.
var timeSlots = []string{
	"9:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-1:00",
	"1:00-2:00",
	"2:00-3:00",
	"3:00-4:00",
	"Other",
	UnknownBucket,
}

// ByTimeOfDay breaks trades down by the hour of their entry, in fixed
// chronological bucket order rather than by P&L.
func ByTimeOfDay(trades []models.Trade) []BreakdownRow {
	rank := make(map[string]int, len(timeSlots))
	for i, s := range timeSlots {
		rank[s] = i
	}
	return BreakdownBySorted(trades, timeSlot, func(a, b BreakdownRow) bool {
		return rank[a.Name] < rank[b.Name]
	})
}

// timeSlot buckets an entry time into a one-hour session slot.
func timeSlot(tr models.Trade) string {
	h, _, ok := clockOf(tr.BuyTime)
	if !ok {
		return UnknownBucket
	}
	switch h {
	case 9:
		return "9:00-10:00"
	case 10:
		return "10:00-11:00"
	case 11:
		return "11:00-12:00"
	case 12:
		return "12:00-1:00"
	case 13:
		return "1:00-2:00"
	case 14:
		return "2:00-3:00"
	case 15:
		return "3:00-4:00"
	default:
		return "Other"
	}
}
