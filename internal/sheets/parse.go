package sheets

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"tradelens/internal/logging"
	"tradelens/internal/models"
)

// Trade journal column positions. Rows are positional; the header row names
// these but is discarded.
const (
	colTimestamp = iota
	colTxnID
	colTicker
	colOptionType
	colStrike
	colExpiration
	colQuantity
	colBuyPrice
	colSellPrice
	colBuyTime
	colSellTime
	colProfitPercent
	colThesis
	colRollup
	colMarketConditions
	colTrendAlignment
	colSetup
	colEntry
	colExit
	colRiskSizing
	colBypassed
	colBypassedArea
	colAreasToImprove
	colChartScreenshot

	tradeColumns = iota
)

// ParseTrades maps raw trade journal rows to Trade records. Row 0 is the
// header and is discarded. Malformed numeric cells coerce to defaults so one
// bad row never aborts the rest of the set.
func ParseTrades(rows [][]string, logger zerolog.Logger) []models.Trade {
	if len(rows) < 2 {
		return nil
	}
	logger = logging.WithSheet(logger, "trades")
	out := make([]models.Trade, 0, len(rows)-1)
	for i, row := range rows[1:] {
		row = padRow(row, tradeColumns)
		tr := models.Trade{
			ID:             row[colTxnID],
			Timestamp:      row[colTimestamp],
			Ticker:         row[colTicker],
			OptionType:     row[colOptionType],
			Strike:         parseFloat(row[colStrike], "strike", i+1, logger),
			ExpirationDate: row[colExpiration],
			Quantity:       parseQuantity(row[colQuantity], i+1, logger),
			BuyPrice:       parseFloat(row[colBuyPrice], "buy price", i+1, logger),
			SellPrice:      parseFloat(row[colSellPrice], "sell price", i+1, logger),
			BuyTime:        row[colBuyTime],
			SellTime:       row[colSellTime],
			ProfitPercent:  parseFloat(row[colProfitPercent], "profit percent", i+1, logger),

			TradeThesis:      row[colThesis],
			Rollup:           row[colRollup],
			MarketConditions: row[colMarketConditions],
			TrendAlignment:   row[colTrendAlignment],
			Setup:            row[colSetup],
			Entry:            row[colEntry],
			Exit:             row[colExit],
			RiskSizing:       row[colRiskSizing],
			BypassedRules:    row[colBypassed],
			BypassedArea:     row[colBypassedArea],
			AreasToImprove:   row[colAreasToImprove],
			ChartScreenshot:  row[colChartScreenshot],
		}
		if tr.ID == "" {
			tr.ID = fmt.Sprintf("trade-%d", i)
		}
		tr.ProfitLoss = models.DeriveProfitLoss(tr.BuyPrice, tr.SellPrice, tr.Quantity)
		out = append(out, tr)
	}
	return out
}

// ParseDaySummaries maps raw day summary rows to DaySummary records. Row 0
// is the header.
func ParseDaySummaries(rows [][]string, logger zerolog.Logger) []models.DaySummary {
	if len(rows) < 2 {
		return nil
	}
	logger = logging.WithSheet(logger, "day_summary")
	out := make([]models.DaySummary, 0, len(rows)-1)
	for i, row := range rows[1:] {
		row = padRow(row, 11)
		out = append(out, models.DaySummary{
			Date:              row[0],
			StartBalance:      parseFloat(row[1], "start balance", i+1, logger),
			EndBalance:        parseFloat(row[2], "end balance", i+1, logger),
			ProfitLoss:        parseFloat(row[3], "profit/loss", i+1, logger),
			ProfitLossPercent: parseFloat(row[4], "profit/loss percent", i+1, logger),
			TotalTrades:       parseInt(row[5], "total trades", i+1, logger),
			WinningTrades:     parseInt(row[6], "winning trades", i+1, logger),
			LosingTrades:      parseInt(row[7], "losing trades", i+1, logger),
			OpenPositions:     parseInt(row[8], "open positions", i+1, logger),
			WinRate:           parseFloat(row[9], "win rate", i+1, logger),
			AvgProfitPercent:  parseFloat(row[10], "avg profit percent", i+1, logger),
		})
	}
	return out
}

// ParseDayPerformance maps raw discipline-rating rows to DayPerformance
// records. When the sheet's own average column is blank, the average is
// recomputed as the rounded mean of the six ratings.
func ParseDayPerformance(rows [][]string, logger zerolog.Logger) []models.DayPerformance {
	if len(rows) < 2 {
		return nil
	}
	logger = logging.WithSheet(logger, "day_performance")
	out := make([]models.DayPerformance, 0, len(rows)-1)
	for i, row := range rows[1:] {
		row = padRow(row, 8)
		p := models.DayPerformance{
			Date:             row[0],
			PremarketRoutine: parseInt(row[1], "premarket", i+1, logger),
			Structure:        parseInt(row[2], "structure", i+1, logger),
			FocusList:        parseInt(row[3], "focus list", i+1, logger),
			Entry:            parseInt(row[4], "entry", i+1, logger),
			Management:       parseInt(row[5], "management", i+1, logger),
			Psychology:       parseInt(row[6], "psychology", i+1, logger),
		}
		if row[7] != "" {
			p.Average = parseInt(row[7], "average", i+1, logger)
		} else {
			sum := p.PremarketRoutine + p.Structure + p.FocusList +
				p.Entry + p.Management + p.Psychology
			p.Average = int(math.Round(float64(sum) / 6))
		}
		out = append(out, p)
	}
	return out
}

// padRow extends a short row with empty cells so positional access is safe.
// Trailing blank cells are routinely omitted by the values API.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

// parseFloat coerces a numeric cell, tolerating currency and percent
// formatting. Malformed cells become 0.
func parseFloat(s, column string, row int, logger zerolog.Logger) float64 {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	// Accounting-style negatives: ($12.50)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
		s = strings.TrimPrefix(s, "$")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logging.LogRowIssue(logger, row, column, raw)
		return 0
	}
	if negative {
		v = -v
	}
	return v
}

// parseInt coerces an integer cell; malformed cells become 0.
func parseInt(s, column string, row int, logger zerolog.Logger) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(math.Round(f))
		}
		logging.LogRowIssue(logger, row, column, s)
		return 0
	}
	return v
}

// parseQuantity coerces the contract quantity; a missing or malformed cell
// defaults to a single contract rather than zeroing the trade's P&L.
func parseQuantity(s string, row int, logger zerolog.Logger) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}
	v, err := strconv.Atoi(s)
	if err != nil || v == 0 {
		logging.LogRowIssue(logger, row, "quantity", s)
		return 1
	}
	return v
}
