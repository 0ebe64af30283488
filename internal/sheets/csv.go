package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	apperrors "tradelens/internal/errors"
	"tradelens/internal/logging"
	"tradelens/internal/models"
)

// CSV export file names expected inside the configured directory.
const (
	tradesCSV      = "trades.csv"
	daySummaryCSV  = "day_summary.csv"
	performanceCSV = "day_performance.csv"
)

// csvTrade mirrors the trade journal export headers. Numeric cells arrive
// as strings so the same coercion policy applies as for API rows.
type csvTrade struct {
	Timestamp      string `csv:"timestamp"`
	TransactionID  string `csv:"transaction_id"`
	Ticker         string `csv:"ticker"`
	OptionType     string `csv:"option_type"`
	Strike         string `csv:"strike"`
	Expiration     string `csv:"expiration_date"`
	Quantity       string `csv:"quantity"`
	BuyPrice       string `csv:"buy_price"`
	SellPrice      string `csv:"sell_price"`
	BuyTime        string `csv:"buy_time"`
	SellTime       string `csv:"sell_time"`
	ProfitPercent  string `csv:"profit_percent"`
	Thesis         string `csv:"thesis"`
	Rollup         string `csv:"rollup"`
	MarketCond     string `csv:"market_conditions"`
	TrendAlignment string `csv:"trend_alignment"`
	Setup          string `csv:"setup"`
	Entry          string `csv:"entry_quality"`
	Exit           string `csv:"exit_quality"`
	RiskSizing     string `csv:"risk_sizing"`
	Bypassed       string `csv:"bypassed_rules"`
	BypassedArea   string `csv:"bypassed_area"`
	AreasToImprove string `csv:"areas_to_improve"`
	ChartLink      string `csv:"chart_link"`
}

type csvDaySummary struct {
	Date              string `csv:"date"`
	StartBalance      string `csv:"start_balance"`
	EndBalance        string `csv:"end_balance"`
	ProfitLoss        string `csv:"profit_loss"`
	ProfitLossPercent string `csv:"profit_loss_percent"`
	TotalTrades       string `csv:"total_trades"`
	WinningTrades     string `csv:"winning_trades"`
	LosingTrades      string `csv:"losing_trades"`
	OpenPositions     string `csv:"open_positions"`
	WinRate           string `csv:"win_rate"`
	AvgProfitPercent  string `csv:"avg_profit_percent"`
}

type csvPerformance struct {
	Date       string `csv:"date"`
	Premarket  string `csv:"premarket_routine"`
	Structure  string `csv:"structure"`
	FocusList  string `csv:"focus_list"`
	Entry      string `csv:"entry"`
	Management string `csv:"management"`
	Psychology string `csv:"psychology"`
	Average    string `csv:"average"`
}

// LoadCSV reads the three export files from dir. A missing trades file is an
// error; the other two files are optional since older exports lack them.
func LoadCSV(dir string, logger zerolog.Logger) (Dataset, error) {
	logger = logging.WithSource(logger, "csv")
	ds := Dataset{Source: models.SourceCSV}

	var rawTrades []*csvTrade
	if err := readCSVFile(filepath.Join(dir, tradesCSV), &rawTrades); err != nil {
		return Dataset{}, apperrors.Wrapf(err, "load %s", tradesCSV)
	}
	ds.Trades = convertCSVTrades(rawTrades, logger)

	var rawDays []*csvDaySummary
	if err := readCSVFile(filepath.Join(dir, daySummaryCSV), &rawDays); err != nil {
		if !os.IsNotExist(err) {
			return Dataset{}, apperrors.Wrapf(err, "load %s", daySummaryCSV)
		}
		logger.Warn().Str("file", daySummaryCSV).Msg("Day summary export not found, skipping")
	}
	ds.DaySummaries = convertCSVDaySummaries(rawDays, logger)

	var rawPerf []*csvPerformance
	if err := readCSVFile(filepath.Join(dir, performanceCSV), &rawPerf); err != nil {
		if !os.IsNotExist(err) {
			return Dataset{}, apperrors.Wrapf(err, "load %s", performanceCSV)
		}
		logger.Warn().Str("file", performanceCSV).Msg("Day performance export not found, skipping")
	}
	ds.DayPerformance = convertCSVPerformance(rawPerf, logger)

	ds.FetchedAt = time.Now()
	logger.Info().
		Str("dir", dir).
		Int("trades", len(ds.Trades)).
		Int("day_summaries", len(ds.DaySummaries)).
		Int("day_ratings", len(ds.DayPerformance)).
		Msg("Records loaded")
	return ds, nil
}

func readCSVFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}

func convertCSVTrades(raw []*csvTrade, logger zerolog.Logger) []models.Trade {
	out := make([]models.Trade, 0, len(raw))
	for i, r := range raw {
		tr := models.Trade{
			ID:             r.TransactionID,
			Timestamp:      r.Timestamp,
			Ticker:         r.Ticker,
			OptionType:     r.OptionType,
			Strike:         parseFloat(r.Strike, "strike", i+1, logger),
			ExpirationDate: r.Expiration,
			Quantity:       parseQuantity(r.Quantity, i+1, logger),
			BuyPrice:       parseFloat(r.BuyPrice, "buy price", i+1, logger),
			SellPrice:      parseFloat(r.SellPrice, "sell price", i+1, logger),
			BuyTime:        r.BuyTime,
			SellTime:       r.SellTime,
			ProfitPercent:  parseFloat(r.ProfitPercent, "profit percent", i+1, logger),

			TradeThesis:      r.Thesis,
			Rollup:           r.Rollup,
			MarketConditions: r.MarketCond,
			TrendAlignment:   r.TrendAlignment,
			Setup:            r.Setup,
			Entry:            r.Entry,
			Exit:             r.Exit,
			RiskSizing:       r.RiskSizing,
			BypassedRules:    r.Bypassed,
			BypassedArea:     r.BypassedArea,
			AreasToImprove:   r.AreasToImprove,
			ChartScreenshot:  r.ChartLink,
		}
		if tr.ID == "" {
			tr.ID = fmt.Sprintf("trade-%d", i)
		}
		tr.ProfitLoss = models.DeriveProfitLoss(tr.BuyPrice, tr.SellPrice, tr.Quantity)
		out = append(out, tr)
	}
	return out
}

func convertCSVDaySummaries(raw []*csvDaySummary, logger zerolog.Logger) []models.DaySummary {
	out := make([]models.DaySummary, 0, len(raw))
	for i, r := range raw {
		out = append(out, models.DaySummary{
			Date:              r.Date,
			StartBalance:      parseFloat(r.StartBalance, "start balance", i+1, logger),
			EndBalance:        parseFloat(r.EndBalance, "end balance", i+1, logger),
			ProfitLoss:        parseFloat(r.ProfitLoss, "profit/loss", i+1, logger),
			ProfitLossPercent: parseFloat(r.ProfitLossPercent, "profit/loss percent", i+1, logger),
			TotalTrades:       parseInt(r.TotalTrades, "total trades", i+1, logger),
			WinningTrades:     parseInt(r.WinningTrades, "winning trades", i+1, logger),
			LosingTrades:      parseInt(r.LosingTrades, "losing trades", i+1, logger),
			OpenPositions:     parseInt(r.OpenPositions, "open positions", i+1, logger),
			WinRate:           parseFloat(r.WinRate, "win rate", i+1, logger),
			AvgProfitPercent:  parseFloat(r.AvgProfitPercent, "avg profit percent", i+1, logger),
		})
	}
	return out
}

func convertCSVPerformance(raw []*csvPerformance, logger zerolog.Logger) []models.DayPerformance {
	rows := make([][]string, 0, len(raw)+1)
	rows = append(rows, nil) // header placeholder, discarded by the parser
	for _, r := range raw {
		rows = append(rows, []string{
			r.Date, r.Premarket, r.Structure, r.FocusList,
			r.Entry, r.Management, r.Psychology, r.Average,
		})
	}
	return ParseDayPerformance(rows, logger)
}
