package sheets

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	apperrors "tradelens/internal/errors"
	"tradelens/internal/logging"
	"tradelens/internal/models"
)

// Workbook tab names mirror the spreadsheet tabs.
const (
	tradesSheet      = "Trade Journal"
	daySummarySheet  = "Day Summary"
	performanceSheet = "Day Performance"
)

// LoadWorkbook reads the journal from a local .xlsx export. Tabs share the
// exact column layout of the live spreadsheet, so the positional parsers
// apply unchanged. Missing optional tabs load as empty sets.
func LoadWorkbook(path string, logger zerolog.Logger) (Dataset, error) {
	logger = logging.WithSource(logger, "xlsx")
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Dataset{}, apperrors.Wrapf(err, "open workbook %s", path)
	}
	defer f.Close()

	ds := Dataset{Source: models.SourceWorkbook}

	tradeRows, err := f.GetRows(tradesSheet)
	if err != nil {
		return Dataset{}, apperrors.Wrapf(err, "read tab %q", tradesSheet)
	}
	ds.Trades = ParseTrades(tradeRows, logger)

	if rows, err := f.GetRows(daySummarySheet); err == nil {
		ds.DaySummaries = ParseDaySummaries(rows, logger)
	} else {
		logger.Warn().Str("tab", daySummarySheet).Msg("Workbook tab not found, skipping")
	}
	if rows, err := f.GetRows(performanceSheet); err == nil {
		ds.DayPerformance = ParseDayPerformance(rows, logger)
	} else {
		logger.Warn().Str("tab", performanceSheet).Msg("Workbook tab not found, skipping")
	}

	ds.FetchedAt = time.Now()
	logger.Info().
		Str("path", path).
		Int("trades", len(ds.Trades)).
		Int("day_summaries", len(ds.DaySummaries)).
		Int("day_ratings", len(ds.DayPerformance)).
		Msg("Records loaded")
	return ds, nil
}
