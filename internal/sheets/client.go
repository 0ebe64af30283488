// Package sheets loads journal records from their external sources: the
// Google Sheets values API, exported CSV files, a local workbook, or a
// built-in synthetic dataset. Whatever the source, records come out as the
// same typed collections.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	apperrors "tradelens/internal/errors"
	"tradelens/internal/logging"
	"tradelens/internal/models"
	"tradelens/pkg/utils"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"

	// The read quota is 60 requests per minute per user; one per second
	// with a small burst stays comfortably under it.
	requestsPerSec = 1
	requestBurst   = 5

	defaultTradesRange      = "Trade Journal!A1:X"
	defaultDaySummaryRange  = "Day Summary!A1:K"
	defaultPerformanceRange = "Day Performance!A1:H"
)

// Dataset is one complete fetch result: the three parallel record sets.
type Dataset struct {
	Trades         []models.Trade
	DaySummaries   []models.DaySummary
	DayPerformance []models.DayPerformance
	Source         models.DataSource
	FetchedAt      time.Time
}

// ClientConfig configures a sheets Client.
type ClientConfig struct {
	SpreadsheetID    string
	APIKey           string
	BaseURL          string // overridable for tests
	TradesRange      string
	DaySummaryRange  string
	PerformanceRange string
	Timeout          time.Duration
}

// Client reads the journal spreadsheet through the values API, with rate
// limiting and retried requests.
type Client struct {
	http    *http.Client
	cfg     ClientConfig
	limiter *rate.Limiter
	retry   utils.RetryConfig
	logger  zerolog.Logger
}

// NewClient creates a Client. SpreadsheetID and APIKey must be set; the
// remaining fields fall back to defaults.
func NewClient(cfg ClientConfig, logger zerolog.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, apperrors.ErrNoSheetID
	}
	if cfg.APIKey == "" {
		return nil, apperrors.ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TradesRange == "" {
		cfg.TradesRange = defaultTradesRange
	}
	if cfg.DaySummaryRange == "" {
		cfg.DaySummaryRange = defaultDaySummaryRange
	}
	if cfg.PerformanceRange == "" {
		cfg.PerformanceRange = defaultPerformanceRange
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(requestsPerSec, requestBurst),
		retry:   utils.DefaultRetryConfig(),
		logger:  logging.WithSource(logger, "sheets"),
	}, nil
}

// valuesResponse is the values API payload for a single range.
type valuesResponse struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

// FetchTrades retrieves and parses the trade journal tab.
func (c *Client) FetchTrades(ctx context.Context) ([]models.Trade, error) {
	rows, err := c.fetchRange(ctx, c.cfg.TradesRange)
	if err != nil {
		return nil, err
	}
	return ParseTrades(rows, c.logger), nil
}

// FetchDaySummaries retrieves and parses the day summary tab.
func (c *Client) FetchDaySummaries(ctx context.Context) ([]models.DaySummary, error) {
	rows, err := c.fetchRange(ctx, c.cfg.DaySummaryRange)
	if err != nil {
		return nil, err
	}
	return ParseDaySummaries(rows, c.logger), nil
}

// FetchDayPerformance retrieves and parses the discipline-rating tab.
func (c *Client) FetchDayPerformance(ctx context.Context) ([]models.DayPerformance, error) {
	rows, err := c.fetchRange(ctx, c.cfg.PerformanceRange)
	if err != nil {
		return nil, err
	}
	return ParseDayPerformance(rows, c.logger), nil
}

// FetchAll retrieves the three tabs in parallel. The first error wins; a
// partial result is never returned.
func (c *Client) FetchAll(ctx context.Context) (Dataset, error) {
	ds := Dataset{Source: models.SourceSheets}
	start := time.Now()

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		ds.Trades, errs[0] = c.FetchTrades(ctx)
	}()
	go func() {
		defer wg.Done()
		ds.DaySummaries, errs[1] = c.FetchDaySummaries(ctx)
	}()
	go func() {
		defer wg.Done()
		ds.DayPerformance, errs[2] = c.FetchDayPerformance(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Dataset{}, err
		}
	}
	ds.FetchedAt = time.Now()
	c.logger.Info().
		Int("trades", len(ds.Trades)).
		Int("day_summaries", len(ds.DaySummaries)).
		Int("day_ratings", len(ds.DayPerformance)).
		Dur("elapsed", time.Since(start)).
		Msg("Records loaded")
	return ds, nil
}

// fetchRange GETs one A1-notation range and flattens the cells to strings.
func (c *Client) fetchRange(ctx context.Context, a1Range string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.cfg.BaseURL,
		url.PathEscape(c.cfg.SpreadsheetID),
		url.PathEscape(a1Range),
		url.QueryEscape(c.cfg.APIKey),
	)

	resp, err := utils.RetryWithResult(ctx, c.retry, func() (*valuesResponse, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return c.getValues(ctx, endpoint, a1Range)
	})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, strings.TrimSpace(fmt.Sprint(cell)))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) getValues(ctx context.Context, endpoint, a1Range string) (*valuesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError("sheets", a1Range, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apperrors.NewFetchError("sheets", a1Range, resp.StatusCode, apperrors.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewFetchError("sheets", a1Range, resp.StatusCode,
			fmt.Errorf("%w: %s", apperrors.ErrFetchFailed, strings.TrimSpace(string(body))))
	}

	var out valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.NewFetchError("sheets", a1Range, resp.StatusCode, err)
	}
	return &out, nil
}
