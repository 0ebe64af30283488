package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tradelens/internal/errors"
	"tradelens/internal/models"
)

func valuesHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("key"))

		var values [][]any
		switch {
		case strings.Contains(r.URL.Path, "Trade Journal"):
			values = [][]any{
				make([]any, tradeColumns),
				{"2025-06-02", "txn-1", "SPY", "Call", "450", "2025-06-06", "2",
					"1.00", "1.50", "9:31:00", "10:15:00", "50", "", "", "Trending Up",
					"", "Breakout", "", "", "", "", "", "", ""},
			}
		case strings.Contains(r.URL.Path, "Day Summary"):
			values = [][]any{
				make([]any, 11),
				{"2025-06-02", "25000", "25100", "100", "0.4", "1", "1", "0", "0", "100", "50"},
			}
		case strings.Contains(r.URL.Path, "Day Performance"):
			values = [][]any{
				make([]any, 8),
				{"2025-06-02", "4", "3", "4", "2", "3", "5", ""},
			}
		default:
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(valuesResponse{Values: values})
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	c, err := NewClient(ClientConfig{
		SpreadsheetID: "sheet-123",
		APIKey:        "secret",
		BaseURL:       baseURL,
	}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestClientFetchAll(t *testing.T) {
	srv := httptest.NewServer(valuesHandler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ds, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.SourceSheets, ds.Source)
	require.Len(t, ds.Trades, 1)
	assert.Equal(t, "txn-1", ds.Trades[0].ID)
	assert.Equal(t, 100.0, ds.Trades[0].ProfitLoss)

	require.Len(t, ds.DaySummaries, 1)
	assert.Equal(t, 25100.0, ds.DaySummaries[0].EndBalance)

	require.Len(t, ds.DayPerformance, 1)
	assert.Equal(t, 4, ds.DayPerformance[0].Average)
	assert.False(t, ds.FetchedAt.IsZero())
}

func TestClientSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchTrades(context.Background())
	require.Error(t, err)

	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(valuesResponse{Values: [][]any{
			make([]any, 11),
			{"2025-06-02", "100", "200", "100", "1", "1", "1", "0", "0", "100", "1"},
		}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	days, err := c.FetchDaySummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 2, calls)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(ClientConfig{APIKey: "k"}, zerolog.Nop())
	assert.ErrorIs(t, err, apperrors.ErrNoSheetID)

	_, err = NewClient(ClientConfig{SpreadsheetID: "s"}, zerolog.Nop())
	assert.ErrorIs(t, err, apperrors.ErrNoAPIKey)
}
