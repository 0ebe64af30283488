package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

func TestGenerateMockDataShape(t *testing.T) {
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC) // a Friday
	ds := GenerateMockData(10, end, 42)

	assert.Equal(t, models.SourceMock, ds.Source)
	require.Len(t, ds.DaySummaries, 10)
	require.Len(t, ds.DayPerformance, 10)
	assert.NotEmpty(t, ds.Trades)

	for _, d := range ds.DaySummaries {
		day, err := dates.Parse(d.Date)
		require.NoError(t, err)
		wd := day.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
	assert.Equal(t, "2025-06-06", ds.DaySummaries[len(ds.DaySummaries)-1].Date)
}

func TestGenerateMockDataDeterministicValues(t *testing.T) {
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	a := GenerateMockData(5, end, 7)
	b := GenerateMockData(5, end, 7)

	require.Equal(t, len(a.Trades), len(b.Trades))
	for i := range a.Trades {
		// IDs are freshly generated each run; everything else repeats.
		assert.Equal(t, a.Trades[i].ProfitLoss, b.Trades[i].ProfitLoss)
		assert.Equal(t, a.Trades[i].Ticker, b.Trades[i].Ticker)
		assert.Equal(t, a.Trades[i].BuyTime, b.Trades[i].BuyTime)
	}
}

func TestGenerateMockDataBalancesChain(t *testing.T) {
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	ds := GenerateMockData(5, end, 1)
	for i := 1; i < len(ds.DaySummaries); i++ {
		assert.InDelta(t, ds.DaySummaries[i-1].EndBalance, ds.DaySummaries[i].StartBalance, 0.01,
			"day %d should start where day %d ended", i, i-1)
	}
}
