package sheets

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

var mockTickers = []string{"SPY", "QQQ", "TSLA", "NVDA", "AAPL", "AMD"}

var mockSetups = []string{"Breakout", "Reversal", "Trend Continuation", "Gap Fill", "Support Bounce"}

var mockConditions = []string{"Trending Up", "Trending Down", "Choppy", "Range Bound"}

// GenerateMockData builds a synthetic dataset spanning the given number of
// trading days ending at end. The same seed always produces the same trades
// and ratings; only the record IDs differ between runs.
func GenerateMockData(tradingDays int, end time.Time, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := Dataset{Source: models.SourceMock, FetchedAt: time.Now()}

	balance := 25000.0
	day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	// Walk backwards so the dataset ends on the requested day, skipping
	// weekends like a real journal would.
	var days []time.Time
	for len(days) < tradingDays {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append([]time.Time{day}, days...)
		}
		day = day.AddDate(0, 0, -1)
	}

	for _, d := range days {
		key := dates.KeyOf(d)
		nTrades := 1 + rng.Intn(5)
		start := balance
		var dayPnL float64
		var wins int

		for i := 0; i < nTrades; i++ {
			buyPrice := 0.5 + rng.Float64()*4.5
			move := (rng.Float64() - 0.45) * 0.6 // slight positive drift
			sellPrice := buyPrice * (1 + move)
			if sellPrice < 0.01 {
				sellPrice = 0.01
			}
			qty := 1 + rng.Intn(4)

			entryHour := 9 + rng.Intn(6)
			entryMin := rng.Intn(60)
			holdMin := 5 + rng.Intn(90)
			exit := time.Date(d.Year(), d.Month(), d.Day(), entryHour, entryMin, 0, 0, time.UTC).
				Add(time.Duration(holdMin) * time.Minute)

			tr := models.Trade{
				ID:             uuid.NewString(),
				Timestamp:      key,
				Ticker:         mockTickers[rng.Intn(len(mockTickers))],
				OptionType:     []string{"Call", "Put"}[rng.Intn(2)],
				Strike:         float64(100 + rng.Intn(400)),
				ExpirationDate: dates.KeyOf(d.AddDate(0, 0, 7)),
				Quantity:       qty,
				BuyPrice:       round2(buyPrice),
				SellPrice:      round2(sellPrice),
				BuyTime:        fmt.Sprintf("%d:%02d:00", entryHour, entryMin),
				SellTime:       fmt.Sprintf("%d:%02d:00", exit.Hour(), exit.Minute()),

				MarketConditions: mockConditions[rng.Intn(len(mockConditions))],
				Setup:            mockSetups[rng.Intn(len(mockSetups))],
			}
			tr.ProfitLoss = models.DeriveProfitLoss(tr.BuyPrice, tr.SellPrice, tr.Quantity)
			if tr.BuyPrice > 0 {
				tr.ProfitPercent = round2((tr.SellPrice - tr.BuyPrice) / tr.BuyPrice * 100)
			}
			if tr.ProfitLoss > 0 {
				wins++
			}
			dayPnL += tr.ProfitLoss
			ds.Trades = append(ds.Trades, tr)
		}

		balance += dayPnL
		summary := models.DaySummary{
			Date:          key,
			StartBalance:  round2(start),
			EndBalance:    round2(balance),
			ProfitLoss:    round2(dayPnL),
			TotalTrades:   nTrades,
			WinningTrades: wins,
			LosingTrades:  nTrades - wins,
		}
		if start != 0 {
			summary.ProfitLossPercent = round2(dayPnL / start * 100)
		}
		summary.WinRate = round2(float64(wins) / float64(nTrades) * 100)
		ds.DaySummaries = append(ds.DaySummaries, summary)

		perf := models.DayPerformance{
			Date:             key,
			PremarketRoutine: 2 + rng.Intn(4),
			Structure:        2 + rng.Intn(4),
			FocusList:        2 + rng.Intn(4),
			Entry:            2 + rng.Intn(4),
			Management:       2 + rng.Intn(4),
			Psychology:       2 + rng.Intn(4),
		}
		perf.Average = (perf.PremarketRoutine + perf.Structure + perf.FocusList +
			perf.Entry + perf.Management + perf.Psychology + 3) / 6
		ds.DayPerformance = append(ds.DayPerformance, perf)
	}
	return ds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
