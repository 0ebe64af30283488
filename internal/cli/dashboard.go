package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the performance dashboard",
		Long:  "Shows headline metrics and the composite score for the selected date range.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.ensureData(cmd); err != nil {
				return err
			}
			r, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}
			v := app.Session.View(r)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"metrics": v.Metrics,
					"score":   v.Score,
					"source":  v.Source,
				})
			}

			m := v.Metrics
			output.Bold("Performance")
			output.Printf("  Net P&L          %s\n", output.FormatPnL(m.NetPnL))
			output.Printf("  Trades           %d  (%d wins / %d losses)\n", m.TotalTrades, m.Wins, m.Losses)
			output.Printf("  Trade win %%      %s\n", FormatWinRate(m.TradeWinPercent))
			output.Printf("  Day win %%        %s over %d trading days\n", FormatWinRate(m.DayWinPercent), m.TradingDays)
			output.Printf("  Profit factor    %.2f\n", m.ProfitFactor)
			output.Printf("  Avg win / loss   %s / %s  (ratio %.2f)\n",
				FormatUSD(m.AvgWin), FormatUSD(m.AvgLoss), m.AvgWinLossRatio)
			output.Printf("  Largest win      %s\n", output.FormatPnL(m.LargestWin))
			output.Printf("  Largest loss     %s\n", output.FormatPnL(m.LargestLoss))
			output.Printf("  Max drawdown     %s\n", FormatUSD(m.MaxDrawdown))
			if m.AvgHoldMinutes > 0 {
				output.Printf("  Avg hold time    %s\n", FormatHoldTime(m.AvgHoldMinutes))
			}

			output.Println()
			s := v.Score
			output.Bold("Score: %d / 100", s.Overall)
			output.Printf("  Win %%            %5.1f\n", s.Components.WinPercent)
			output.Printf("  Profit factor    %5.1f\n", s.Components.ProfitFactor)
			output.Printf("  Consistency      %5.1f\n", s.Components.Consistency)
			output.Printf("  Avg win/loss     %5.1f\n", s.Components.AvgWinLoss)
			output.Printf("  Max drawdown     %5.1f\n", s.Components.MaxDrawdown)
			output.Printf("  Recovery factor  %5.1f\n", s.Components.RecoveryFactor)

			output.Println()
			output.Dim("source: %s, %d trades in range", v.Source, len(v.Trades))
			return nil
		},
	}
}
