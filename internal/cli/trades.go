package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tradelens/internal/models"
)

func newTradesCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "List trades in the selected date range",
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

			trades := v.Trades
			if limit > 0 && len(trades) > limit {
				trades = trades[len(trades)-limit:]
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}
			if len(trades) == 0 {
				output.Warning("No trades in the selected range")
				return nil
			}

			renderTradesTable(output, trades)
			output.Println()
			output.Printf("%d trades, net %s\n", len(v.Trades), output.FormatPnL(v.Metrics.NetPnL))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent N trades")
	return cmd
}

func renderTradesTable(output *Output, trades []models.Trade) {
	table := tablewriter.NewWriter(output.Writer())
	table.Header("Date", "Ticker", "Type", "Strike", "Qty", "Buy", "Sell", "P&L", "Setup")

	for _, tr := range trades {
		table.Append(
			tr.Timestamp,
			tr.Ticker,
			models.NormalizeOptionType(tr.OptionType),
			fmt.Sprintf("%.0f", tr.Strike),
			fmt.Sprintf("%d", tr.Quantity),
			FormatPrice(tr.BuyPrice),
			FormatPrice(tr.SellPrice),
			FormatPnL(tr.ProfitLoss),
			TruncateString(tr.Setup, 24),
		)
	}
	table.Render()
}
