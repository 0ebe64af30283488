package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tradelens/internal/analytics"
	"tradelens/internal/journal"
)

func newBreakdownCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Break performance down by category",
	}
	cmd.AddCommand(newBreakdownSubCmd(app, "setup", "Per-setup performance",
		func(v journal.View) []analytics.BreakdownRow { return v.Setups }))
	cmd.AddCommand(newBreakdownSubCmd(app, "market", "Performance by market conditions",
		func(v journal.View) []analytics.BreakdownRow { return v.MarketConditions }))
	cmd.AddCommand(newBreakdownSubCmd(app, "time", "Performance by entry hour",
		func(v journal.View) []analytics.BreakdownRow { return v.TimeOfDay }))
	cmd.AddCommand(newBreakdownSubCmd(app, "direction", "Calls versus puts",
		func(v journal.View) []analytics.BreakdownRow { return v.Directions }))
	return cmd
}

func newBreakdownSubCmd(app *App, use, short string, pick func(journal.View) []analytics.BreakdownRow) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.ensureData(cmd); err != nil {
				return err
			}
			r, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}
			rows := pick(app.Session.View(r))

			if output.IsJSON() {
				return output.JSON(rows)
			}
			if len(rows) == 0 {
				output.Warning("No trades in the selected range")
				return nil
			}
			renderBreakdownTable(output, rows)
			return nil
		},
	}
}

func renderBreakdownTable(output *Output, rows []analytics.BreakdownRow) {
	table := tablewriter.NewWriter(output.Writer())
	table.Header("Category", "Trades", "Wins", "Win rate", "P&L")
	for _, row := range rows {
		table.Append(
			TruncateString(row.Name, 28),
			fmt.Sprintf("%d", row.Trades),
			fmt.Sprintf("%d", row.Wins),
			FormatWinRate(row.WinRate),
			FormatPnL(row.PnL),
		)
	}
	table.Render()
}
