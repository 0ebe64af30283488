package cli

import (
	"fmt"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newChartsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Show time series derived from the journal",
	}
	cmd.AddCommand(newDailyChartCmd(app))
	cmd.AddCommand(newCumulativeChartCmd(app))
	cmd.AddCommand(newBalanceChartCmd(app))
	cmd.AddCommand(newDrawdownChartCmd(app))
	cmd.AddCommand(newTimeChartCmd(app))
	cmd.AddCommand(newDurationChartCmd(app))
	return cmd
}

func newDailyChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Daily P&L, one row per trading day",
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
				return output.JSON(v.Daily)
			}
			if len(v.Daily) == 0 {
				output.Warning("No trading days in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Date", "P&L")
			for _, p := range v.Daily {
				table.Append(p.Date, FormatPnL(p.PnL))
			}
			table.Render()
			return nil
		},
	}
}

func newCumulativeChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cumulative",
		Short: "Running P&L across the selected range",
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
				return output.JSON(v.Cumulative)
			}
			if len(v.Cumulative) == 0 {
				output.Warning("No trading days in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Date", "Cumulative P&L", "Cumulative %")
			for _, p := range v.Cumulative {
				table.Append(p.Date, FormatPnL(p.PnL), FormatPercent(p.Percent))
			}
			table.Render()
			return nil
		},
	}
}

func newBalanceChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Account balance per trading day",
		Long:  "Shows the closing balance per day, taken from the day summaries when available or reconstructed from trades and the configured starting balance otherwise.",
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
				return output.JSON(v.Balance)
			}
			if len(v.Balance) == 0 {
				output.Warning("No trading days in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Date", "Balance")
			for _, p := range v.Balance {
				table.Append(p.Date, FormatUSD(p.Balance))
			}
			table.Render()
			return nil
		},
	}
}

func newDrawdownChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drawdown",
		Short: "Signed drawdown from the running peak per day",
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
				return output.JSON(v.Drawdown)
			}
			if len(v.Drawdown) == 0 {
				output.Warning("No trading days in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Date", "Drawdown")
			for _, p := range v.Drawdown {
				cell := FormatUSD(p.Drawdown)
				if p.Drawdown < 0 {
					cell = output.Red(cell)
				}
				table.Append(p.Date, cell)
			}
			table.Render()
			output.Println()
			output.Printf("Max drawdown: %s\n", FormatUSD(v.Metrics.MaxDrawdown))
			return nil
		},
	}
}

func newTimeChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "P&L by entry time of day, one point per trade",
		Long:  "Scatter of each trade's P&L against its entry time, restricted to regular session hours. Trades without a parseable entry time are omitted.",
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
				return output.JSON(v.TimeScatter)
			}
			if len(v.TimeScatter) == 0 {
				output.Warning("No trades with entry times in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Entry", "Ticker", "P&L", "Result")
			for _, p := range v.TimeScatter {
				table.Append(formatClock(p.Hour), p.Ticker, FormatPnL(p.PnL), winLabel(p.Win))
			}
			table.Render()
			return nil
		},
	}
}

func newDurationChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duration",
		Short: "P&L by hold time, one point per trade",
		Long:  "Scatter of each trade's P&L against its hold time in minutes. Trades without parseable entry and exit times, or held over ten hours, are omitted.",
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
				return output.JSON(v.DurationScatter)
			}
			if len(v.DurationScatter) == 0 {
				output.Warning("No trades with hold times in the selected range")
				return nil
			}
			table := tablewriter.NewWriter(output.Writer())
			table.Header("Held", "Ticker", "P&L", "Result")
			for _, p := range v.DurationScatter {
				table.Append(FormatHoldTime(float64(p.Minutes)), p.Ticker, FormatPnL(p.PnL), winLabel(p.Win))
			}
			table.Render()
			return nil
		},
	}
}

// formatClock renders a decimal hour as HH:MM.
func formatClock(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	return fmt.Sprintf("%d:%02d", h, m)
}

func winLabel(win bool) string {
	if win {
		return "win"
	}
	return "loss"
}
