package cli

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tradelens/internal/analytics"
)

func newCalendarCmd(app *App) *cobra.Command {
	var monthFlag string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Monthly P&L calendar",
		Long:  "Shows a Sunday-start calendar for one month with per-day P&L, weekly subtotals, and monthly totals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.ensureData(cmd); err != nil {
				return err
			}

			now := time.Now()
			year, month := now.Year(), now.Month()
			if monthFlag != "" {
				t, err := time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", monthFlag)
				}
				year, month = t.Year(), t.Month()
			}

			view := app.Session.Calendar(year, month)
			if output.IsJSON() {
				return output.JSON(view)
			}
			renderCalendar(output, view)
			return nil
		},
	}
	cmd.Flags().StringVar(&monthFlag, "month", "", "target month as YYYY-MM (default: current month)")
	return cmd
}

func renderCalendar(output *Output, view analytics.MonthView) {
	output.Bold("%s %d", view.Month, view.Year)

	table := tablewriter.NewWriter(output.Writer())
	table.Header("Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Week")

	for i, week := range view.Weeks {
		cells := make([]string, 0, 8)
		for _, cell := range week {
			cells = append(cells, calendarCell(output, cell))
		}
		wt := view.WeekTotals[i]
		if wt.TradingDays > 0 {
			cells = append(cells, fmt.Sprintf("%s (%dd)", FormatPnL(wt.PnL), wt.TradingDays))
		} else {
			cells = append(cells, "")
		}
		table.Append(cells[0], cells[1], cells[2], cells[3], cells[4], cells[5], cells[6], cells[7])
	}
	table.Render()

	output.Println()
	output.Printf("Monthly P&L: %s over %d trading days\n",
		output.FormatPnL(view.MonthlyPnL), view.TradingDays)
}

// calendarCell renders one day cell: day number, and its P&L when the day
// traded. Out-of-month days show dimmed.
func calendarCell(output *Output, cell analytics.DayCell) string {
	if !cell.InMonth {
		return output.DimText(fmt.Sprintf("%d", cell.Day))
	}
	if !cell.HasData || cell.Agg.Trades == 0 {
		return fmt.Sprintf("%d", cell.Day)
	}
	pnl := FormatPnL(cell.Agg.PnL)
	if cell.Agg.PnL > 0 {
		pnl = output.Green(pnl)
	} else if cell.Agg.PnL < 0 {
		pnl = output.Red(pnl)
	}
	return fmt.Sprintf("%d %s", cell.Day, pnl)
}
