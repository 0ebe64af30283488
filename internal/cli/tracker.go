package cli

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tradelens/internal/analytics"
	"tradelens/internal/dates"
)

func newTrackerCmd(app *App) *cobra.Command {
	var weekFlag string
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Weekly discipline tracker",
		Long:  "Shows the Monday-to-Friday discipline ratings for one week, one row per category, with per-category averages over the rated days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.ensureData(cmd); err != nil {
				return err
			}

			anchor := time.Now()
			if weekFlag != "" {
				t, err := dates.Parse(weekFlag)
				if err != nil {
					return fmt.Errorf("invalid --week %q: %w", weekFlag, err)
				}
				anchor = t
			}

			view := app.Session.Tracker(anchor)
			if output.IsJSON() {
				return output.JSON(view)
			}
			renderTracker(output, view)
			return nil
		},
	}
	cmd.Flags().StringVar(&weekFlag, "week", "", "any date inside the target week (default: this week)")
	return cmd
}

func renderTracker(output *Output, view analytics.WeekView) {
	output.Bold("Week of %s", FormatDate(view.WeekStart, "Jan 2, 2006"))

	table := tablewriter.NewWriter(output.Writer())
	table.Header("Category", "Mon", "Tue", "Wed", "Thu", "Fri", "Avg")

	for _, row := range view.Rows {
		cells := []string{row.Label}
		for _, cell := range row.Cells {
			cells = append(cells, trackerCell(cell))
		}
		if row.HasData {
			cells = append(cells, fmt.Sprintf("%.2f", row.Average))
		} else {
			cells = append(cells, "-")
		}
		table.Append(cells[0], cells[1], cells[2], cells[3], cells[4], cells[5], cells[6])
	}
	table.Render()
}

func trackerCell(cell analytics.TrackerCell) string {
	if !cell.HasRating {
		return "-"
	}
	return fmt.Sprintf("%d", cell.Rating)
}
