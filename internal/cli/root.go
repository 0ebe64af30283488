// Package cli provides the command-line interface for the journal dashboard.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradelens/internal/config"
	"tradelens/internal/dates"
	"tradelens/internal/journal"
	"tradelens/internal/logging"
	"tradelens/internal/sheets"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-30"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Session *journal.Session
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Session: journal.NewSession(cfg.Score, cfg.Account.StartingBalance, logger),
	}

	rootCmd := &cobra.Command{
		Use:   "tradelens",
		Short: "TradeLens - options trading journal analytics",
		Long: `TradeLens turns an options trading journal into dashboard analytics.

It reads trade records, daily account summaries, and daily discipline ratings
from a Google Sheet (or CSV/xlsx exports), then derives performance metrics,
P&L charts, categorical breakdowns, a monthly calendar, and a composite score.

Use 'tradelens help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradelens)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("from", "", "start of date range (YYYY-MM-DD or MM/DD/YYYY)")
	rootCmd.PersistentFlags().String("to", "", "end of date range (YYYY-MM-DD or MM/DD/YYYY)")
	rootCmd.PersistentFlags().String("preset", "", "date range preset: today, week, month, last-month, 30d, quarter, ytd")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newFetchCmd(app))
	rootCmd.AddCommand(newDashboardCmd(app))
	rootCmd.AddCommand(newTradesCmd(app))
	rootCmd.AddCommand(newChartsCmd(app))
	rootCmd.AddCommand(newBreakdownCmd(app))
	rootCmd.AddCommand(newCalendarCmd(app))
	rootCmd.AddCommand(newTrackerCmd(app))

	return rootCmd
}

// fetcher builds the Fetcher for the configured data source.
func (a *App) fetcher() (journal.Fetcher, error) {
	switch a.Config.Source.Type {
	case "sheets":
		if err := a.Config.SheetsReady(); err != nil {
			return nil, err
		}
		client, err := sheets.NewClient(sheets.ClientConfig{
			SpreadsheetID:    a.Config.Sheets.SpreadsheetID,
			APIKey:           a.Config.Credentials.Google.APIKey,
			TradesRange:      a.Config.Sheets.TradesRange,
			DaySummaryRange:  a.Config.Sheets.DaySummaryRange,
			PerformanceRange: a.Config.Sheets.PerformanceRange,
			Timeout:          time.Duration(a.Config.Sheets.TimeoutSeconds) * time.Second,
		}, a.Logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "csv":
		dir := a.Config.Source.CSVDir
		return journal.FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
			return sheets.LoadCSV(dir, a.Logger)
		}), nil
	case "xlsx":
		path := a.Config.Source.WorkbookPath
		return journal.FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
			return sheets.LoadWorkbook(path, a.Logger)
		}), nil
	case "mock":
		days, seed := a.Config.Source.MockDays, a.Config.Source.MockSeed
		return journal.FetcherFunc(func(ctx context.Context) (sheets.Dataset, error) {
			return sheets.GenerateMockData(days, time.Now(), seed), nil
		}), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", a.Config.Source.Type)
	}
}

// ensureData loads the configured source into the session on first use.
func (a *App) ensureData(cmd *cobra.Command) error {
	if !a.Session.Empty() {
		return nil
	}
	f, err := a.fetcher()
	if err != nil {
		return err
	}
	return a.Session.Load(cmd.Context(), f)
}

// rangeFromFlags resolves --preset / --from / --to into a date range. The
// preset wins when both are given.
func rangeFromFlags(cmd *cobra.Command) (dates.DateRange, error) {
	preset, _ := cmd.Flags().GetString("preset")
	if preset != "" {
		r, ok := dates.Preset(preset, time.Now())
		if !ok {
			return dates.DateRange{}, fmt.Errorf("unknown preset: %s", preset)
		}
		return r, nil
	}

	var r dates.DateRange
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := dates.Parse(from)
		if err != nil {
			return dates.DateRange{}, fmt.Errorf("invalid --from date %q", from)
		}
		r.Start = t
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := dates.Parse(to)
		if err != nil {
			return dates.DateRange{}, fmt.Errorf("invalid --to date %q", to)
		}
		r.End = t
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return dates.DateRange{}, fmt.Errorf("--to is before --from")
	}
	return r, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("TradeLens v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Source")
			output.Printf("  type: %s\n", app.Config.Source.Type)
			if app.Config.Source.CSVDir != "" {
				output.Printf("  csv_dir: %s\n", app.Config.Source.CSVDir)
			}
			if app.Config.Source.WorkbookPath != "" {
				output.Printf("  workbook_path: %s\n", app.Config.Source.WorkbookPath)
			}
			output.Bold("Sheets")
			output.Printf("  spreadsheet_id: %s\n", app.Config.Sheets.SpreadsheetID)
			output.Printf("  trades_range: %s\n", app.Config.Sheets.TradesRange)
			output.Bold("Score anchors")
			output.Printf("  profit_factor_excellent: %.1f\n", app.Config.Score.ProfitFactorExcellent)
			output.Printf("  win_loss_excellent: %.1f\n", app.Config.Score.WinLossExcellent)
			output.Printf("  drawdown_scale: %.0f\n", app.Config.Score.DrawdownScale)
			output.Printf("  recovery_scale: %.0f\n", app.Config.Score.RecoveryScale)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if app.Config.RequiresCredentials() {
				if err := app.Config.SheetsReady(); err != nil {
					output.Error("Configuration validation failed: %v", err)
					return err
				}
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func newFetchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch records from the configured data source",
		Long:  "Fetches the trade journal, day summaries, and discipline ratings, replacing any previously loaded records.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			f, err := app.fetcher()
			if err != nil {
				return err
			}
			if err := app.Session.Load(cmd.Context(), f); err != nil {
				output.Error("Fetch failed: %v", err)
				return err
			}
			ds := app.Session.Dataset()
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"source":          ds.Source,
					"trades":          len(ds.Trades),
					"day_summaries":   len(ds.DaySummaries),
					"day_performance": len(ds.DayPerformance),
				})
			}
			output.Success("Loaded %d trades, %d day summaries, %d rating days from %s",
				len(ds.Trades), len(ds.DaySummaries), len(ds.DayPerformance), ds.Source)
			return nil
		},
	}
}
