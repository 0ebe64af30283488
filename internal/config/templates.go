package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# TradeLens Configuration

[source]
# Data source: "sheets", "csv", "xlsx" or "mock"
type = "mock"
# Directory holding trades.csv / day_summary.csv / day_performance.csv
csv_dir = ""
# Path to a local .xlsx export of the journal
workbook_path = ""
# Size and seed of the built-in synthetic dataset
mock_days = 60
mock_seed = 1

[sheets]
# Spreadsheet id from the sheet URL (or set TRADELENS_SHEET_ID)
spreadsheet_id = ""
# A1-notation ranges for the three tabs
trades_range = "Trade Journal!A1:X"
day_summary_range = "Day Summary!A1:K"
performance_range = "Day Performance!A1:H"
timeout_seconds = 15

[account]
# Seeds balance reconstruction when no day summaries are available
starting_balance = 25000.0

[score]
# Scaling anchors for the composite score components
profit_factor_excellent = 3.0
win_loss_excellent = 3.0
drawdown_scale = 1000.0
recovery_scale = 50.0

[ui]
# Enable colored output
color_enabled = true
# Date format for table output
date_format = "02 Jan 2006"

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = true
`

const credentialsTemplate = `# TradeLens Credentials
# Keep this file private (written with mode 0600).

[google]
# Sheets API key with read access to the journal spreadsheet
# (or set GOOGLE_API_KEY in the environment)
api_key = ""
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	// Defaults apply on this run; the template is there to edit.
	return nil
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, "credentials.toml")
	// Use restricted permissions for credentials file
	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return fmt.Errorf("writing credentials template: %w", err)
	}
	return nil
}
