// Package config provides configuration management for the journal dashboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"tradelens/internal/analytics"
	apperrors "tradelens/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Source      SourceConfig           `mapstructure:"source"`
	Sheets      SheetsConfig           `mapstructure:"sheets"`
	Account     AccountConfig          `mapstructure:"account"`
	Score       analytics.ScoreAnchors `mapstructure:"score"`
	UI          UIConfig               `mapstructure:"ui"`
	Logging     LoggingConfig          `mapstructure:"logging"`
	Credentials Credentials            `mapstructure:"-"` // Loaded separately
}

// SourceConfig selects where journal records come from.
type SourceConfig struct {
	Type         string `mapstructure:"type"` // "sheets", "csv", "xlsx", "mock"
	CSVDir       string `mapstructure:"csv_dir"`
	WorkbookPath string `mapstructure:"workbook_path"`
	MockDays     int    `mapstructure:"mock_days"`
	MockSeed     int64  `mapstructure:"mock_seed"`
}

// SheetsConfig holds the spreadsheet location and tab ranges.
type SheetsConfig struct {
	SpreadsheetID    string `mapstructure:"spreadsheet_id"`
	TradesRange      string `mapstructure:"trades_range"`
	DaySummaryRange  string `mapstructure:"day_summary_range"`
	PerformanceRange string `mapstructure:"performance_range"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
}

// AccountConfig holds account-level settings.
type AccountConfig struct {
	// StartingBalance seeds balance reconstruction when the source has no
	// day summaries.
	StartingBalance float64 `mapstructure:"starting_balance"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// Credentials holds API credentials.
type Credentials struct {
	Google GoogleCredentials `mapstructure:"google"`
}

// GoogleCredentials holds the Sheets API key.
type GoogleCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradelens"
	}
	return filepath.Join(home, ".config", "tradelens")
}

// Default returns the built-in configuration: mock data, default anchors.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Type:     "mock",
			MockDays: 60,
			MockSeed: 1,
		},
		Sheets: SheetsConfig{
			TimeoutSeconds: 15,
		},
		Account: AccountConfig{
			StartingBalance: 25000,
		},
		Score: analytics.DefaultAnchors(),
		UI: UIConfig{
			ColorEnabled: true,
			DateFormat:   "02 Jan 2006",
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty, uses the default config directory. A missing config file is not an
// error: a template is written for next time and the defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}
	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: leave a template behind and continue with defaults.
			return createTemplateConfig(configDir, name)
		}
		return err
	}
	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}
	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Credentials.Google.APIKey = v
	}
	if v := os.Getenv("TRADELENS_SHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("TRADELENS_SOURCE"); v != "" {
		cfg.Source.Type = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Source.Type {
	case "sheets", "csv", "xlsx", "mock":
	default:
		return apperrors.NewValidationError("source.type", c.Source.Type,
			"must be 'sheets', 'csv', 'xlsx' or 'mock'")
	}

	if c.Source.Type == "csv" && c.Source.CSVDir == "" {
		return apperrors.NewValidationError("source.csv_dir", c.Source.CSVDir, "required for the csv source")
	}
	if c.Source.Type == "xlsx" && c.Source.WorkbookPath == "" {
		return apperrors.NewValidationError("source.workbook_path", c.Source.WorkbookPath, "required for the xlsx source")
	}
	if c.Source.MockDays < 0 {
		return apperrors.NewValidationError("source.mock_days", c.Source.MockDays, "must be non-negative")
	}

	if c.Account.StartingBalance < 0 {
		return apperrors.NewValidationError("account.starting_balance", c.Account.StartingBalance, "must be non-negative")
	}

	if c.Score.ProfitFactorExcellent <= 0 || c.Score.WinLossExcellent <= 0 {
		return apperrors.NewValidationError("score", c.Score, "anchors must be positive")
	}
	if c.Score.DrawdownScale <= 0 || c.Score.RecoveryScale <= 0 {
		return apperrors.NewValidationError("score", c.Score, "scales must be positive")
	}
	return nil
}

// RequiresCredentials reports whether the selected source needs the Sheets
// API key and spreadsheet id. Only checked when the source is actually used
// so the offline sources work without any credentials on disk.
func (c *Config) RequiresCredentials() bool {
	return c.Source.Type == "sheets"
}

// SheetsReady reports whether the sheets source has everything it needs.
func (c *Config) SheetsReady() error {
	if c.Sheets.SpreadsheetID == "" {
		return apperrors.Wrap(apperrors.ErrNoSheetID, "set sheets.spreadsheet_id or TRADELENS_SHEET_ID")
	}
	if c.Credentials.Google.APIKey == "" {
		return apperrors.Wrap(apperrors.ErrNoAPIKey, "set credentials.toml [google] api_key or GOOGLE_API_KEY")
	}
	return nil
}
