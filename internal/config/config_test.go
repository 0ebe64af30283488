package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFilesUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.Type != "mock" {
		t.Errorf("Source.Type = %q, want mock", cfg.Source.Type)
	}
	if cfg.Score.ProfitFactorExcellent != 3.0 {
		t.Errorf("anchors = %+v", cfg.Score)
	}
	// Templates left behind for editing.
	for _, name := range []string{"config.toml", "credentials.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s template not written: %v", name, err)
		}
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	toml := `
[source]
type = "csv"
csv_dir = "/data/journal"

[account]
starting_balance = 50000.0

[score]
drawdown_scale = 2000.0
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.Type != "csv" || cfg.Source.CSVDir != "/data/journal" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Account.StartingBalance != 50000 {
		t.Errorf("StartingBalance = %v", cfg.Account.StartingBalance)
	}
	if cfg.Score.DrawdownScale != 2000 {
		t.Errorf("DrawdownScale = %v", cfg.Score.DrawdownScale)
	}
	// Untouched sections keep their defaults.
	if cfg.Score.ProfitFactorExcellent != 3.0 {
		t.Errorf("ProfitFactorExcellent = %v, want default 3.0", cfg.Score.ProfitFactorExcellent)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("TRADELENS_SHEET_ID", "env-sheet")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Credentials.Google.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.Credentials.Google.APIKey)
	}
	if cfg.Sheets.SpreadsheetID != "env-sheet" {
		t.Errorf("SpreadsheetID = %q", cfg.Sheets.SpreadsheetID)
	}
}

func TestValidateRejectsBadSource(t *testing.T) {
	cfg := Default()
	cfg.Source.Type = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown source type should fail validation")
	}

	cfg = Default()
	cfg.Source.Type = "csv"
	if err := cfg.Validate(); err == nil {
		t.Error("csv source without csv_dir should fail validation")
	}
}

func TestValidateRejectsBadAnchors(t *testing.T) {
	cfg := Default()
	cfg.Score.DrawdownScale = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero drawdown scale should fail validation")
	}
}

func TestSheetsReady(t *testing.T) {
	cfg := Default()
	cfg.Source.Type = "sheets"
	if err := cfg.SheetsReady(); err == nil {
		t.Error("missing spreadsheet id should not be ready")
	}
	cfg.Sheets.SpreadsheetID = "abc"
	if err := cfg.SheetsReady(); err == nil {
		t.Error("missing API key should not be ready")
	}
	cfg.Credentials.Google.APIKey = "key"
	if err := cfg.SheetsReady(); err != nil {
		t.Errorf("fully configured sheets source reported not ready: %v", err)
	}
}

func TestRequiresCredentials(t *testing.T) {
	cfg := Default()
	if cfg.RequiresCredentials() {
		t.Error("mock source should not require credentials")
	}
	for _, src := range []string{"csv", "xlsx"} {
		cfg.Source.Type = src
		if cfg.RequiresCredentials() {
			t.Errorf("%s source should not require credentials", src)
		}
	}
	cfg.Source.Type = "sheets"
	if !cfg.RequiresCredentials() {
		t.Error("sheets source should require credentials")
	}
}
