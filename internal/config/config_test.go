package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if len(cfg.Analysis.Tickers) == 0 {
		t.Error("expected default tickers")
	}
	if cfg.Analysis.RiskFreeRate != 0.02 {
		t.Errorf("expected default risk-free rate 0.02, got %v", cfg.Analysis.RiskFreeRate)
	}
	if cfg.Analysis.TradingDays != 252 {
		t.Errorf("expected default 252 trading days, got %d", cfg.Analysis.TradingDays)
	}
	if cfg.Analysis.Period != "2y" {
		t.Errorf("expected default period 2y, got %q", cfg.Analysis.Period)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
analysis:
  tickers: [VTI, BND]
  start: "2018-01-01"
  end: "2025-01-01"
  period: ""
  risk_free_rate: 0.03
output:
  dir: reports
database:
  sqlite_path: data/history.db
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Analysis.Tickers) != 2 || cfg.Analysis.Tickers[0] != "VTI" {
		t.Errorf("unexpected tickers %v", cfg.Analysis.Tickers)
	}
	if cfg.Analysis.RiskFreeRate != 0.03 {
		t.Errorf("expected 0.03, got %v", cfg.Analysis.RiskFreeRate)
	}
	if cfg.Analysis.Period != "" || cfg.Analysis.Start != "2018-01-01" {
		t.Errorf("expected absolute range, got period=%q start=%q", cfg.Analysis.Period, cfg.Analysis.Start)
	}
	if cfg.Output.ChartFile == "" {
		t.Error("unset fields keep their defaults")
	}
	if cfg.ChartPath() != filepath.Join("reports", "cumulative_growth.png") {
		t.Errorf("unexpected chart path %q", cfg.ChartPath())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TICKERS", "SPY, EEM")
	t.Setenv("PERIOD", "5y")
	t.Setenv("RISK_FREE_RATE", "0.01")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Analysis.Tickers) != 2 || cfg.Analysis.Tickers[1] != "EEM" {
		t.Errorf("unexpected tickers %v", cfg.Analysis.Tickers)
	}
	if cfg.Analysis.Period != "5y" {
		t.Errorf("expected 5y, got %q", cfg.Analysis.Period)
	}
	if cfg.Analysis.RiskFreeRate != 0.01 {
		t.Errorf("expected 0.01, got %v", cfg.Analysis.RiskFreeRate)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no tickers", func(c *Config) { c.Analysis.Tickers = nil }},
		{"blank ticker", func(c *Config) { c.Analysis.Tickers = []string{"SPY", " "} }},
		{"negative rate", func(c *Config) { c.Analysis.RiskFreeRate = -0.01 }},
		{"rate too large", func(c *Config) { c.Analysis.RiskFreeRate = 1.5 }},
		{"zero trading days", func(c *Config) { c.Analysis.TradingDays = 0 }},
		{"no output dir", func(c *Config) { c.Output.Dir = "" }},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSplitTickers(t *testing.T) {
	got := SplitTickers(" SPY, QQQ ,,EEM ")
	if len(got) != 3 || got[0] != "SPY" || got[2] != "EEM" {
		t.Errorf("unexpected result %v", got)
	}
}
