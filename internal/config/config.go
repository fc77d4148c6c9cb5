package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		Tickers      []string `yaml:"tickers"`
		Start        string   `yaml:"start"`
		End          string   `yaml:"end"`
		Period       string   `yaml:"period"`
		RiskFreeRate float64  `yaml:"risk_free_rate"`
		TradingDays  int      `yaml:"trading_days_per_year"`
	} `yaml:"analysis"`
	Output struct {
		Dir       string `yaml:"dir"`
		ChartFile string `yaml:"chart_file"`
		TableFile string `yaml:"table_file"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Analysis.Tickers = []string{"SPY", "QQQ", "VUKE.L", "EEM"}
	cfg.Analysis.RiskFreeRate = 0.02
	cfg.Analysis.TradingDays = 252
	cfg.Output.Dir = "output"
	cfg.Output.ChartFile = "cumulative_growth.png"
	cfg.Output.TableFile = "risk_return_summary.csv"

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Analysis.Tickers = SplitTickers(v)
	}
	if v := os.Getenv("PERIOD"); v != "" {
		cfg.Analysis.Period = v
		cfg.Analysis.Start = ""
		cfg.Analysis.End = ""
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		var rate float64
		if _, err := fmt.Sscanf(v, "%f", &rate); err == nil {
			cfg.Analysis.RiskFreeRate = rate
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Default window, only when no absolute range was configured.
	if cfg.Analysis.Period == "" && cfg.Analysis.Start == "" {
		cfg.Analysis.Period = "2y"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable. Range parsing proper
// happens in the pipeline, before any network call.
func (c *Config) Validate() error {
	if len(c.Analysis.Tickers) == 0 {
		return fmt.Errorf("analysis.tickers must not be empty")
	}
	for _, t := range c.Analysis.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("analysis.tickers contains a blank entry")
		}
	}
	if c.Analysis.RiskFreeRate < 0 || c.Analysis.RiskFreeRate >= 1 {
		return fmt.Errorf("analysis.risk_free_rate must be in [0, 1), got %v", c.Analysis.RiskFreeRate)
	}
	if c.Analysis.TradingDays <= 0 {
		return fmt.Errorf("analysis.trading_days_per_year must be positive")
	}
	if c.Output.Dir == "" || c.Output.ChartFile == "" || c.Output.TableFile == "" {
		return fmt.Errorf("output.dir, output.chart_file and output.table_file are required")
	}
	return nil
}

// ChartPath returns the chart image output path.
func (c *Config) ChartPath() string { return filepath.Join(c.Output.Dir, c.Output.ChartFile) }

// TablePath returns the metrics table output path.
func (c *Config) TablePath() string { return filepath.Join(c.Output.Dir, c.Output.TableFile) }

// SplitTickers parses a comma-separated ticker list, trimming blanks.
func SplitTickers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
