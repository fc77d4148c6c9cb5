package report

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"RiskReturnAnalyser/internal/model"
)

func growthSeries(ticker string, values []float64) model.GrowthSeries {
	dates := make([]time.Time, len(values))
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return model.GrowthSeries{Ticker: ticker, Dates: dates, Values: values}
}

func TestRenderGrowthChart_EmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	err := RenderGrowthChart(nil, "Cumulative Growth", path)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file must be written on render failure")
	}
}

func TestRenderGrowthChart_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chart.png")
	growth := []model.GrowthSeries{
		growthSeries("SPY", []float64{1.0, 1.01, 1.02, 1.015, 1.03}),
		growthSeries("QQQ", []float64{1.0, 0.99, 1.01, 1.02, 1.05}),
	}
	if err := RenderGrowthChart(growth, "Cumulative Growth (test)", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output does not look like a PNG")
	}
}

func TestSummary_Formatting(t *testing.T) {
	metrics := []model.Metrics{
		{Ticker: "SPY", AnnualReturn: 0.1234, Volatility: 0.18, Sharpe: 0.5744, MaxDrawdown: 0.21},
		{Ticker: "FLAT", AnnualReturn: 0, Volatility: 0, Sharpe: math.NaN(), MaxDrawdown: 0},
	}
	out := Summary(metrics)

	if !strings.Contains(out, "12.34%") {
		t.Errorf("expected return as percentage to 2 decimals, got:\n%s", out)
	}
	if !strings.Contains(out, "0.574") {
		t.Errorf("expected Sharpe to 3 decimals, got:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Errorf("undefined Sharpe must display as N/A, got:\n%s", out)
	}
	if !strings.Contains(out, "Best risk-adjusted: SPY") {
		t.Errorf("expected best pick line, got:\n%s", out)
	}
}

func TestSummary_NoDefinedSharpe(t *testing.T) {
	out := Summary([]model.Metrics{{Ticker: "FLAT", Sharpe: math.NaN()}})
	if !strings.Contains(out, "Best risk-adjusted: N/A") {
		t.Errorf("expected N/A best pick, got:\n%s", out)
	}
}

func TestWriteMetricsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.csv")
	metrics := []model.Metrics{
		{Ticker: "SPY", AnnualReturn: 0.1, Volatility: 0.2, Sharpe: 0.4, MaxDrawdown: 0.15},
		{Ticker: "FLAT", Sharpe: math.NaN()},
	}
	if err := WriteMetricsCSV(metrics, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("csv missing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ticker,annual_return,annual_volatility,sharpe_ratio,max_drawdown" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "SPY,0.100000,0.200000,0.400,") {
		t.Errorf("unexpected SPY row %q", lines[1])
	}
	if !strings.Contains(lines[2], ",N/A,") {
		t.Errorf("undefined Sharpe must persist as N/A, got %q", lines[2])
	}
}

func TestWriteMetricsCSV_Empty(t *testing.T) {
	err := WriteMetricsCSV(nil, filepath.Join(t.TempDir(), "summary.csv"))
	if !errors.Is(err, ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
}

func TestWriteMetricsCSV_Deterministic(t *testing.T) {
	dir := t.TempDir()
	metrics := []model.Metrics{{Ticker: "SPY", AnnualReturn: 0.1, Volatility: 0.2, Sharpe: 0.4, MaxDrawdown: 0.15}}

	p1 := filepath.Join(dir, "a.csv")
	p2 := filepath.Join(dir, "b.csv")
	if err := WriteMetricsCSV(metrics, p1); err != nil {
		t.Fatal(err)
	}
	if err := WriteMetricsCSV(metrics, p2); err != nil {
		t.Fatal(err)
	}
	b1, _ := os.ReadFile(p1)
	b2, _ := os.ReadFile(p2)
	if string(b1) != string(b2) {
		t.Error("identical metrics must produce byte-identical CSV output")
	}
}
