package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"RiskReturnAnalyser/internal/calculator"
	"RiskReturnAnalyser/internal/collector"
	"RiskReturnAnalyser/internal/config"
	"RiskReturnAnalyser/internal/model"
	"RiskReturnAnalyser/internal/recorder"
	"RiskReturnAnalyser/internal/report"
)

// Stage names a pipeline phase for failure reporting.
type Stage string

const (
	StageLoad    Stage = "load"
	StageCompute Stage = "compute"
	StageRender  Stage = "render"
)

// StageError tags a failure with the stage it came from and a remediation
// hint for the operator.
type StageError struct {
	Stage Stage
	Hint  string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Pipeline sequences load, compute and render for one batch run.
// Single-shot: no retries, no background work.
type Pipeline struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Cfg       *config.Config
	Out       io.Writer
}

// New creates a Pipeline writing its summary to stdout.
func New(col *collector.Collector, rec recorder.Recorder, cfg *config.Config) *Pipeline {
	return &Pipeline{Collector: col, Recorder: rec, Cfg: cfg, Out: os.Stdout}
}

// Run executes one full analysis. Outputs are written only after all
// computation succeeded, so a failed run leaves no partial files.
func (p *Pipeline) Run() error {
	a := p.Cfg.Analysis

	r, err := model.ParseDateRange(a.Start, a.End, a.Period)
	if err != nil {
		return &StageError{StageLoad, "check the configured date range or period", err}
	}

	log.Printf("[INFO] loading %d tickers over %s via %s", len(a.Tickers), r.Label(), p.Collector.Fetcher.Name())
	table, err := p.Collector.Collect(a.Tickers, r)
	if err != nil {
		hint := "check network connectivity"
		if errors.Is(err, collector.ErrUnknownTicker) {
			hint = "check the ticker symbols"
		}
		return &StageError{StageLoad, hint, err}
	}
	log.Printf("[INFO] aligned price table: %d tickers x %d dates", len(table.Tickers), table.NumDates())

	metrics, growth, err := calculator.ComputeMetrics(table, a.RiskFreeRate, a.TradingDays)
	if err != nil {
		return &StageError{StageCompute, "inspect the fetched price data", err}
	}
	for _, m := range metrics {
		if math.IsNaN(m.Sharpe) {
			log.Printf("[WARN] zero volatility for %s, Sharpe ratio undefined", m.Ticker)
		}
	}

	title := fmt.Sprintf("Cumulative Growth (%s)", r.Label())
	if err := report.RenderGrowthChart(growth, title, p.Cfg.ChartPath()); err != nil {
		return &StageError{StageRender, "check write permission on the output directory", err}
	}
	if err := report.WriteMetricsCSV(metrics, p.Cfg.TablePath()); err != nil {
		return &StageError{StageRender, "check write permission on the output directory", err}
	}

	fmt.Fprint(p.Out, report.Summary(metrics))

	rec := &recorder.RunRecord{
		RanAt:        time.Now(),
		RangeLabel:   r.Label(),
		RiskFreeRate: a.RiskFreeRate,
		Metrics:      metrics,
	}
	if best, ok := calculator.BestSharpe(metrics); ok {
		rec.BestTicker = best.Ticker
	}
	if err := p.Recorder.RecordRun(rec); err != nil {
		log.Printf("[WARN] record run history: %v", err)
	}

	log.Printf("[INFO] run complete: chart %s, table %s", p.Cfg.ChartPath(), p.Cfg.TablePath())
	return nil
}
