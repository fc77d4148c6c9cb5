package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"RiskReturnAnalyser/internal/collector"
	"RiskReturnAnalyser/internal/config"
	"RiskReturnAnalyser/internal/model"
	"RiskReturnAnalyser/internal/pipeline"
	"RiskReturnAnalyser/internal/recorder"
	"RiskReturnAnalyser/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "", "path to YAML config (default configs/config.yaml, or CONFIG_PATH)")
	tickers := flag.String("tickers", "", "comma-separated ticker symbols")
	period := flag.String("period", "", "relative period, e.g. 30d, 26w, 6mo, 2y, max")
	start := flag.String("start", "", "start date YYYY-MM-DD")
	end := flag.String("end", "", "end date YYYY-MM-DD")
	riskFree := flag.Float64("risk-free", 0, "annual risk-free rate, e.g. 0.02")
	outDir := flag.String("out", "", "output directory for chart and table")
	cronSpec := flag.String("cron", "", "cron expression (with seconds) to re-run on a schedule")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	applyFlags(cfg, tickers, period, start, end, riskFree, outDir, cronSpec)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	col := collector.NewCollector(fetcher)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	p := pipeline.New(col, rec, cfg)

	if cfg.Schedule.Cron != "" {
		runScheduled(p, cfg.Schedule.Cron)
		return
	}

	if err := p.Run(); err != nil {
		reportFailure(err)
		os.Exit(exitCode(err))
	}
}

// applyFlags lets explicitly passed flags override the config file.
func applyFlags(cfg *config.Config, tickers, period, start, end *string, riskFree *float64, outDir, cronSpec *string) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tickers":
			cfg.Analysis.Tickers = config.SplitTickers(*tickers)
		case "period":
			cfg.Analysis.Period = *period
			cfg.Analysis.Start = ""
			cfg.Analysis.End = ""
		case "start":
			cfg.Analysis.Start = *start
			cfg.Analysis.Period = ""
		case "end":
			cfg.Analysis.End = *end
			cfg.Analysis.Period = ""
		case "risk-free":
			cfg.Analysis.RiskFreeRate = *riskFree
		case "out":
			cfg.Output.Dir = *outDir
		case "cron":
			cfg.Schedule.Cron = *cronSpec
		}
	})
}

// runScheduled re-runs the pipeline on a cron schedule until interrupted.
// Each run stays single-shot: a failure is reported and the next tick tries
// fresh.
func runScheduled(p *pipeline.Pipeline, spec string) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() {
		if err := p.Run(); err != nil {
			reportFailure(err)
		}
	}); err != nil {
		log.Fatalf("[FATAL] register cron schedule: %v", err)
	}
	c.Start()
	defer c.Stop()
	log.Printf("[INFO] scheduled mode: %q, press Ctrl+C to stop", spec)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping")
}

func reportFailure(err error) {
	var se *pipeline.StageError
	if errors.As(err, &se) {
		log.Printf("[ERROR] %s stage failed: %v (hint: %s)", se.Stage, se.Err, se.Hint)
		return
	}
	log.Printf("[ERROR] %v", err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidRange):
		return 2
	case errors.Is(err, collector.ErrDataUnavailable), errors.Is(err, collector.ErrUnknownTicker):
		return 3
	case errors.Is(err, report.ErrRender):
		return 4
	}
	return 1
}
