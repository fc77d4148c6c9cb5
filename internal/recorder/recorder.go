package recorder

import (
	"time"

	"RiskReturnAnalyser/internal/model"
)

// RunRecord holds one pipeline run's inputs and resulting metrics.
type RunRecord struct {
	RanAt        time.Time
	RangeLabel   string
	RiskFreeRate float64
	Metrics      []model.Metrics
	BestTicker   string // empty when no ticker has a defined Sharpe
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
