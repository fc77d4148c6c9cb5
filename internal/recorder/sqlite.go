package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends run metrics to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_metrics (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			range_label       TEXT,
			risk_free_rate    REAL,
			ticker            TEXT NOT NULL,
			annual_return     REAL,
			annual_volatility REAL,
			sharpe            REAL,
			max_drawdown      REAL,
			best              INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_ts ON run_metrics(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts one row per ticker. An undefined Sharpe is stored as NULL.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, m := range rec.Metrics {
		var sharpe interface{}
		if !math.IsNaN(m.Sharpe) {
			sharpe = m.Sharpe
		}
		best := 0
		if m.Ticker == rec.BestTicker {
			best = 1
		}
		if _, err := tx.Exec(`INSERT INTO run_metrics
			(timestamp, range_label, risk_free_rate, ticker,
			 annual_return, annual_volatility, sharpe, max_drawdown, best)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			rec.RanAt.Unix(), rec.RangeLabel, rec.RiskFreeRate, m.Ticker,
			m.AnnualReturn, m.Volatility, sharpe, m.MaxDrawdown, best,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error { return r.db.Close() }
