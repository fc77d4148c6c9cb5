package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"RiskReturnAnalyser/internal/calculator"
	"RiskReturnAnalyser/internal/model"
)

// Summary formats the metrics as a console table, percentages to 2 decimal
// places and Sharpe to 3, with "N/A" for an undefined Sharpe, followed by
// the best risk-adjusted pick.
func Summary(metrics []model.Metrics) string {
	var b strings.Builder

	b.WriteString("ETF Risk/Return Summary\n")
	b.WriteString(fmt.Sprintf("%-10s %12s %12s %10s %12s\n",
		"TICKER", "ANN RETURN", "VOLATILITY", "SHARPE", "MAX DD"))
	for _, m := range metrics {
		b.WriteString(fmt.Sprintf("%-10s %11.2f%% %11.2f%% %10s %11.2f%%\n",
			m.Ticker, m.AnnualReturn*100, m.Volatility*100,
			formatSharpe(m.Sharpe), m.MaxDrawdown*100))
	}

	if best, ok := calculator.BestSharpe(metrics); ok {
		b.WriteString(fmt.Sprintf("\nBest risk-adjusted: %s (Sharpe %.3f)\n", best.Ticker, best.Sharpe))
	} else {
		b.WriteString("\nBest risk-adjusted: N/A (no ticker has a defined Sharpe ratio)\n")
	}
	return b.String()
}

// WriteMetricsCSV persists the metrics table, overwriting any previous run.
func WriteMetricsCSV(metrics []model.Metrics, path string) error {
	if len(metrics) == 0 {
		return fmt.Errorf("%w: no metrics to write", ErrRender)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ticker", "annual_return", "annual_volatility", "sharpe_ratio", "max_drawdown"}); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	for _, m := range metrics {
		row := []string{
			m.Ticker,
			formatFloat(m.AnnualReturn),
			formatFloat(m.Volatility),
			formatSharpe(m.Sharpe),
			formatFloat(m.MaxDrawdown),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrRender, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func formatSharpe(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
