package calculator

import (
	"errors"
	"fmt"
	"math"

	"RiskReturnAnalyser/internal/model"
)

// DefaultTradingDays is the annualization convention for daily data.
const DefaultTradingDays = 252

// AnnualizedReturn extrapolates a mean daily return to a one-year horizon
// by geometric compounding.
func AnnualizedReturn(meanDaily float64, tradingDays int) float64 {
	return math.Pow(1+meanDaily, float64(tradingDays)) - 1
}

// AnnualizedVolatility scales a daily standard deviation by sqrt(trading days).
func AnnualizedVolatility(dailyStdDev float64, tradingDays int) float64 {
	return dailyStdDev * math.Sqrt(float64(tradingDays))
}

// SharpeRatio returns excess return per unit of volatility, or NaN when
// volatility is zero.
func SharpeRatio(annualReturn, annualVol, riskFreeRate float64) float64 {
	if annualVol == 0 {
		return math.NaN()
	}
	return (annualReturn - riskFreeRate) / annualVol
}

// MaxDrawdown returns the largest peak-to-trough decline of a value series
// as a positive fraction.
func MaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	maxDD := 0.0
	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// BestSharpe selects the metrics record with the highest Sharpe ratio.
// Records with an undefined Sharpe are skipped; exact ties go to the
// earliest record in input order. ok is false when no record qualifies.
func BestSharpe(metrics []model.Metrics) (best model.Metrics, ok bool) {
	for _, m := range metrics {
		if math.IsNaN(m.Sharpe) {
			continue
		}
		if !ok || m.Sharpe > best.Sharpe {
			best = m
			ok = true
		}
	}
	return best, ok
}

// ComputeMetrics derives per-ticker annualized statistics and cumulative
// growth series from an aligned price table. Pure: deterministic, no I/O.
func ComputeMetrics(table *model.PriceTable, riskFreeRate float64, tradingDays int) ([]model.Metrics, []model.GrowthSeries, error) {
	if table == nil || table.NumDates() < 2 {
		return nil, nil, errors.New("need at least 2 aligned dates to compute returns")
	}
	if tradingDays <= 0 {
		return nil, nil, fmt.Errorf("trading days per year must be positive, got %d", tradingDays)
	}

	metrics := make([]model.Metrics, 0, len(table.Tickers))
	growth := make([]model.GrowthSeries, 0, len(table.Tickers))
	for _, ticker := range table.Tickers {
		closes, ok := table.Prices[ticker]
		if !ok || len(closes) != table.NumDates() {
			return nil, nil, fmt.Errorf("price table is misaligned for %s", ticker)
		}
		returns, err := DailyReturns(closes)
		if err != nil {
			return nil, nil, fmt.Errorf("daily returns for %s: %w", ticker, err)
		}

		annReturn := AnnualizedReturn(Mean(returns), tradingDays)
		annVol := AnnualizedVolatility(SampleStdDev(returns), tradingDays)
		values := CumulativeGrowth(returns)

		metrics = append(metrics, model.Metrics{
			Ticker:       ticker,
			AnnualReturn: annReturn,
			Volatility:   annVol,
			Sharpe:       SharpeRatio(annReturn, annVol, riskFreeRate),
			TotalReturn:  values[len(values)-1] - 1,
			MaxDrawdown:  MaxDrawdown(values),
		})
		growth = append(growth, model.GrowthSeries{
			Ticker: ticker,
			Dates:  table.Dates[1:],
			Values: values,
		})
	}
	return metrics, growth, nil
}
