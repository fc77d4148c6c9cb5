package model

import "time"

// PricePoint is a single adjusted-close observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds raw adjusted closing prices for one ticker,
// ordered by trading date.
type PriceSeries struct {
	Ticker    string
	Points    []PricePoint
	FetchedAt time.Time
}

// PriceTable is an aligned collection of price series sharing a common
// date axis: Prices[ticker][i] is the adjusted close on Dates[i].
// Every kept date has a price for every ticker.
type PriceTable struct {
	Tickers []string // request order, preserved for display
	Dates   []time.Time
	Prices  map[string][]float64
}

// NumDates returns the length of the shared date axis.
func (t *PriceTable) NumDates() int { return len(t.Dates) }

// Metrics holds the annualized risk/return statistics for one ticker.
// Sharpe is NaN when volatility is zero.
type Metrics struct {
	Ticker       string
	AnnualReturn float64
	Volatility   float64
	Sharpe       float64
	TotalReturn  float64
	MaxDrawdown  float64
}

// GrowthSeries is the cumulative growth of one unit invested in a ticker.
// Its date axis matches the daily return series: the first price date of
// the aligned table carries no return and is dropped.
type GrowthSeries struct {
	Ticker string
	Dates  []time.Time
	Values []float64
}
