package collector

import (
	"fmt"
	"log"
	"time"

	"RiskReturnAnalyser/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.PricePoint
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchAdjustedCloses(ticker string, _ model.DateRange) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	points, ok := m.Series[ticker]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	return points, nil
}

// Collector fetches price series for a basket of tickers and aligns them
// onto a common date axis.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches adjusted closes for every ticker and intersects the date
// axes. Dates with incomplete ticker coverage are dropped with a warning; a
// ticker with no data in range, or an empty aligned table, is a hard failure.
func (c *Collector) Collect(tickers []string, r model.DateRange) (*model.PriceTable, error) {
	tickers = dedupeTickers(tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: no tickers requested", ErrDataUnavailable)
	}

	series := make([]model.PriceSeries, 0, len(tickers))
	for _, t := range tickers {
		points, err := c.Fetcher.FetchAdjustedCloses(t, r)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", t, err)
		}
		points = trimToWindow(points, r)
		if len(points) == 0 {
			return nil, fmt.Errorf("%w: no data for %s in range %s", ErrDataUnavailable, t, r.Label())
		}
		series = append(series, model.PriceSeries{Ticker: t, Points: points, FetchedAt: time.Now()})
	}

	return align(tickers, series)
}

// align keeps only dates covered by every ticker, preserving the first
// series' date order.
func align(tickers []string, series []model.PriceSeries) (*model.PriceTable, error) {
	coverage := make(map[time.Time]int)
	closes := make([]map[time.Time]float64, len(series))
	for i, s := range series {
		closes[i] = make(map[time.Time]float64, len(s.Points))
		for _, p := range s.Points {
			if _, dup := closes[i][p.Date]; dup {
				continue
			}
			closes[i][p.Date] = p.Close
			coverage[p.Date]++
		}
	}

	var dates []time.Time
	seen := make(map[time.Time]bool)
	for _, p := range series[0].Points {
		if coverage[p.Date] == len(series) && !seen[p.Date] {
			seen[p.Date] = true
			dates = append(dates, p.Date)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no overlapping trading days across %v", ErrDataUnavailable, tickers)
	}

	for i, s := range series {
		if dropped := len(closes[i]) - len(dates); dropped > 0 {
			log.Printf("[WARN] partial coverage: %s loses %d of %d dates to alignment", s.Ticker, dropped, len(closes[i]))
		}
	}

	prices := make(map[string][]float64, len(series))
	for i, s := range series {
		col := make([]float64, len(dates))
		for j, d := range dates {
			col[j] = closes[i][d]
		}
		prices[s.Ticker] = col
	}

	return &model.PriceTable{Tickers: tickers, Dates: dates, Prices: prices}, nil
}

// trimToWindow drops points outside the requested window. Relative periods
// are measured back from the latest observation; absolute ranges are exact.
func trimToWindow(points []model.PricePoint, r model.DateRange) []model.PricePoint {
	if len(points) == 0 {
		return points
	}
	if r.Relative() {
		days := r.TargetDays()
		if days == 0 {
			return points
		}
		cutoff := points[len(points)-1].Date.AddDate(0, 0, -days)
		for i, p := range points {
			if !p.Date.Before(cutoff) {
				return points[i:]
			}
		}
		return nil
	}
	out := points[:0]
	for _, p := range points {
		if p.Date.Before(r.Start) || p.Date.After(r.End) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func dedupeTickers(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
