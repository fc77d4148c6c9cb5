package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"RiskReturnAnalyser/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://query1.finance.yahoo.com",
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchAdjustedCloses returns one adjusted close per trading day for the
// requested window, sorted by date with duplicates removed.
func (f *YahooFetcher) FetchAdjustedCloses(ticker string, r model.DateRange) ([]model.PricePoint, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("events", "div,split")
	q.Set("includeAdjustedClose", "true")
	if r.Relative() {
		q.Set("range", yahooRange(r))
	} else {
		q.Set("period1", fmt.Sprintf("%d", r.Start.Unix()))
		// period2 is exclusive, so push it one day past the requested end.
		q.Set("period2", fmt.Sprintf("%d", r.End.AddDate(0, 0, 1).Unix()))
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch %s: %v", ErrDataUnavailable, ticker, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo read body: %v", ErrDataUnavailable, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s rejected by yahoo", ErrUnknownTicker, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: yahoo status %d for %s", ErrDataUnavailable, resp.StatusCode, ticker)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: yahoo decode: %v", ErrDataUnavailable, err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%w: %s: %s", ErrUnknownTicker, ticker, chart.Chart.Error.Description)
		}
		return nil, fmt.Errorf("%w: yahoo api error for %s: %s", ErrDataUnavailable, ticker, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w: no data returned for %s", ErrDataUnavailable, ticker)
	}

	result := chart.Chart.Result[0]
	var closes []interface{}
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		closes = result.Indicators.AdjClose[0].AdjClose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%w: no close prices for %s", ErrDataUnavailable, ticker)
	}

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		c := toFloat(closes[i])
		if c <= 0 {
			continue // null bars (holidays, provider gaps)
		}
		day := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		points = append(points, model.PricePoint{Date: day, Close: c})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return dedupeDates(points), nil
}

// dedupeDates keeps the last observation per trading day.
func dedupeDates(points []model.PricePoint) []model.PricePoint {
	out := points[:0]
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Date.Equal(p.Date) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

// yahooRange maps a period token onto the nearest Yahoo range parameter.
// The fetched series is trimmed to the exact window by the collector.
func yahooRange(r model.DateRange) string {
	days := r.TargetDays()
	switch {
	case days == 0:
		return "max"
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	case days <= 730:
		return "2y"
	case days <= 1825:
		return "5y"
	case days <= 3650:
		return "10y"
	default:
		return "max"
	}
}
