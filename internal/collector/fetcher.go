package collector

import (
	"errors"

	"RiskReturnAnalyser/internal/model"
)

var (
	// ErrDataUnavailable marks an unreachable provider or an empty response.
	ErrDataUnavailable = errors.New("market data unavailable")
	// ErrUnknownTicker marks a symbol rejected by the provider.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// Fetcher defines the interface for fetching adjusted close series.
type Fetcher interface {
	FetchAdjustedCloses(ticker string, r model.DateRange) ([]model.PricePoint, error)
	Name() string
}
