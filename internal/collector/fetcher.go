package collector

import (
	"context"

	"StockPulse/internal/model"
)

// Fetcher defines the interface for fetching daily price history.
//
// FetchDailyBars returns bars covering at least the last lookbackDays calendar
// days. Failures are reported as *model.ProviderError.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, ticker string, lookbackDays int) ([]model.OHLCV, error)
	CompanyName(ctx context.Context, ticker string) (string, error)
	Name() string
}
