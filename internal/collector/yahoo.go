package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"StockPulse/internal/model"
)

// YahooFetcher implements Fetcher using Yahoo Finance through finance-go.
type YahooFetcher struct {
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	now       func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher() *YahooFetcher {
	return &YahooFetcher{
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		now: time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

func (f *YahooFetcher) FetchDailyBars(ctx context.Context, ticker string, lookbackDays int) ([]model.OHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNetwork, Err: err}
	}

	end := f.now()
	start := end.AddDate(0, 0, -lookbackDays)
	iter := chart.Get(&chart.Params{
		Symbol:   f.yahooSymbol(ticker),
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var bars []model.OHLCV
	for iter.Next() {
		bar := iter.Bar()
		// Yahoo returns empty rows for halted sessions.
		if bar.Close.IsZero() {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Open:   bar.Open.InexactFloat64(),
			High:   bar.High.InexactFloat64(),
			Low:    bar.Low.InexactFloat64(),
			Close:  bar.Close.InexactFloat64(),
			Volume: float64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, &model.ProviderError{Ticker: ticker, Kind: classifyYahooError(err), Err: err}
	}
	if len(bars) == 0 {
		return nil, &model.ProviderError{Ticker: ticker, Kind: model.ProviderNotFound, Err: errors.New("no data returned")}
	}
	return bars, nil
}

func (f *YahooFetcher) CompanyName(_ context.Context, ticker string) (string, error) {
	q, err := quote.Get(f.yahooSymbol(ticker))
	if err != nil {
		return "", fmt.Errorf("yahoo quote %s: %w", ticker, err)
	}
	if q == nil || q.ShortName == "" {
		return "", fmt.Errorf("no name for %s", ticker)
	}
	return q.ShortName, nil
}

// classifyYahooError maps finance-go error text onto provider error kinds.
func classifyYahooError(err error) model.ProviderErrorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401"), strings.Contains(msg, "403"), strings.Contains(msg, "unauthorized"):
		return model.ProviderUnauthorized
	case strings.Contains(msg, "429"), strings.Contains(msg, "too many requests"):
		return model.ProviderRateLimited
	case strings.Contains(msg, "404"), strings.Contains(msg, "not found"), strings.Contains(msg, "no data"):
		return model.ProviderNotFound
	default:
		return model.ProviderNetwork
	}
}
