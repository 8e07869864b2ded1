package collector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"StockPulse/internal/logger"
	"StockPulse/internal/metrics"
	"StockPulse/internal/model"
)

// warmupDays is fetched on top of the requested period so long windows
// (SMA 50, MACD 26+9) have history behind the first reported bar.
const warmupDays = 250

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
	Names     map[string]string
	Err       error

	// Calls counts FetchDailyBars invocations.
	Calls atomic.Int64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string, days int) ([]model.OHLCV, error) {
	m.Calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) CompanyName(_ context.Context, ticker string) (string, error) {
	if name, ok := m.Names[ticker]; ok {
		return name, nil
	}
	return "", fmt.Errorf("no name for %s", ticker)
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	if basePrice <= 0 {
		basePrice = 100
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   now.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches and normalizes price history for the analysis engine.
type Collector struct {
	Fetcher Fetcher
	now     func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, now: time.Now}
}

// WithClock overrides the clock used for windowing.
func (c *Collector) WithClock(now func() time.Time) *Collector {
	c.now = now
	return c
}

// Series returns the daily bars of ticker covering the last days calendar days.
// The ticker is resolved through the alias table first. When the window holds
// fewer than model.MinBars bars, the tail of the warm-up fetch is used instead.
func (c *Collector) Series(ctx context.Context, ticker string, days int) ([]model.OHLCV, error) {
	symbol := CanonicalTicker(ticker)

	start := time.Now()
	raw, err := c.Fetcher.FetchDailyBars(ctx, symbol, days+warmupDays)
	if err != nil {
		var pe *model.ProviderError
		if !errors.As(err, &pe) {
			pe = &model.ProviderError{Ticker: symbol, Kind: model.ProviderNetwork, Err: err}
		}
		metrics.RecordProviderFetch(c.Fetcher.Name(), string(pe.Kind), time.Since(start))
		return nil, pe
	}
	metrics.RecordProviderFetch(c.Fetcher.Name(), "success", time.Since(start))

	bars := normalize(raw)
	if dropped := len(raw) - len(bars); dropped > 0 {
		logger.Debugf("%s: dropped %d invalid or duplicate bars from %s", symbol, dropped, c.Fetcher.Name())
	}

	windowed := window(bars, c.now().AddDate(0, 0, -days), days)
	if len(windowed) < model.MinBars {
		return nil, &model.DataInsufficientError{Ticker: symbol, Rows: len(windowed)}
	}
	return windowed, nil
}

// CompanyName asks the provider for the display name of ticker.
func (c *Collector) CompanyName(ctx context.Context, ticker string) (string, error) {
	return c.Fetcher.CompanyName(ctx, CanonicalTicker(ticker))
}

// normalize sorts bars by date, keeps the last bar per calendar day and drops
// bars with negative or non-positive close values.
func normalize(raw []model.OHLCV) []model.OHLCV {
	bars := make([]model.OHLCV, 0, len(raw))
	for _, b := range raw {
		if b.Close <= 0 || b.Open < 0 || b.High < 0 || b.Low < 0 || b.Volume < 0 {
			continue
		}
		bars = append(bars, b)
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	out := bars[:0]
	for _, b := range bars {
		if n := len(out); n > 0 && sameDay(out[n-1].Time, b.Time) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

func window(bars []model.OHLCV, since time.Time, days int) []model.OHLCV {
	i := sort.Search(len(bars), func(i int) bool { return !bars[i].Time.Before(since) })
	if len(bars)-i >= model.MinBars {
		return bars[i:]
	}

	keep := days
	if keep < warmupDays {
		keep = warmupDays
	}
	if keep > len(bars) {
		keep = len(bars)
	}
	return bars[len(bars)-keep:]
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
