package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPulse/internal/model"
)

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	bars    []model.OHLCV
	err     error
	names   map[string]string
	tickers []string
	days    []int
}

func (f *fakeSource) Series(_ context.Context, ticker string, days int) ([]model.OHLCV, error) {
	f.tickers = append(f.tickers, ticker)
	f.days = append(f.days, days)
	if f.err != nil {
		return nil, f.err
	}
	return f.bars, nil
}

func (f *fakeSource) CompanyName(_ context.Context, ticker string) (string, error) {
	if name, ok := f.names[ticker]; ok {
		return name, nil
	}
	return "", errors.New("unknown")
}

func bars(closes ...float64) []model.OHLCV {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		out[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	return out
}

func flat(n int, v float64) []model.OHLCV {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return bars(closes...)
}

func newTestService(src *fakeSource) *Service {
	return NewService(src, "mock").WithClock(func() time.Time { return fixedNow })
}

func TestIndicators_Flat20(t *testing.T) {
	src := &fakeSource{bars: flat(20, 100)}
	report, err := newTestService(src).Indicators(context.Background(), "aapl", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", report.Ticker)
	assert.Equal(t, "Apple Inc.", report.CompanyName)
	assert.Equal(t, "2024-06-30 12:00:00 UTC", report.Timestamp)
	assert.Equal(t, 20, report.DataPoints)
	assert.Equal(t, "365d", report.Period)
	assert.Equal(t, []int{365}, src.days)

	ind := report.Indicators
	require.NotNil(t, ind.SMA)
	require.NotNil(t, ind.EMA)
	require.NotNil(t, ind.RSI)
	require.NotNil(t, ind.MACD)
	assert.Nil(t, ind.VWAP)
	assert.Equal(t, 100.0, ind.SMA.SMA20)
	assert.Equal(t, 100.0, ind.SMA.SMA50)
	assert.Equal(t, "Consolidating", ind.SMA.Trend)
	assert.Equal(t, 100.0, ind.RSI.RSI14)
	assert.Equal(t, "Overbought", ind.RSI.Signal)
	assert.Equal(t, "Sell", ind.MACD.Action)
}

func TestIndicators_TooFewRows(t *testing.T) {
	svc := newTestService(&fakeSource{bars: flat(10, 100)})
	report, err := svc.Indicators(context.Background(), "AAPL", nil, "")
	require.Error(t, err)
	assert.Nil(t, report)

	var de *model.DataInsufficientError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 10, de.Rows)

	payload, ok := Envelope("aapl", report, err).(model.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, "AAPL", payload.Ticker)
	assert.Contains(t, payload.Error, "10 rows")
}

func TestIndicators_UnknownNames(t *testing.T) {
	src := &fakeSource{bars: flat(30, 100)}
	svc := newTestService(src)

	report, err := svc.Indicators(context.Background(), "AAPL", []string{"rsi", "FOO"}, "90d")
	require.NoError(t, err)
	assert.NotNil(t, report.Indicators.RSI)
	assert.Nil(t, report.Indicators.SMA)
	assert.Equal(t, "90d", report.Period)

	src.days = nil
	_, err = svc.Indicators(context.Background(), "AAPL", []string{"FOO", "BAR"}, "")
	var ne *model.NoIndicatorsRequestedError
	require.True(t, errors.As(err, &ne))
	assert.Empty(t, src.days, "no fetch when nothing is computable")
}

func TestInvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeSource{bars: flat(30, 100)})
	_, err := svc.Momentum(context.Background(), "AAPL", "soon")
	var pe *model.InvalidPeriodError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "soon", pe.Period)
}

func TestEmptyTicker(t *testing.T) {
	svc := newTestService(&fakeSource{})
	_, err := svc.Volume(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrEmptyTicker)
}

func TestDisplayName(t *testing.T) {
	src := &fakeSource{bars: flat(30, 100), names: map[string]string{"NFLX": "Netflix Inc"}}
	svc := newTestService(src)
	ctx := context.Background()

	r, err := svc.Momentum(ctx, "GOOG", "")
	require.NoError(t, err)
	assert.Equal(t, "GOOGL", r.Ticker)
	assert.Equal(t, "Alphabet Inc. (Class C)", r.Name)
	assert.Equal(t, "GOOGL", src.tickers[0])

	r, err = svc.Momentum(ctx, "nflx", "")
	require.NoError(t, err)
	assert.Equal(t, "Netflix Inc", r.Name)

	r, err = svc.Momentum(ctx, "ZZZZ", "")
	require.NoError(t, err)
	assert.Equal(t, "ZZZZ Stock/ETF", r.Name)
}

func TestMomentum_Flat(t *testing.T) {
	src := &fakeSource{bars: flat(30, 100)}
	r, err := newTestService(src).Momentum(context.Background(), "MSFT", "6m")
	require.NoError(t, err)
	assert.Equal(t, 50, r.Score)
	assert.Equal(t, model.RatingNeutral, r.Rating)
	assert.Equal(t, "6m", r.Period)
	assert.Equal(t, []int{180}, src.days)
}

func TestVolume_Report(t *testing.T) {
	src := &fakeSource{bars: flat(30, 100)}
	r, err := newTestService(src).Volume(context.Background(), "SPY", "")
	require.NoError(t, err)
	assert.Equal(t, "SPDR S&P 500 ETF Trust", r.Name)
	assert.Equal(t, "365d", r.Period)
	assert.Equal(t, "Stable", r.VolumeTrend)
	assert.Equal(t, 100.0, r.CurrentPrice)
}

func TestPrice_Snapshot(t *testing.T) {
	src := &fakeSource{bars: bars(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29.456)}
	snap, err := newTestService(src).Price(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, 29.46, snap.CurrentPrice)
	assert.Equal(t, 30.46, snap.HighPrice)
	assert.Equal(t, 30.46, snap.RangeHigh)
	assert.Equal(t, 9.0, snap.RangeLow)
	assert.Equal(t, int64(1000), snap.Volume)
	assert.Equal(t, "2024-01-20", snap.Date)
	assert.Equal(t, "success", snap.Status)
	assert.Equal(t, []int{30}, src.days)
}

func TestProviderErrorPassesThrough(t *testing.T) {
	perr := &model.ProviderError{Ticker: "ZZZZ", Kind: model.ProviderNotFound, Err: errors.New("no data returned")}
	svc := newTestService(&fakeSource{err: perr})
	_, err := svc.Momentum(context.Background(), "ZZZZ", "")
	var got *model.ProviderError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, model.ProviderNotFound, got.Kind)
}

func TestStatus(t *testing.T) {
	r := newTestService(&fakeSource{bars: flat(25, 187.5)}).Status(context.Background())
	assert.Equal(t, "ok", r.Status)
	assert.Equal(t, 187.5, r.LastPrice)
	assert.Equal(t, "mock", r.Provider)

	r = newTestService(&fakeSource{err: errors.New("down")}).Status(context.Background())
	assert.Equal(t, "error", r.Status)
	assert.Contains(t, r.Message, "down")
}

func TestEnvelopeJSON_Idempotent(t *testing.T) {
	svc := newTestService(&fakeSource{bars: flat(60, 42)})
	names := []string{"SMA", "EMA", "RSI", "MACD", "VWAP", "OBV", "Volume_Ratio", "Volume_MA"}

	r1, err1 := svc.Indicators(context.Background(), "AAPL", names, "")
	r2, err2 := svc.Indicators(context.Background(), "AAPL", names, "")
	first := EnvelopeJSON("AAPL", r1, err1)
	second := EnvelopeJSON("AAPL", r2, err2)
	assert.Equal(t, string(first), string(second))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(first, &decoded))
	_, hasError := decoded["error"]
	assert.False(t, hasError)
	assert.Contains(t, decoded["indicators"], "Volume_Ratio")
}

func TestListIndicators(t *testing.T) {
	c := newTestService(&fakeSource{}).ListIndicators()
	assert.Len(t, c.BasicIndicators, 4)
	assert.Len(t, c.VolumeIndicators, 4)
	assert.Equal(t, "mock", c.DataSource)
	assert.Equal(t, "active", c.Status)
}
