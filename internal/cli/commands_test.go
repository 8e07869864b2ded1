package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPulse/internal/analysis"
	"StockPulse/internal/model"
)

type staticSource struct {
	bars []model.OHLCV
	err  error
}

func (s staticSource) Series(context.Context, string, int) ([]model.OHLCV, error) {
	return s.bars, s.err
}

func (s staticSource) CompanyName(context.Context, string) (string, error) {
	return "", errors.New("unknown")
}

func risingBars(n int) []model.OHLCV {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.OHLCV, n)
	for i := range out {
		c := 100 + float64(i)
		out[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c + 0.5, Low: c - 0.5, Close: c, Volume: 1000}
	}
	return out
}

func run(t *testing.T, src staticSource, args ...string) (map[string]interface{}, error) {
	t.Helper()
	cmd := newRootCmd(func(*cobra.Command) (analysis.Engine, func(), error) {
		return analysis.NewService(src, "mock"), func() {}, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	var decoded map[string]interface{}
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	}
	return decoded, err
}

func TestMomentumCommand(t *testing.T) {
	out, err := run(t, staticSource{bars: risingBars(30)}, "momentum", "qqq", "--period", "90d")
	require.NoError(t, err)
	assert.Equal(t, "QQQ", out["ticker"])
	assert.Equal(t, "Invesco QQQ Trust", out["name"])
	assert.Equal(t, 100.0, out["momentum_score"])
	assert.Equal(t, "Strong Bullish", out["rating"])
	assert.Equal(t, "90d", out["analysis_period"])
}

func TestIndicatorsCommand(t *testing.T) {
	out, err := run(t, staticSource{bars: risingBars(30)}, "indicators", "ZZZZ", "--indicators", "OBV,Volume_MA")
	require.NoError(t, err)
	assert.Equal(t, "ZZZZ Stock/ETF", out["company_name"])
	ind := out["indicators"].(map[string]interface{})
	assert.Len(t, ind, 2)
	assert.Equal(t, "Up", ind["OBV"].(map[string]interface{})["OBV_Trend"])
}

func TestCommand_ErrorPayload(t *testing.T) {
	out, err := run(t, staticSource{bars: risingBars(10)}, "volume", "aapl")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "AAPL", out["ticker"])
	assert.Contains(t, out["error"], "10 rows")
}

func TestStatusCommand(t *testing.T) {
	out, err := run(t, staticSource{err: errors.New("connection refused")}, "status")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "error", out["status"])

	out, err = run(t, staticSource{bars: risingBars(25)}, "status")
	require.NoError(t, err)
	assert.Equal(t, "ok", out["status"])
}

func TestListCommand(t *testing.T) {
	out, err := run(t, staticSource{}, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "basic_indicators")
	assert.Contains(t, out, "usage_examples")
}

func TestPriceCommand_RequiresTicker(t *testing.T) {
	_, err := run(t, staticSource{}, "price")
	assert.Error(t, err)
}
