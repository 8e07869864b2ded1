package mcptools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPulse/internal/analysis"
	"StockPulse/internal/model"
)

type staticSource struct {
	bars []model.OHLCV
}

func (s staticSource) Series(context.Context, string, int) ([]model.OHLCV, error) {
	return s.bars, nil
}

func (s staticSource) CompanyName(context.Context, string) (string, error) {
	return "Static Corp", nil
}

func flatBars(n int) []model.OHLCV {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.OHLCV, n)
	for i := range out {
		out[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000}
	}
	return out
}

func newEngine(n int) analysis.Engine {
	return analysis.NewService(staticSource{bars: flatBars(n)}, "mock")
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]interface{}) (map[string]interface{}, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out, res.IsError
}

func TestTechnicalIndicators(t *testing.T) {
	out, isErr := call(t, handleTechnicalIndicators(newEngine(20)), map[string]interface{}{
		"ticker": "aapl", "indicators": "rsi, macd ,foo", "time_period": "90d",
	})
	assert.False(t, isErr)
	assert.Equal(t, "AAPL", out["ticker"])
	assert.Equal(t, "90d", out["analysis_period"])
	ind := out["indicators"].(map[string]interface{})
	assert.Contains(t, ind, "RSI")
	assert.Contains(t, ind, "MACD")
	assert.NotContains(t, ind, "SMA")
}

func TestMomentum_InsufficientData(t *testing.T) {
	out, isErr := call(t, handleMomentum(newEngine(10)), map[string]interface{}{"ticker": "AAPL"})
	assert.True(t, isErr)
	assert.Equal(t, "AAPL", out["ticker"])
	assert.Contains(t, out["error"], "insufficient price data")
	assert.Len(t, out, 2, "error payload only")
}

func TestMissingTicker(t *testing.T) {
	for name, h := range map[string]server.ToolHandlerFunc{
		"price":    handleStockPrice(newEngine(20)),
		"momentum": handleMomentum(newEngine(20)),
		"volume":   handleVolume(newEngine(20)),
	} {
		t.Run(name, func(t *testing.T) {
			out, isErr := call(t, h, map[string]interface{}{})
			assert.True(t, isErr)
			assert.Equal(t, "ticker is required", out["error"])
		})
	}
}

func TestPriceVolumeAndCatalog(t *testing.T) {
	out, _ := call(t, handleStockPrice(newEngine(25)), map[string]interface{}{"ticker": "nflx"})
	assert.Equal(t, "Static Corp", out["company_name"])
	assert.Equal(t, 100.0, out["current_price"])

	out, _ = call(t, handleVolume(newEngine(25)), map[string]interface{}{"ticker": "SPY", "time_period": "1y"})
	assert.Equal(t, "1y", out["analysis_period"])
	assert.Contains(t, out, "volume_indicators")

	out, _ = call(t, handleListIndicators(newEngine(25)), nil)
	assert.Equal(t, "mock", out["data_source"])

	out, _ = call(t, handleCheckStatus(newEngine(25)), nil)
	assert.Equal(t, "ok", out["status"])
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("stockpulse", "test", newEngine(20)))
}
