package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"/price aapl", Intent{Kind: KindPrice, Ticker: "AAPL"}},
		{"/momentum@StockPulseBot NVDA 6m", Intent{Kind: KindMomentum, Ticker: "NVDA", Period: "6m"}},
		{"/indicators msft SMA,rsi 90D", Intent{Kind: KindIndicators, Ticker: "MSFT", Indicators: []string{"SMA", "rsi"}, Period: "90d"}},
		{"/volume $TSLA", Intent{Kind: KindVolume, Ticker: "TSLA"}},
		{"/list", Intent{Kind: KindList}},
		{"/status", Intent{Kind: KindStatus}},
		{"/digest", Intent{Kind: KindDigest}},
		{"/start", Intent{Kind: KindHelp}},
		{"/unknown AAPL", Intent{Kind: KindHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_CommandWithoutTicker(t *testing.T) {
	_, err := Parse("/price")
	assert.ErrorIs(t, err, ErrNoTicker)
}

func TestParse_FreeText(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"what is the price of apple", Intent{Kind: KindPrice, Ticker: "AAPL"}},
		{"Show technical indicators for MSFT over 3 months", Intent{Kind: KindIndicators, Ticker: "MSFT", Period: "90d"}},
		{"RSI and MACD for NVDA", Intent{Kind: KindIndicators, Ticker: "NVDA", Indicators: []string{"RSI", "MACD"}}},
		{"moving average of tesla", Intent{Kind: KindIndicators, Ticker: "TSLA", Indicators: []string{"SMA", "EMA"}}},
		{"momentum of TSLA 1 year", Intent{Kind: KindMomentum, Ticker: "TSLA", Period: "365d"}},
		{"volume analysis for $SPY 60d", Intent{Kind: KindVolume, Ticker: "SPY", Period: "60d"}},
		{"how is QQQ doing?", Intent{Kind: KindMomentum, Ticker: "QQQ"}},
		{"AMZN's outlook over six months", Intent{Kind: KindMomentum, Ticker: "AMZN", Period: "180d"}},
		{"is it advisable to buy TSLA now, momentum?", Intent{Kind: KindMomentum, Ticker: "TSLA"}},
		{"NVDA momentum vs metals", Intent{Kind: KindMomentum, Ticker: "NVDA"}},
		{"apple or MSFT", Intent{Kind: KindMomentum, Ticker: "MSFT"}},
		{"list available indicators", Intent{Kind: KindList}},
		{"help", Intent{Kind: KindHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_FreeTextWithoutTicker(t *testing.T) {
	in, err := Parse("how is the market doing")
	assert.ErrorIs(t, err, ErrNoTicker)
	assert.Equal(t, KindMomentum, in.Kind)
}
