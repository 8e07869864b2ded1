package analysis

import "StockPulse/internal/model"

// ListIndicators returns the static indicator catalog.
func (s *Service) ListIndicators() model.Catalog {
	return model.Catalog{
		BasicIndicators: map[string]string{
			model.IndicatorSMA:  "Simple Moving Average (20 and 50 day) with trend",
			model.IndicatorEMA:  "Exponential Moving Average (12 and 26 day)",
			model.IndicatorRSI:  "Relative Strength Index (14 day), overbought above 70, oversold below 30",
			model.IndicatorMACD: "MACD (12, 26, 9) line, signal line and histogram",
		},
		VolumeIndicators: map[string]string{
			model.IndicatorVWAP:        "Volume Weighted Average Price over the analysis period",
			model.IndicatorOBV:         "On-Balance Volume with 5 day trend",
			model.IndicatorVolumeRatio: "Current volume relative to its 20 day average",
			model.IndicatorVolumeMA:    "20 day volume moving average",
		},
		UsageExamples: map[string]string{
			"get_stock_price":          `{"ticker": "AAPL"}`,
			"get_technical_indicators": `{"ticker": "MSFT", "indicators": ["SMA", "RSI", "VWAP"], "period": "90d"}`,
			"get_momentum_analysis":    `{"ticker": "NVDA", "period": "180d"}`,
			"get_volume_analysis":      `{"ticker": "TSLA", "period": "365d"}`,
		},
		DataSource: s.providerName,
		Status:     "active",
	}
}
