package strategy

import (
	"fmt"

	"StockPulse/internal/calculator"
	"StockPulse/internal/model"
)

// scoreTrend: price above SMA20 above SMA50 is +15, the inverse -15.
func scoreTrend(s *calculator.Snapshot) model.FactorScore {
	trend := s.Trend()
	points := 0
	switch trend {
	case calculator.TrendUp:
		points = 15
	case calculator.TrendDown:
		points = -15
	}
	return model.FactorScore{
		Name:       "Trend",
		Points:     points,
		Commentary: fmt.Sprintf("%s (price %.2f, SMA20 %.2f, SMA50 %.2f)", trend, s.Price, s.SMA20, s.SMA50),
	}
}

// scoreRSI: overbought counts as momentum (+10), oversold as its absence (-10).
func scoreRSI(s *calculator.Snapshot) model.FactorScore {
	points := 0
	switch {
	case s.RSI14 > 70:
		points = 10
	case s.RSI14 < 30:
		points = -10
	}
	return model.FactorScore{
		Name:       "RSI",
		Points:     points,
		Commentary: fmt.Sprintf("RSI=%.0f %s", s.RSI14, calculator.RSISignal(s.RSI14)),
	}
}

// scoreMACD has no neutral band: a tie scores like a bearish cross.
func scoreMACD(s *calculator.Snapshot) model.FactorScore {
	signal := calculator.MACDSignal(s.MACDLine, s.MACDSignal)
	points := -10
	if signal == calculator.SignalBuy {
		points = 10
	}
	return model.FactorScore{
		Name:       "MACD",
		Points:     points,
		Commentary: fmt.Sprintf("%s (line %.4f, signal %.4f)", signal, s.MACDLine, s.MACDSignal),
	}
}

// scoreRecentPerformance compares the latest close with the close 20 bars earlier.
func scoreRecentPerformance(s *calculator.Snapshot) model.FactorScore {
	change, ok := calculator.PercentChange(s.Closes, recentLookback)
	if !ok {
		return model.FactorScore{Name: "Recent performance", Commentary: "not enough history"}
	}
	points := 0
	switch {
	case change > 10:
		points = 15
	case change < -10:
		points = -15
	}
	return model.FactorScore{
		Name:       "Recent performance",
		Points:     points,
		Commentary: fmt.Sprintf("%+.1f%% over %d bars", change, recentLookback),
	}
}
