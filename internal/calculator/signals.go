package calculator

// Categorical labels attached to indicator records.
const (
	TrendUp            = "Up"
	TrendDown          = "Down"
	TrendConsolidating = "Consolidating"

	SignalOverbought = "Overbought"
	SignalOversold   = "Oversold"
	SignalNeutral    = "Neutral"

	SignalBuy  = "Buy"
	SignalSell = "Sell"

	SignalBullish = "Bullish"
	SignalBearish = "Bearish"

	SignalAbove = "Above"
	SignalBelow = "Below"

	VolumeIncreasing = "Increasing"
	VolumeDecreasing = "Decreasing"
	VolumeStable     = "Stable"

	VolumeAboveAverage = "Above Average"
	VolumeBelowAverage = "Below Average"
)

// TrendLabel classifies price against SMA20 and SMA50. Ties fall into Consolidating.
func TrendLabel(price, sma20, sma50 float64) string {
	switch {
	case price > sma20 && sma20 > sma50:
		return TrendUp
	case price < sma20 && sma20 < sma50:
		return TrendDown
	default:
		return TrendConsolidating
	}
}

func RSISignal(rsi float64) string {
	switch {
	case rsi > 70:
		return SignalOverbought
	case rsi < 30:
		return SignalOversold
	default:
		return SignalNeutral
	}
}

// MACDSignal is Buy only when the line is strictly above the signal line.
func MACDSignal(line, signal float64) string {
	if line > signal {
		return SignalBuy
	}
	return SignalSell
}

func EMASignal(price, ema12, ema26 float64) string {
	switch {
	case price > ema12 && ema12 > ema26:
		return SignalBullish
	case price < ema12 && ema12 < ema26:
		return SignalBearish
	default:
		return SignalNeutral
	}
}

func VolumeTrend(ratio float64) string {
	switch {
	case ratio > 1.1:
		return VolumeIncreasing
	case ratio < 0.9:
		return VolumeDecreasing
	default:
		return VolumeStable
	}
}
