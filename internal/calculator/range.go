package calculator

import (
	"errors"
	"math"

	"StockPulse/internal/model"
)

// Range returns the highest high and lowest low across bars.
func Range(bars []model.OHLCV) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// PercentChange returns the change in percent from the close lookback bars ago
// to the latest close. ok is false when fewer than lookback+1 closes exist.
func PercentChange(closes []float64, lookback int) (change float64, ok bool) {
	n := len(closes)
	if n < lookback+1 || lookback <= 0 {
		return 0, false
	}
	base := closes[n-1-lookback]
	if base == 0 {
		return 0, false
	}
	return (closes[n-1]/base - 1) * 100, true
}
