package calculator

import (
	"errors"

	"StockPulse/internal/model"
)

var errNotEnoughData = errors.New("not enough data")

// SMA computes the simple moving average of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errNotEnoughData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// TrailingSMA is SMA over min(period, len(values)) values.
func TrailingSMA(values []float64, period int) (float64, error) {
	if len(values) < period {
		period = len(values)
	}
	return SMA(values, period)
}

// EMASeries returns the recursive exponential moving average for every bar,
// seeded with the first value and smoothed with alpha = 2/(span+1).
func EMASeries(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(values))
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		// Incremental form keeps a flat input exactly flat.
		ema += alpha * (values[i] - ema)
		out[i] = ema
	}
	return out
}

// EMA returns the last value of EMASeries.
func EMA(values []float64, span int) (float64, error) {
	series := EMASeries(values, span)
	if len(series) == 0 {
		return 0, errNotEnoughData
	}
	return series[len(series)-1], nil
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func extractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
