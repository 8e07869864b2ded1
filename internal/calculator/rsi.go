package calculator

import "errors"

// RSI computes the relative strength index from the simple means of gains and
// losses over the last period close-to-close changes. Requires period+1 closes.
// A zero loss mean yields exactly 100, including a completely flat window.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return 0, errNotEnoughData
	}

	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	gain /= float64(period)
	loss /= float64(period)

	if loss == 0 {
		return 100.0, nil
	}
	rs := gain / loss
	return 100.0 - 100.0/(1.0+rs), nil
}
