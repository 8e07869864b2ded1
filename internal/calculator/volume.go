package calculator

import (
	"errors"

	"StockPulse/internal/model"
)

// VWAP returns cumulative sum(typical*volume)/sum(volume) over all bars.
// With zero total volume it falls back to the mean typical price.
func VWAP(bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	var pv, vol, tpSum float64
	for _, b := range bars {
		tp := b.TypicalPrice()
		pv += tp * b.Volume
		vol += b.Volume
		tpSum += tp
	}
	if vol == 0 {
		return tpSum / float64(len(bars)), nil
	}
	return pv / vol, nil
}

// OBVSeries returns on-balance volume for every bar, starting at volume[0].
func OBVSeries(bars []model.OHLCV) []float64 {
	if len(bars) == 0 {
		return nil
	}
	obv := make([]float64, len(bars))
	obv[0] = bars[0].Volume
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv[i] = obv[i-1] + bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv[i] = obv[i-1] - bars[i].Volume
		default:
			obv[i] = obv[i-1]
		}
	}
	return obv
}

// OBVTrend compares the latest OBV with the value five bars earlier.
// ok is false with fewer than six bars.
func OBVTrend(obv []float64) (trend string, ok bool) {
	n := len(obv)
	if n < 6 {
		return "", false
	}
	if obv[n-1] > obv[n-6] {
		return TrendUp, true
	}
	return TrendDown, true
}

// VolumeRatio returns the 20-bar volume average and current/average.
func VolumeRatio(bars []model.OHLCV) (ma20, ratio float64, err error) {
	volumes := extractVolumes(bars)
	ma20, err = SMA(volumes, 20)
	if err != nil {
		return 0, 0, err
	}
	if ma20 == 0 {
		return 0, 0, nil
	}
	return ma20, volumes[len(volumes)-1] / ma20, nil
}
