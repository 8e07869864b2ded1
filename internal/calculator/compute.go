package calculator

import (
	"strings"

	"StockPulse/internal/model"
)

var catalogNames = map[string]string{
	"SMA":          model.IndicatorSMA,
	"EMA":          model.IndicatorEMA,
	"RSI":          model.IndicatorRSI,
	"MACD":         model.IndicatorMACD,
	"VWAP":         model.IndicatorVWAP,
	"OBV":          model.IndicatorOBV,
	"VOLUME_RATIO": model.IndicatorVolumeRatio,
	"VOLUME_MA":    model.IndicatorVolumeMA,
}

// CanonicalName maps a requested indicator name to its catalog spelling.
func CanonicalName(name string) (string, bool) {
	canonical, ok := catalogNames[strings.ToUpper(strings.TrimSpace(name))]
	return canonical, ok
}

// SplitKnown separates requested names into known catalog names (deduplicated,
// request order kept) and unknown ones.
func SplitKnown(names []string) (known, unknown []string) {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		c, ok := CanonicalName(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		if !seen[c] {
			seen[c] = true
			known = append(known, c)
		}
	}
	return known, unknown
}

// Compute builds the requested indicator records for bars. Unknown names are
// ignored; if nothing known remains it fails with *model.NoIndicatorsRequestedError.
func Compute(ticker string, bars []model.OHLCV, names []string) (model.Indicators, error) {
	known, _ := SplitKnown(names)
	if len(known) == 0 {
		return model.Indicators{}, &model.NoIndicatorsRequestedError{Ticker: ticker, Requested: names}
	}

	snap, err := NewSnapshot(ticker, bars)
	if err != nil {
		return model.Indicators{}, err
	}

	var out model.Indicators
	for _, name := range known {
		switch name {
		case model.IndicatorSMA:
			out.SMA = &model.SMAIndicator{
				SMA20:        Round2(snap.SMA20),
				SMA50:        Round2(snap.SMA50),
				PriceVsSMA20: Percent(snap.priceVsSMA20()),
				Trend:        snap.Trend(),
			}
		case model.IndicatorEMA:
			out.EMA = &model.EMAIndicator{
				EMA12:  Round2(snap.EMA12),
				EMA26:  Round2(snap.EMA26),
				Signal: EMASignal(snap.Price, snap.EMA12, snap.EMA26),
			}
		case model.IndicatorRSI:
			out.RSI = &model.RSIIndicator{
				RSI14:  Round2(snap.RSI14),
				Signal: RSISignal(snap.RSI14),
			}
		case model.IndicatorMACD:
			out.MACD = &model.MACDIndicator{
				Line:      Round4(snap.MACDLine),
				Signal:    Round4(snap.MACDSignal),
				Histogram: Round4(snap.MACDHistogram),
				Action:    MACDSignal(snap.MACDLine, snap.MACDSignal),
			}
		case model.IndicatorVWAP:
			signal := SignalBelow
			if snap.Price > snap.VWAP {
				signal = SignalAbove
			}
			out.VWAP = &model.VWAPIndicator{
				VWAP:        Round2(snap.VWAP),
				PriceVsVWAP: Percent(snap.VWAPDeviation()),
				Signal:      signal,
			}
		case model.IndicatorOBV:
			out.OBV = &model.OBVIndicator{OBV: snap.OBV, Trend: snap.OBVTrend}
		case model.IndicatorVolumeRatio:
			out.VolumeRatio = &model.VolumeRatioIndicator{
				CurrentVolume: int64(snap.CurrentVolume),
				VolumeMA20:    int64(snap.VolumeMA20),
				Ratio:         Round2(snap.VolumeRatio),
				Signal:        VolumeTrend(snap.VolumeRatio),
			}
		case model.IndicatorVolumeMA:
			signal := VolumeBelowAverage
			if snap.CurrentVolume > snap.VolumeMA20 {
				signal = VolumeAboveAverage
			}
			out.VolumeMA = &model.VolumeMAIndicator{
				VolumeMA20: int64(snap.VolumeMA20),
				Signal:     signal,
			}
		}
	}
	return out, nil
}
