package strategy

import (
	"StockPulse/internal/calculator"
	"StockPulse/internal/model"
)

const vwapDeviationThreshold = 3.0

// AnalyzeVolume combines volume MA, VWAP and OBV into a trend narrative.
func AnalyzeVolume(ticker string, bars []model.OHLCV) (*model.VolumeResult, error) {
	snap, err := calculator.NewSnapshot(ticker, bars)
	if err != nil {
		return nil, err
	}

	volumeTrend := calculator.VolumeTrend(snap.VolumeRatio)
	deviation := snap.VWAPDeviation()

	vwapAnalysis := "Price below VWAP"
	if snap.Price > snap.VWAP {
		vwapAnalysis = "Price above VWAP"
	}

	return &model.VolumeResult{
		CurrentPrice: calculator.Round2(snap.Price),
		Indicators: model.VolumeIndicators{
			CurrentVolume: int64(snap.CurrentVolume),
			VolumeMA20:    int64(snap.VolumeMA20),
			VolumeRatio:   calculator.Round2(snap.VolumeRatio),
			VWAP:          calculator.Round2(snap.VWAP),
			PriceVsVWAP:   calculator.Percent(deviation),
			OBVTrend:      snap.OBVTrend,
		},
		VolumeTrend:  volumeTrend,
		VWAPAnalysis: vwapAnalysis,
		Analysis:     volumeNarrative(snap.OBVTrend, volumeTrend, deviation),
	}, nil
}

func volumeNarrative(obvTrend, volumeTrend string, deviation float64) string {
	var text string
	switch {
	case obvTrend == calculator.TrendUp && volumeTrend == calculator.VolumeIncreasing:
		text = "Volume indicators are bullish, buying pressure rising"
	case obvTrend == calculator.TrendDown && volumeTrend == calculator.VolumeIncreasing:
		text = "Volume rising while OBV falls, bearish divergence, selling pressure rising"
	case volumeTrend == calculator.VolumeDecreasing:
		text = "Volume is decreasing, trend may be weakening"
	}

	var clause string
	switch {
	case deviation > vwapDeviationThreshold:
		clause = "price well above VWAP, pullback possible"
	case deviation < -vwapDeviationThreshold:
		clause = "price well below VWAP, possible buying opportunity"
	}

	switch {
	case clause == "":
		return text
	case text == "":
		return clause
	default:
		return text + ", " + clause
	}
}
