package calculator

import (
	"StockPulse/internal/model"
)

// Snapshot holds every indicator of a series at its last bar, in full precision.
type Snapshot struct {
	Price         float64
	SMA20         float64
	SMA50         float64
	EMA12         float64
	EMA26         float64
	RSI14         float64
	MACDLine      float64
	MACDSignal    float64
	MACDHistogram float64
	VWAP          float64
	OBV           float64
	OBVTrend      string // empty with fewer than six bars
	CurrentVolume float64
	VolumeMA20    float64
	VolumeRatio   float64
	Closes        []float64
}

// NewSnapshot computes all indicators for bars. It fails with
// *model.DataInsufficientError when fewer than model.MinBars bars are given.
func NewSnapshot(ticker string, bars []model.OHLCV) (*Snapshot, error) {
	if len(bars) < model.MinBars {
		return nil, &model.DataInsufficientError{Ticker: ticker, Rows: len(bars)}
	}

	closes := extractCloses(bars)
	s := &Snapshot{
		Price:         closes[len(closes)-1],
		CurrentVolume: bars[len(bars)-1].Volume,
		Closes:        closes,
	}

	var err error
	if s.SMA20, err = SMA(closes, 20); err != nil {
		return nil, err
	}
	if s.SMA50, err = TrailingSMA(closes, 50); err != nil {
		return nil, err
	}
	if s.RSI14, err = RSI(closes, 14); err != nil {
		return nil, err
	}
	if s.EMA12, err = EMA(closes, 12); err != nil {
		return nil, err
	}
	if s.EMA26, err = EMA(closes, 26); err != nil {
		return nil, err
	}
	s.MACDLine, s.MACDSignal, s.MACDHistogram = MACD(closes, 12, 26, 9).Last()

	if s.VWAP, err = VWAP(bars); err != nil {
		return nil, err
	}
	obv := OBVSeries(bars)
	s.OBV = obv[len(obv)-1]
	s.OBVTrend, _ = OBVTrend(obv)

	if s.VolumeMA20, s.VolumeRatio, err = VolumeRatio(bars); err != nil {
		return nil, err
	}
	return s, nil
}

// Trend is the SMA trend label at the last bar.
func (s *Snapshot) Trend() string {
	return TrendLabel(s.Price, s.SMA20, s.SMA50)
}

// VWAPDeviation is (price-VWAP)/VWAP in percent, zero when VWAP is zero.
func (s *Snapshot) VWAPDeviation() float64 {
	if s.VWAP == 0 {
		return 0
	}
	return (s.Price - s.VWAP) / s.VWAP * 100
}

func (s *Snapshot) priceVsSMA20() float64 {
	if s.SMA20 == 0 {
		return 0
	}
	return (s.Price/s.SMA20 - 1) * 100
}
