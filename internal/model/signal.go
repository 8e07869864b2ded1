package model

// Rating is one of five ordered momentum bands.
type Rating string

const (
	RatingStrongBullish Rating = "Strong Bullish"
	RatingBullish       Rating = "Bullish"
	RatingNeutral       Rating = "Neutral"
	RatingBearish       Rating = "Bearish"
	RatingStrongBearish Rating = "Strong Bearish"
)

// FactorScore is one additive term of the momentum score.
type FactorScore struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Commentary string `json:"commentary"`
}

// TechnicalSummary is the indicator snapshot the momentum score was derived from.
type TechnicalSummary struct {
	RSI14  float64 `json:"RSI_14"`
	SMA20  float64 `json:"SMA_20"`
	SMA50  float64 `json:"SMA_50"`
	MACD   float64 `json:"MACD"`
	Signal float64 `json:"Signal"`
}

// MomentumResult is the scorer output, before any metadata is attached.
type MomentumResult struct {
	Score          int              `json:"momentum_score"`
	Rating         Rating           `json:"rating"`
	CurrentPrice   float64          `json:"current_price"`
	Summary        TechnicalSummary `json:"technical_summary"`
	Recommendation string           `json:"recommendation"`
	Factors        []FactorScore    `json:"factors"`
}

// VolumeIndicators is the numeric part of a volume analysis.
type VolumeIndicators struct {
	CurrentVolume int64   `json:"Current_Volume"`
	VolumeMA20    int64   `json:"Volume_MA20"`
	VolumeRatio   float64 `json:"Volume_Ratio"`
	VWAP          float64 `json:"VWAP"`
	PriceVsVWAP   string  `json:"Price_vs_VWAP"`
	OBVTrend      string  `json:"OBV_Trend,omitempty"`
}

// VolumeResult is the volume analyzer output.
type VolumeResult struct {
	CurrentPrice float64          `json:"current_price"`
	Indicators   VolumeIndicators `json:"volume_indicators"`
	VolumeTrend  string           `json:"volume_trend"`
	VWAPAnalysis string           `json:"vwap_analysis"`
	Analysis     string           `json:"analysis"`
}
