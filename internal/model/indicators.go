package model

// Indicator names as they appear in requests and in the catalog.
const (
	IndicatorSMA         = "SMA"
	IndicatorEMA         = "EMA"
	IndicatorRSI         = "RSI"
	IndicatorMACD        = "MACD"
	IndicatorVWAP        = "VWAP"
	IndicatorOBV         = "OBV"
	IndicatorVolumeRatio = "Volume_Ratio"
	IndicatorVolumeMA    = "Volume_MA"
)

// DefaultIndicators is used when a caller names none.
var DefaultIndicators = []string{IndicatorSMA, IndicatorEMA, IndicatorRSI, IndicatorMACD}

// SMAIndicator carries the moving averages and the trend label derived from them.
type SMAIndicator struct {
	SMA20        float64 `json:"SMA_20"`
	SMA50        float64 `json:"SMA_50"`
	PriceVsSMA20 string  `json:"Price_vs_SMA20"`
	Trend        string  `json:"Trend"`
}

type EMAIndicator struct {
	EMA12  float64 `json:"EMA_12"`
	EMA26  float64 `json:"EMA_26"`
	Signal string  `json:"Signal"`
}

type RSIIndicator struct {
	RSI14  float64 `json:"RSI_14"`
	Signal string  `json:"Signal"`
}

type MACDIndicator struct {
	Line      float64 `json:"MACD_line"`
	Signal    float64 `json:"Signal_line"`
	Histogram float64 `json:"Histogram"`
	Action    string  `json:"Signal"`
}

type VWAPIndicator struct {
	VWAP        float64 `json:"VWAP"`
	PriceVsVWAP string  `json:"Price_vs_VWAP"`
	Signal      string  `json:"Signal"`
}

// OBVIndicator omits Trend when fewer than six bars were available.
type OBVIndicator struct {
	OBV   float64 `json:"OBV"`
	Trend string  `json:"OBV_Trend,omitempty"`
}

type VolumeRatioIndicator struct {
	CurrentVolume int64   `json:"Current_Volume"`
	VolumeMA20    int64   `json:"Volume_MA20"`
	Ratio         float64 `json:"Volume_Ratio"`
	Signal        string  `json:"Signal"`
}

type VolumeMAIndicator struct {
	VolumeMA20 int64  `json:"Volume_MA20"`
	Signal     string `json:"Signal"`
}

// Indicators maps indicator name to its record. Nil entries were not requested.
type Indicators struct {
	SMA         *SMAIndicator         `json:"SMA,omitempty"`
	EMA         *EMAIndicator         `json:"EMA,omitempty"`
	RSI         *RSIIndicator         `json:"RSI,omitempty"`
	MACD        *MACDIndicator        `json:"MACD,omitempty"`
	VWAP        *VWAPIndicator        `json:"VWAP,omitempty"`
	OBV         *OBVIndicator         `json:"OBV,omitempty"`
	VolumeRatio *VolumeRatioIndicator `json:"Volume_Ratio,omitempty"`
	VolumeMA    *VolumeMAIndicator    `json:"Volume_MA,omitempty"`
}

// Catalog is the static description of everything the engine can compute.
type Catalog struct {
	BasicIndicators  map[string]string `json:"basic_indicators"`
	VolumeIndicators map[string]string `json:"volume_indicators"`
	UsageExamples    map[string]string `json:"usage_examples"`
	DataSource       string            `json:"data_source"`
	Status           string            `json:"status"`
}
