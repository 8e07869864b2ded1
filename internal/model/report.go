package model

// TimestampLayout is used for every report timestamp.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// PriceSnapshot is the latest bar of a ticker plus the high/low of the fetched window.
type PriceSnapshot struct {
	Ticker       string  `json:"ticker"`
	CompanyName  string  `json:"company_name"`
	CurrentPrice float64 `json:"current_price"`
	OpenPrice    float64 `json:"open_price"`
	HighPrice    float64 `json:"high_price"`
	LowPrice     float64 `json:"low_price"`
	Volume       int64   `json:"volume"`
	Date         string  `json:"date"`
	RangeHigh    float64 `json:"range_high"`
	RangeLow     float64 `json:"range_low"`
	Status       string  `json:"status"`
}

type IndicatorReport struct {
	Ticker       string     `json:"ticker"`
	CompanyName  string     `json:"company_name"`
	Timestamp    string     `json:"timestamp"`
	CurrentPrice float64    `json:"current_price"`
	DataPoints   int        `json:"data_points"`
	Period       string     `json:"analysis_period"`
	Indicators   Indicators `json:"indicators"`
}

type MomentumReport struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	MomentumResult
	Period string `json:"analysis_period"`
}

type VolumeReport struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	VolumeResult
	Period string `json:"analysis_period"`
}

// ErrorPayload is the only failure shape handed to callers.
type ErrorPayload struct {
	Error  string `json:"error"`
	Ticker string `json:"ticker"`
}

// StatusReport is the result of probing the price history provider.
type StatusReport struct {
	Status    string  `json:"status"`
	Provider  string  `json:"data_source"`
	Probe     string  `json:"probe_ticker"`
	LastPrice float64 `json:"last_price,omitempty"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
}
