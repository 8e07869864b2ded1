package model

import "time"

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// TypicalPrice is (high+low+close)/3.
func (b OHLCV) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

// MinBars is the global floor every analysis requires.
const MinBars = 20
