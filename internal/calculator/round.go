package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a price-scale value for output.
func Round2(v float64) float64 {
	return round(v, 2)
}

// Round4 rounds a MACD-scale value for output.
func Round4(v float64) float64 {
	return round(v, 4)
}

func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Percent formats a percentage with two decimals, e.g. "3.25%".
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%s%%", decimal.NewFromFloat(v).StringFixed(2))
}
