package calculator

// MACDSeries holds the per-bar MACD line, its signal line and the histogram.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes EMA(fast)-EMA(slow), its EMA(signal) and the difference of the two.
func MACD(closes []float64, fast, slow, signal int) MACDSeries {
	emaFast := EMASeries(closes, fast)
	emaSlow := EMASeries(closes, slow)

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i]
	}
	sig := EMASeries(line, signal)

	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - sig[i]
	}
	return MACDSeries{Line: line, Signal: sig, Histogram: hist}
}

// Last returns the most recent line, signal and histogram values.
func (m MACDSeries) Last() (line, signal, histogram float64) {
	n := len(m.Line)
	if n == 0 {
		return 0, 0, 0
	}
	return m.Line[n-1], m.Signal[n-1], m.Histogram[n-1]
}
