package calculator

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA_Correctness_Period3(t *testing.T) {
	// (104+103+105)/3 = 104
	v, err := SMA([]float64{100, 102, 104, 103, 105}, 3)
	require.NoError(t, err)
	assertClose(t, "SMA(3)", v, 104.0, 1e-9)
}

func TestSMA_NotEnoughData(t *testing.T) {
	_, err := SMA([]float64{1, 2}, 3)
	assert.Error(t, err)

	_, err = SMA([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
}

func TestTrailingSMA_UsesAvailableValues(t *testing.T) {
	v, err := TrailingSMA(rising(30, 100, 1), 50)
	require.NoError(t, err)
	assertClose(t, "SMA50 over 30 bars", v, 114.5, 1e-9)
}

func TestSMA_MatchesTalib(t *testing.T) {
	closes := []float64{
		101.2, 102.5, 100.8, 99.4, 103.1, 104.7, 104.2, 105.9, 107.3, 106.1,
		108.4, 109.0, 107.7, 110.2, 111.5, 110.9, 112.3, 113.8, 112.1, 114.6,
		115.2, 113.9, 116.4, 117.0, 118.3,
	}
	want := talib.Sma(closes, 20)
	got, err := SMA(closes, 20)
	require.NoError(t, err)
	assertClose(t, "SMA(20) vs talib", got, want[len(want)-1], 1e-9)
}

func TestEMASeries_Recursive(t *testing.T) {
	// span 3 -> alpha 0.5
	series := EMASeries([]float64{10, 20, 20}, 3)
	require.Len(t, series, 3)
	assert.Equal(t, 10.0, series[0])
	assert.Equal(t, 15.0, series[1])
	assert.Equal(t, 17.5, series[2])
}

func TestEMASeries_FlatIsExact(t *testing.T) {
	for _, v := range EMASeries(flat(40, 100), 12) {
		assert.Equal(t, 100.0, v)
	}
}

func TestEMA_Empty(t *testing.T) {
	_, err := EMA(nil, 12)
	assert.Error(t, err)
}
