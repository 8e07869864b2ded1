package strategy

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPulse/internal/model"
)

func barsFromCloses(closes []float64, volume float64) []model.OHLCV {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c + 0.5, Low: c - 0.5, Close: c, Volume: volume}
	}
	return bars
}

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestScore_FlatSeries(t *testing.T) {
	res, err := Score("FLAT", barsFromCloses(linear(20, 100, 0), 1000))
	require.NoError(t, err)

	assert.Equal(t, 50, res.Score)
	assert.Equal(t, model.RatingNeutral, res.Rating)
	assert.Equal(t, 100.0, res.Summary.SMA20)
	assert.Equal(t, 100.0, res.Summary.SMA50)
	assert.Equal(t, 100.0, res.Summary.RSI14)
	assert.True(t, strings.HasPrefix(res.Recommendation, "Technical indicators show neutral momentum"))
	assert.Contains(t, res.Recommendation, "nearing overbought")

	byName := map[string]int{}
	for _, f := range res.Factors {
		byName[f.Name] = f.Points
	}
	assert.Equal(t, 0, byName["Trend"])
	assert.Equal(t, 10, byName["RSI"])
	assert.Equal(t, -10, byName["MACD"])
	assert.Equal(t, 0, byName["Recent performance"])
}

func TestScore_RisingSeries(t *testing.T) {
	res, err := Score("UP", barsFromCloses(linear(30, 100, 1), 1000))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Score, 65)
	assert.Contains(t, []model.Rating{model.RatingBullish, model.RatingStrongBullish}, res.Rating)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, model.RatingStrongBullish, res.Rating)
}

func TestScore_FallingSeries(t *testing.T) {
	res, err := Score("DOWN", barsFromCloses(linear(60, 200, -2), 1000))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, model.RatingStrongBearish, res.Rating)
	assert.Contains(t, res.Recommendation, "nearing oversold")
}

func TestScore_ClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 300; run++ {
		n := 50 + rng.Intn(100)
		closes := make([]float64, n)
		closes[0] = 10 + rng.Float64()*500
		drift := (rng.Float64() - 0.5) * 0.2
		for i := 1; i < n; i++ {
			closes[i] = closes[i-1] * (1 + drift + (rng.Float64()-0.5)*0.05)
		}
		res, err := Score("RND", barsFromCloses(closes, 1000))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
	}
}

func TestScore_RecentTermNeedsTwentyOneBars(t *testing.T) {
	// 20 bars rising 2%/bar: no recent-performance term despite the move
	closes := make([]float64, 20)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 1.02
	}
	res, err := Score("SHORT", barsFromCloses(closes, 1000))
	require.NoError(t, err)
	for _, f := range res.Factors {
		if f.Name == "Recent performance" {
			assert.Equal(t, 0, f.Points)
			assert.Equal(t, "not enough history", f.Commentary)
		}
	}
}

func TestScore_PropagatesDataInsufficient(t *testing.T) {
	_, err := Score("TINY", barsFromCloses(linear(10, 100, 1), 1000))
	var derr *model.DataInsufficientError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 10, derr.Rows)
}

func TestMapRating_AllBoundaries(t *testing.T) {
	tests := []struct {
		score  int
		rating model.Rating
	}{
		{100, model.RatingStrongBullish},
		{80, model.RatingStrongBullish},
		{79, model.RatingBullish},
		{60, model.RatingBullish},
		{59, model.RatingNeutral},
		{40, model.RatingNeutral},
		{39, model.RatingBearish},
		{20, model.RatingBearish},
		{19, model.RatingStrongBearish},
		{0, model.RatingStrongBearish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rating, mapRating(tt.score), "score %d", tt.score)
	}
}

func TestRecommend_ThresholdsIndependentOfRating(t *testing.T) {
	tests := []struct {
		score  int
		prefix string
	}{
		{70, "Technical indicators show strong upward momentum"},
		{69, "Technical indicators show healthy upward momentum"},
		{55, "Technical indicators show healthy upward momentum"},
		{54, "Technical indicators show neutral momentum"},
		{45, "Technical indicators show neutral momentum"},
		{44, "Technical indicators show downward momentum"},
		{30, "Technical indicators show downward momentum"},
		{29, "Technical indicators show strong downward momentum"},
	}
	for _, tt := range tests {
		assert.True(t, strings.HasPrefix(recommend(tt.score, 50), tt.prefix), "score %d", tt.score)
	}

	// 42 sits in the Neutral rating band but below the neutral recommendation cut.
	assert.Equal(t, model.RatingNeutral, mapRating(42))
	assert.True(t, strings.HasPrefix(recommend(42, 50), "Technical indicators show downward momentum"))
}

func TestRecommend_RSIClauses(t *testing.T) {
	assert.True(t, strings.HasSuffix(recommend(50, 71), "short-term pullback possible"))
	assert.True(t, strings.HasSuffix(recommend(50, 29), "short-term rebound possible"))
	assert.Equal(t, recommend(50, 50), "Technical indicators show neutral momentum; wait and see")
	assert.Equal(t, recommend(50, 70), "Technical indicators show neutral momentum; wait and see")
}
