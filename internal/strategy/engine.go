package strategy

import (
	"StockPulse/internal/calculator"
	"StockPulse/internal/model"
)

const (
	baseScore      = 50
	recentLookback = 20
)

// Ratings maps the lower edge of each band to its rating, highest first.
var Ratings = []struct {
	MinScore int
	Rating   model.Rating
}{
	{80, model.RatingStrongBullish},
	{60, model.RatingBullish},
	{40, model.RatingNeutral},
	{20, model.RatingBearish},
}

// Recommendations uses its own cut points; they intentionally differ from Ratings.
var Recommendations = []struct {
	MinScore int
	Text     string
}{
	{70, "Technical indicators show strong upward momentum; consider buying or holding"},
	{55, "Technical indicators show healthy upward momentum; consider holding"},
	{45, "Technical indicators show neutral momentum; wait and see"},
	{30, "Technical indicators show downward momentum; consider reducing exposure"},
}

const defaultRecommendation = "Technical indicators show strong downward momentum; consider avoiding"

func mapRating(score int) model.Rating {
	for _, r := range Ratings {
		if score >= r.MinScore {
			return r.Rating
		}
	}
	return model.RatingStrongBearish
}

func recommend(score int, rsi float64) string {
	text := defaultRecommendation
	for _, r := range Recommendations {
		if score >= r.MinScore {
			text = r.Text
			break
		}
	}
	switch {
	case rsi > 70:
		text += ", but RSI is nearing overbought, short-term pullback possible"
	case rsi < 30:
		text += ", but RSI is nearing oversold, short-term rebound possible"
	}
	return text
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Score computes the momentum score of bars. The additive terms are summed onto
// the base of 50 and clamped to [0,100] once at the end.
func Score(ticker string, bars []model.OHLCV) (*model.MomentumResult, error) {
	snap, err := calculator.NewSnapshot(ticker, bars)
	if err != nil {
		return nil, err
	}
	return scoreSnapshot(snap), nil
}

func scoreSnapshot(snap *calculator.Snapshot) *model.MomentumResult {
	factors := []model.FactorScore{
		scoreTrend(snap),
		scoreRSI(snap),
		scoreMACD(snap),
		scoreRecentPerformance(snap),
	}

	total := baseScore
	for _, f := range factors {
		total += f.Points
	}
	score := clamp(total, 0, 100)

	return &model.MomentumResult{
		Score:        score,
		Rating:       mapRating(score),
		CurrentPrice: calculator.Round2(snap.Price),
		Summary: model.TechnicalSummary{
			RSI14:  calculator.Round2(snap.RSI14),
			SMA20:  calculator.Round2(snap.SMA20),
			SMA50:  calculator.Round2(snap.SMA50),
			MACD:   calculator.Round4(snap.MACDLine),
			Signal: calculator.Round4(snap.MACDSignal),
		},
		Recommendation: recommend(score, snap.RSI14),
		Factors:        factors,
	}
}
