package strategy

import (
	"StockScout/internal/model"
)

// Weights controls the contribution of each indicator to the composite
// score. All weights must be non-negative; the defaults reproduce the
// magnitudes the original screening formula used.
type Weights struct {
	Momentum float64 `yaml:"momentum"`
	RSI      float64 `yaml:"rsi"`
	Trend    float64 `yaml:"trend"`
	Change   float64 `yaml:"change"`
}

// DefaultWeights returns the documented default weighting.
func DefaultWeights() Weights {
	return Weights{
		Momentum: 10.0,
		RSI:      0.8,
		Trend:    1.0,
		Change:   5.0,
	}
}

// rsiBias maps RSI linearly onto [-1, +1]: oversold (RSI 0) scores +1,
// neutral (50) scores 0, overbought (100) scores -1.
func rsiBias(rsi float64) float64 {
	return (50.0 - rsi) / 50.0
}

// trendPenalty is zero on bullish SMA confirmation (sma20 > sma50) and a
// fixed unit penalty otherwise.
func trendPenalty(sma20, sma50 float64) float64 {
	if sma20 > sma50 {
		return 0
	}
	return 1
}

// Score combines one symbol's indicators into a single scalar.
// Higher momentum and recent change strictly increase the score; RSI above
// neutral strictly decreases it; a bullish SMA20/SMA50 relationship never
// scores worse than a bearish one, all else equal.
func (w Weights) Score(ind model.IndicatorSet) float64 {
	return w.Momentum*ind.Momentum10 +
		w.RSI*rsiBias(ind.RSI14) -
		w.Trend*trendPenalty(ind.SMA20, ind.SMA50) +
		w.Change*ind.PriceChange1d
}
