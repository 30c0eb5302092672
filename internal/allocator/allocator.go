package allocator

import (
	"errors"

	"StockScout/internal/model"
)

// ErrInvalidBudget is returned when the total budget is not positive.
// The run cannot proceed until a valid budget is supplied.
var ErrInvalidBudget = errors.New("budget must be positive")

// ErrNoPicks is returned when the ranked list is empty, e.g. every symbol
// in the universe had insufficient data. Callers report "no eligible
// picks" rather than treating this as a crash.
var ErrNoPicks = errors.New("no picks to allocate")

// Allocate splits the budget evenly across the ranked picks and derives
// take-profit and stop-loss levels from the configured percentages.
// Fractional share counts are allowed. Rank order is preserved.
func Allocate(ranked []model.ScoredSymbol, budget, takeProfitPct, stopLossPct float64) (*model.AllocationPlan, error) {
	if budget <= 0 {
		return nil, ErrInvalidBudget
	}
	if len(ranked) == 0 {
		return nil, ErrNoPicks
	}

	per := budget / float64(len(ranked))
	picks := make([]model.Pick, len(ranked))
	for i, s := range ranked {
		price := s.Indicators.LastPrice
		picks[i] = model.Pick{
			Symbol:          s.Symbol,
			LastPrice:       price,
			Score:           s.Score,
			RSI14:           s.Indicators.RSI14,
			AllocatedBudget: per,
			ShareCount:      per / price,
			TakeProfitPrice: price * (1 + takeProfitPct),
			StopLossPrice:   price * (1 - stopLossPct),
		}
	}

	return &model.AllocationPlan{
		TotalBudget:   budget,
		TakeProfitPct: takeProfitPct,
		StopLossPct:   stopLossPct,
		Picks:         picks,
	}, nil
}
