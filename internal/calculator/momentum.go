package calculator

import "errors"

// CalculateMomentum returns the percent change between the latest price
// and the price `lookback` observations earlier.
// Requires at least lookback+1 prices.
func CalculateMomentum(prices []float64, lookback int) (float64, error) {
	if lookback <= 0 {
		return 0, errors.New("lookback must be positive")
	}
	if len(prices) < lookback+1 {
		return 0, errors.New("not enough data for momentum calculation")
	}
	base := prices[len(prices)-1-lookback]
	if base == 0 {
		return 0, errors.New("zero base price")
	}
	return (prices[len(prices)-1] - base) / base, nil
}

// CalculateChange returns the most recent single-period percent change.
func CalculateChange(prices []float64) (float64, error) {
	return CalculateMomentum(prices, 1)
}
