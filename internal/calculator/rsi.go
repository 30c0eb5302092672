package calculator

import "errors"

// CalculateRSI computes the RSI over the trailing `period` price deltas
// using a simple (unsmoothed) average of gains and losses.
// Requires at least period+1 prices. When the average loss is zero the
// market is fully overbought and RSI saturates at 100.
func CalculateRSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, errors.New("not enough data for RSI calculation")
	}

	var avgGain, avgLoss float64
	for i := len(prices) - period; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
