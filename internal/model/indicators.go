package model

// IndicatorSet holds all computed technical indicators for one symbol.
// Fields are only populated when the underlying series covers the
// required window (50 observations for SMA50).
type IndicatorSet struct {
	Momentum10    float64 // percent change over the last 10 observations
	RSI14         float64 // 0 ~ 100
	SMA20         float64
	SMA50         float64
	PriceChange1d float64 // most recent single-day percent change
	LastPrice     float64
}
