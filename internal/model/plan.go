package model

import "time"

// ScoredSymbol pairs a symbol's indicators with its composite score.
type ScoredSymbol struct {
	Symbol     string
	Indicators IndicatorSet
	Score      float64
}

// Pick is one selected symbol with its allocation and exit levels.
type Pick struct {
	Symbol          string
	LastPrice       float64
	Score           float64
	RSI14           float64
	AllocatedBudget float64
	ShareCount      float64 // fractional shares allowed
	TakeProfitPrice float64
	StopLossPrice   float64
}

// AllocationPlan is the final buy plan, picks in rank order (best first).
// The allocated budgets sum to TotalBudget up to floating-point rounding.
type AllocationPlan struct {
	TotalBudget   float64
	TakeProfitPct float64
	StopLossPct   float64
	Picks         []Pick
}

// DroppedSymbol records why a symbol was excluded from the scan.
type DroppedSymbol struct {
	Symbol string
	Reason string
}

// ScanResult is the complete outcome of one scan run: the plan plus
// everything the user must be told about partial failures.
type ScanResult struct {
	Plan       *AllocationPlan
	RequestedN int
	Dropped    []DroppedSymbol
	ScannedAt  time.Time
}

// Shortfall reports how many requested picks could not be filled.
func (r *ScanResult) Shortfall() int {
	if r.Plan == nil {
		return r.RequestedN
	}
	if n := r.RequestedN - len(r.Plan.Picks); n > 0 {
		return n
	}
	return 0
}
