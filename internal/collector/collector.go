package collector

import (
	"fmt"
	"log"
	"time"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

// Indicator windows. MinObservations is dictated by the SMA50 window and
// also covers momentum (11) and RSI (15).
const (
	MomentumLookback = 10
	RSIPeriod        = 14
	SMAShortPeriod   = 20
	SMALongPeriod    = 50
	MinObservations  = SMALongPeriod
)

// SymbolIndicators pairs a symbol with its computed indicator set.
type SymbolIndicators struct {
	Symbol     string
	Indicators model.IndicatorSet
}

// Collector fetches price history for the symbol universe and computes
// indicators per symbol.
type Collector struct {
	Fetcher      Fetcher
	Universe     []string
	LookbackDays int
	// FetchDelay spaces out requests to the data source. Zero in tests.
	FetchDelay time.Duration
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, universe []string, lookbackDays int) *Collector {
	return &Collector{
		Fetcher:      fetcher,
		Universe:     universe,
		LookbackDays: lookbackDays,
		FetchDelay:   100 * time.Millisecond,
	}
}

// ComputeIndicators derives the full indicator set from one price series.
// Fails with *InsufficientDataError when the series is shorter than the
// longest indicator window.
func ComputeIndicators(series *model.PriceSeries) (model.IndicatorSet, error) {
	closes := series.Closes()
	if len(closes) < MinObservations {
		return model.IndicatorSet{}, &InsufficientDataError{
			Symbol: series.Symbol,
			Have:   len(closes),
			Need:   MinObservations,
		}
	}

	momentum, err := calculator.CalculateMomentum(closes, MomentumLookback)
	if err != nil {
		return model.IndicatorSet{}, fmt.Errorf("%s: momentum: %w", series.Symbol, err)
	}
	rsi, err := calculator.CalculateRSI(closes, RSIPeriod)
	if err != nil {
		return model.IndicatorSet{}, fmt.Errorf("%s: rsi: %w", series.Symbol, err)
	}
	sma20, err := calculator.CalculateSMA(closes, SMAShortPeriod)
	if err != nil {
		return model.IndicatorSet{}, fmt.Errorf("%s: sma20: %w", series.Symbol, err)
	}
	sma50, err := calculator.CalculateSMA(closes, SMALongPeriod)
	if err != nil {
		return model.IndicatorSet{}, fmt.Errorf("%s: sma50: %w", series.Symbol, err)
	}
	change, err := calculator.CalculateChange(closes)
	if err != nil {
		return model.IndicatorSet{}, fmt.Errorf("%s: change: %w", series.Symbol, err)
	}

	return model.IndicatorSet{
		Momentum10:    momentum,
		RSI14:         rsi,
		SMA20:         sma20,
		SMA50:         sma50,
		PriceChange1d: change,
		LastPrice:     closes[len(closes)-1],
	}, nil
}

// CollectUniverse fetches history and computes indicators for every symbol
// in the universe. Per-symbol failures never abort the scan: failed symbols
// are dropped with their reason recorded.
func (c *Collector) CollectUniverse() ([]SymbolIndicators, []model.DroppedSymbol) {
	var results []SymbolIndicators
	var dropped []model.DroppedSymbol

	for i, symbol := range c.Universe {
		if i > 0 && c.FetchDelay > 0 {
			time.Sleep(c.FetchDelay)
		}

		bars, err := c.Fetcher.FetchDailyBars(symbol, c.LookbackDays)
		if err != nil {
			ferr := &DataFetchError{Symbol: symbol, Err: err}
			log.Printf("[WARN] %v", ferr)
			dropped = append(dropped, model.DroppedSymbol{Symbol: symbol, Reason: ferr.Error()})
			continue
		}

		series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
		ind, err := ComputeIndicators(series)
		if err != nil {
			log.Printf("[WARN] %v", err)
			dropped = append(dropped, model.DroppedSymbol{Symbol: symbol, Reason: err.Error()})
			continue
		}

		results = append(results, SymbolIndicators{Symbol: symbol, Indicators: ind})
	}

	return results, dropped
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.OHLCV
	Err  map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if err, ok := m.Err[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return GenerateMockBars(100, days), nil
}

// GenerateMockBars produces a gently trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
