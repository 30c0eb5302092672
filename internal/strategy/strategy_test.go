package strategy

import (
	"reflect"
	"testing"

	"StockScout/internal/model"
)

func baseIndicators() model.IndicatorSet {
	return model.IndicatorSet{
		Momentum10:    0.05,
		RSI14:         50,
		SMA20:         105,
		SMA50:         100,
		PriceChange1d: 0.01,
		LastPrice:     110,
	}
}

func TestScore_MomentumMonotonic(t *testing.T) {
	w := DefaultWeights()
	lo := baseIndicators()
	hi := baseIndicators()
	hi.Momentum10 = lo.Momentum10 + 0.01

	if w.Score(hi) <= w.Score(lo) {
		t.Errorf("higher momentum must strictly increase score: %.4f vs %.4f", w.Score(hi), w.Score(lo))
	}
}

func TestScore_ChangeMonotonic(t *testing.T) {
	w := DefaultWeights()
	lo := baseIndicators()
	hi := baseIndicators()
	hi.PriceChange1d = lo.PriceChange1d + 0.01

	if w.Score(hi) <= w.Score(lo) {
		t.Errorf("higher recent change must strictly increase score")
	}
}

func TestScore_RSIAboveNeutralPenalized(t *testing.T) {
	w := DefaultWeights()
	for _, rsi := range []float64{55, 60, 70, 80, 95} {
		lower := baseIndicators()
		lower.RSI14 = rsi
		higher := baseIndicators()
		higher.RSI14 = rsi + 5
		if w.Score(higher) >= w.Score(lower) {
			t.Errorf("RSI %v -> %v should strictly decrease score", rsi, rsi+5)
		}
	}
}

func TestScore_OversoldRewarded(t *testing.T) {
	w := DefaultWeights()
	oversold := baseIndicators()
	oversold.RSI14 = 25
	neutral := baseIndicators()
	neutral.RSI14 = 50
	if w.Score(oversold) <= w.Score(neutral) {
		t.Error("oversold RSI should score above neutral, all else equal")
	}
}

func TestScore_TrendConfirmation(t *testing.T) {
	w := DefaultWeights()
	bull := baseIndicators() // SMA20 105 > SMA50 100
	bear := baseIndicators()
	bear.SMA20 = 95

	if w.Score(bull) < w.Score(bear) {
		t.Error("bullish SMA relationship must never score worse than bearish")
	}
	if w.Score(bull)-w.Score(bear) != w.Trend {
		t.Errorf("trend penalty should be exactly the trend weight, got %v", w.Score(bull)-w.Score(bear))
	}
}

func TestRank_DescendingTopN(t *testing.T) {
	scored := []model.ScoredSymbol{
		{Symbol: "AAA", Score: 0.1},
		{Symbol: "BBB", Score: 0.9},
		{Symbol: "CCC", Score: 0.5},
		{Symbol: "DDD", Score: -0.2},
	}
	ranked := Rank(scored, 3)
	want := []string{"BBB", "CCC", "AAA"}
	got := symbols(ranked)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRank_TieBreakBySymbol(t *testing.T) {
	scored := []model.ScoredSymbol{
		{Symbol: "ZZZ", Score: 0.5},
		{Symbol: "AAA", Score: 0.5},
		{Symbol: "MMM", Score: 0.5},
	}
	ranked := Rank(scored, 3)
	want := []string{"AAA", "MMM", "ZZZ"}
	if got := symbols(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("equal scores must order by symbol ascending: got %v", got)
	}
}

func TestRank_Idempotent(t *testing.T) {
	scored := []model.ScoredSymbol{
		{Symbol: "BBB", Score: 0.3},
		{Symbol: "AAA", Score: 0.3},
		{Symbol: "CCC", Score: 0.7},
	}
	first := Rank(scored, 3)
	second := Rank(first, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ranking must be idempotent: %v vs %v", symbols(first), symbols(second))
	}
}

func TestRank_InputOrderIrrelevant(t *testing.T) {
	a := []model.ScoredSymbol{
		{Symbol: "AAA", Score: 0.5},
		{Symbol: "BBB", Score: 0.5},
	}
	b := []model.ScoredSymbol{
		{Symbol: "BBB", Score: 0.5},
		{Symbol: "AAA", Score: 0.5},
	}
	if !reflect.DeepEqual(symbols(Rank(a, 2)), symbols(Rank(b, 2))) {
		t.Error("output must not depend on input order")
	}
}

func TestRank_FewerSymbolsThanN(t *testing.T) {
	scored := []model.ScoredSymbol{{Symbol: "AAA", Score: 1}}
	ranked := Rank(scored, 5)
	if len(ranked) != 1 {
		t.Errorf("expected all available symbols when fewer than N, got %d", len(ranked))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	scored := []model.ScoredSymbol{
		{Symbol: "BBB", Score: 0.1},
		{Symbol: "AAA", Score: 0.9},
	}
	Rank(scored, 2)
	if scored[0].Symbol != "BBB" {
		t.Error("Rank must not reorder its input slice")
	}
}

func symbols(scored []model.ScoredSymbol) []string {
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Symbol
	}
	return out
}
