package strategy

import (
	"sort"

	"StockScout/internal/model"
)

// Rank orders scored symbols descending by score and returns the top n.
// Equal scores are broken by ascending symbol name, so the ordering is
// deterministic regardless of input order. When fewer than n symbols are
// available all of them are returned.
func Rank(scored []model.ScoredSymbol, n int) []model.ScoredSymbol {
	ranked := make([]model.ScoredSymbol, len(scored))
	copy(ranked, scored)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
