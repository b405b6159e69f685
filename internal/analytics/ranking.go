package analytics

import (
	"sort"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// GroupBySymbol partitions observations into per-symbol groups. Symbols are
// matched exactly (case-sensitive, no normalization).
func GroupBySymbol(obs []models.PriceObservation) map[string][]models.PriceObservation {
	groups := make(map[string][]models.PriceObservation)
	for _, o := range obs {
		groups[o.Symbol] = append(groups[o.Symbol], o)
	}
	return groups
}

// RankBySymbol groups all observations by symbol, computes each group's
// normalized range at RankingScale, and returns one entry per symbol sorted
// by normalized value descending.
//
// Exact ties are broken by ascending symbol so that repeated calls over an
// unchanged dataset produce identical output. An empty input yields an
// empty (non-nil) slice.
func RankBySymbol(obs []models.PriceObservation) []models.NormalizedRange {
	groups := GroupBySymbol(obs)

	ranking := make([]models.NormalizedRange, 0, len(groups))
	for symbol, group := range groups {
		min := MinPrice(group)
		max := MaxPrice(group)
		ranking = append(ranking, models.NormalizedRange{
			Symbol:          symbol,
			MinPrice:        min,
			MaxPrice:        max,
			NormalizedValue: NormalizedRange(min, max, RankingScale),
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if c := ranking[i].NormalizedValue.Cmp(ranking[j].NormalizedValue); c != 0 {
			return c > 0
		}
		return ranking[i].Symbol < ranking[j].Symbol
	})

	return ranking
}
