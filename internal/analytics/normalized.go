// Package analytics implements the pure reductions over price observations:
// min/max/oldest/newest, the normalized range ratio, the per-symbol ranking,
// and calendar-day window resolution. Everything here is stateless and safe
// for concurrent use.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/logger"
)

const (
	// DisplayScale is the fractional precision used for externally reported
	// ratios.
	DisplayScale int32 = 3

	// RankingScale is the fractional precision used when ratios are compared
	// or sorted. Two ratios equal at 3 digits can still differ at 10, so
	// ordering always happens at this scale and values are re-rounded to
	// DisplayScale for presentation only.
	RankingScale int32 = 10
)

// NormalizedRange computes (max-min)/min rounded half-up to the given scale.
//
// min == 0 (which also covers the empty-group case, where both extremes are
// zero) is a defined degenerate input: the ratio is zero by convention, not
// an error. The function is total.
func NormalizedRange(min, max decimal.Decimal, scale int32) decimal.Decimal {
	if !min.IsPositive() {
		logger.L().Debug().
			Str("min_price", min.String()).
			Str("max_price", max.String()).
			Msg("normalized range degenerate: min price not positive")
		return decimal.Zero
	}
	// DivRound rounds half away from zero, which is half-up for the
	// non-negative ratios produced here (max >= min >= 0).
	return max.Sub(min).DivRound(min, scale)
}
