package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// MinPrice returns the lowest price in the sequence. Ties keep the first
// occurrence. An empty sequence yields decimal zero.
func MinPrice(obs []models.PriceObservation) decimal.Decimal {
	if len(obs) == 0 {
		return decimal.Zero
	}
	min := obs[0].Price
	for _, o := range obs[1:] {
		if o.Price.LessThan(min) {
			min = o.Price
		}
	}
	return min
}

// MaxPrice returns the highest price in the sequence. Ties keep the first
// occurrence. An empty sequence yields decimal zero.
func MaxPrice(obs []models.PriceObservation) decimal.Decimal {
	if len(obs) == 0 {
		return decimal.Zero
	}
	max := obs[0].Price
	for _, o := range obs[1:] {
		if o.Price.GreaterThan(max) {
			max = o.Price
		}
	}
	return max
}

// Oldest returns the observation with the smallest timestamp, or nil for an
// empty sequence. Ties keep the first occurrence.
func Oldest(obs []models.PriceObservation) *models.PriceObservation {
	if len(obs) == 0 {
		return nil
	}
	oldest := &obs[0]
	for i := range obs[1:] {
		if obs[i+1].Timestamp < oldest.Timestamp {
			oldest = &obs[i+1]
		}
	}
	return oldest
}

// Newest returns the observation with the largest timestamp, or nil for an
// empty sequence. Ties keep the first occurrence.
func Newest(obs []models.PriceObservation) *models.PriceObservation {
	if len(obs) == 0 {
		return nil
	}
	newest := &obs[0]
	for i := range obs[1:] {
		if obs[i+1].Timestamp > newest.Timestamp {
			newest = &obs[i+1]
		}
	}
	return newest
}
