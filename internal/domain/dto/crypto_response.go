package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/analytics"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// CryptoStatsResponse is the JSON body of GET /api/v1/cryptos/{symbol}/stats.
//
// Response DTOs are kept separate from internal domain models so the API
// contract can evolve independently of business logic.
type CryptoStatsResponse struct {
	Symbol      string          `json:"symbol" example:"BTC"`
	OldestPrice decimal.Decimal `json:"oldest_price" example:"46813.21"`
	NewestPrice decimal.Decimal `json:"newest_price" example:"41743.58"`
	MinPrice    decimal.Decimal `json:"min_price" example:"41743.58"`
	MaxPrice    decimal.Decimal `json:"max_price" example:"46813.21"`
}

// NormalizedRangeResponse is one entry of the ranking endpoints. The
// normalized value is rounded to three fractional digits for display;
// ordering has already happened at higher precision.
type NormalizedRangeResponse struct {
	Symbol          string          `json:"symbol" example:"ETH"`
	MinPrice        decimal.Decimal `json:"min_price" example:"2336.52"`
	MaxPrice        decimal.Decimal `json:"max_price" example:"3823.82"`
	NormalizedValue decimal.Decimal `json:"normalized_value" example:"0.637"`
}

// DayWinnerResponse is the JSON body of GET /api/v1/ranking/day/{date}.
type DayWinnerResponse struct {
	Symbol          string          `json:"symbol" example:"XRP"`
	NormalizedValue decimal.Decimal `json:"normalized_value" example:"0.019"`
}

// NewCryptoStatsResponse maps a domain stats model to its response DTO.
func NewCryptoStatsResponse(s models.CryptoStats) CryptoStatsResponse {
	return CryptoStatsResponse{
		Symbol:      s.Symbol,
		OldestPrice: s.OldestPrice,
		NewestPrice: s.NewestPrice,
		MinPrice:    s.MinPrice,
		MaxPrice:    s.MaxPrice,
	}
}

// NewNormalizedRangeResponse maps a ranking entry to its response DTO,
// rounding the ratio to the display scale.
func NewNormalizedRangeResponse(r models.NormalizedRange) NormalizedRangeResponse {
	return NormalizedRangeResponse{
		Symbol:          r.Symbol,
		MinPrice:        r.MinPrice,
		MaxPrice:        r.MaxPrice,
		NormalizedValue: r.NormalizedValue.Round(analytics.DisplayScale),
	}
}

// NewDayWinnerResponse maps a day winner to its response DTO.
func NewDayWinnerResponse(r models.NormalizedRange) DayWinnerResponse {
	return DayWinnerResponse{
		Symbol:          r.Symbol,
		NormalizedValue: r.NormalizedValue.Round(analytics.DisplayScale),
	}
}
