package models

import "github.com/shopspring/decimal"

// CryptoStats holds the per-symbol descriptive statistics returned by
// GET /api/v1/cryptos/{symbol}/stats.
//
// swagger:model CryptoStats
type CryptoStats struct {
	Symbol      string          `json:"symbol" example:"BTC"`
	OldestPrice decimal.Decimal `json:"oldest_price" example:"46813.21"`
	NewestPrice decimal.Decimal `json:"newest_price" example:"41743.58"`
	MinPrice    decimal.Decimal `json:"min_price" example:"41743.58"`
	MaxPrice    decimal.Decimal `json:"max_price" example:"46813.21"`
}

// NormalizedRange is one ranking entry: a symbol together with its price
// extremes and the normalized range (max-min)/min over the selected window.
//
// NormalizedValue carries the high-precision ratio used for ordering;
// presentation layers round it for display.
//
// swagger:model NormalizedRange
type NormalizedRange struct {
	Symbol          string          `json:"symbol" example:"ETH"`
	MinPrice        decimal.Decimal `json:"min_price" example:"2336.52"`
	MaxPrice        decimal.Decimal `json:"max_price" example:"3823.82"`
	NormalizedValue decimal.Decimal `json:"normalized_value" example:"0.6365"`
}
