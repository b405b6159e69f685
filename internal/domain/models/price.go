package models

import "github.com/shopspring/decimal"

// PriceObservation is a single price record from the input files.
// Identity is the pair (Symbol, Timestamp); a later ingestion of the same
// pair replaces the price.
//
// Fields:
//   - Symbol: ticker string (e.g., "BTC"). Matched case-sensitively.
//   - Timestamp: milliseconds since epoch, UTC.
//   - Price: non-negative decimal price.
type PriceObservation struct {
	Symbol    string
	Timestamp int64
	Price     decimal.Decimal
}
