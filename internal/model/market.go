package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sample is a single (timestamp, price) observation in the synthetic series.
type Sample struct {
	Time  int64   `json:"time"` // epoch milliseconds
	Price float64 `json:"price"`
}

// At returns the sample timestamp as a time.Time.
func (s Sample) At() time.Time {
	return time.UnixMilli(s.Time)
}

// Market is one row of the markets table.
type Market struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change    decimal.Decimal `json:"change"` // percent over 24h
	Volume    string          `json:"volume"`
	MarketCap string          `json:"market_cap"`
}

// Asset is one holding in the wallet summary.
type Asset struct {
	Coin   string          `json:"coin"`
	Amount decimal.Decimal `json:"amount"`
	Value  decimal.Decimal `json:"value"`  // USD
	Change decimal.Decimal `json:"change"` // percent over 24h
}

// Wallet is the wallet panel: holdings plus their summed USD value.
type Wallet struct {
	Assets []Asset         `json:"assets"`
	Total  decimal.Decimal `json:"total"`
}
