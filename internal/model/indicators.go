package model

import "time"

// Ticker holds the headline figures for the trading panel, derived from the
// current price series.
type Ticker struct {
	Symbol    string    `json:"symbol"`
	Last      float64   `json:"last"`
	Open      float64   `json:"open"`
	ChangePct float64   `json:"change_pct"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Position  float64   `json:"position"` // 0.0 ~ 1.0 within [Low, High]
	SMA       float64   `json:"sma"`
	RSI       float64   `json:"rsi"`
	UpdatedAt time.Time `json:"updated_at"`
}
