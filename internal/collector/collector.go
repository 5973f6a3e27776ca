package collector

import (
	"errors"
	"log"

	"OvernightExchange/internal/calculator"
	"OvernightExchange/internal/model"
)

// ErrNoData is returned when the source series is empty.
var ErrNoData = errors.New("price series is empty")

const (
	defaultSMAPeriod = 20
	defaultRSIPeriod = 14
)

// Collector derives the trading panel's ticker from a price series.
type Collector struct {
	Source    Source
	Symbol    string
	SMAPeriod int
	RSIPeriod int
}

// NewCollector creates a new Collector.
func NewCollector(src Source, symbol string) *Collector {
	return &Collector{
		Source:    src,
		Symbol:    symbol,
		SMAPeriod: defaultSMAPeriod,
		RSIPeriod: defaultRSIPeriod,
	}
}

// Collect snapshots the series and computes all ticker figures.
func (c *Collector) Collect() (*model.Ticker, error) {
	s := c.Source.Snapshot()
	last, ok := s.Latest()
	if !ok {
		return nil, ErrNoData
	}
	first, _ := s.Oldest()
	prices := s.Prices()

	t := &model.Ticker{
		Symbol:    c.Symbol,
		Last:      last.Price,
		Open:      first.Price,
		UpdatedAt: last.At().UTC(),
	}

	if chg, err := calculator.CalculateChange(first.Price, last.Price); err != nil {
		log.Printf("[WARN] change calculation failed: %v, defaulting to 0", err)
	} else {
		t.ChangePct = chg
	}

	// Never fails on a non-empty series.
	t.High, t.Low, _ = calculator.CalculateRange(prices)

	if pos, err := calculator.CalculatePosition(last.Price, t.High, t.Low); err != nil {
		log.Printf("[WARN] position calculation failed: %v", err)
		t.Position = 0.5
	} else {
		t.Position = pos
	}

	if sma, err := calculator.CalculateSMA(prices, c.SMAPeriod); err != nil {
		log.Printf("[WARN] SMA%d calculation failed: %v, using last price", c.SMAPeriod, err)
		t.SMA = last.Price
	} else {
		t.SMA = sma
	}

	if rsi, err := calculator.CalculateRSI(prices, c.RSIPeriod); err != nil {
		log.Printf("[WARN] RSI%d calculation failed: %v, defaulting to 50", c.RSIPeriod, err)
		t.RSI = 50
	} else {
		t.RSI = rsi
	}

	return t, nil
}
