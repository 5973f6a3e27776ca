package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OvernightExchange/internal/model"
)

func TestMarkets(t *testing.T) {
	ms := Markets()
	require.Len(t, ms, 5)
	assert.Equal(t, "BTC/USDT", ms[0].Symbol)
	assert.True(t, ms[0].Price.Equal(decimal.RequireFromString("67450.23")))
	assert.True(t, ms[4].Change.IsNegative())

	m, ok := FindMarket("SOL/USDT")
	require.True(t, ok)
	assert.Equal(t, "Solana", m.Name)
	_, ok = FindMarket("DOGE/USDT")
	assert.False(t, ok)
}

func TestWallet_Total(t *testing.T) {
	w := Wallet()
	require.Len(t, w.Assets, 3)
	assert.Equal(t, "125432.45", w.Total.StringFixed(2))
}

func TestLookupSection(t *testing.T) {
	assert.Equal(t, model.SectionTrade, LookupSection("trade"))
	assert.Equal(t, model.SectionContact, LookupSection("contact"))
	assert.Equal(t, model.SectionHome, LookupSection("nope"))
	assert.Equal(t, model.SectionHome, LookupSection(""))
	assert.Len(t, Sections(), 8)
	assert.Len(t, FAQ(), 5)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$67,450.23", FormatPrice(67450.23))
	assert.Equal(t, "$67,450.20", FormatPrice(67450.2))
	assert.Equal(t, "$0.62", FormatPrice(0.6234))
	assert.Equal(t, "-$12.50", FormatPrice(-12.5))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "67,450.23", FormatAmount(decimal.RequireFromString("67450.23")))
	assert.Equal(t, "0.6234", FormatAmount(decimal.RequireFromString("0.6234")))
	assert.Equal(t, "2,854.28", FormatAmount(decimal.RequireFromString("2854.28")))
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "+2.45%", FormatChange(decimal.RequireFromString("2.45")))
	assert.Equal(t, "-1.23%", FormatChange(decimal.RequireFromString("-1.23")))
	assert.Equal(t, "0.00%", FormatChange(decimal.Zero))
	assert.Equal(t, "BTC/USDT $67,450.23 (+2.45%)", FormatTickerLine("BTC/USDT", 67450.23, 2.45))
}
