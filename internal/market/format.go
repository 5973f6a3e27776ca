package market

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatPrice renders the headline price with two decimals and thousands
// separators, e.g. "$67,450.23".
func FormatPrice(p float64) string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", p)
}

// FormatAmount renders a decimal with thousands separators, keeping up to
// four fraction digits and trimming trailing zeros ("67,450.23", "0.6234").
func FormatAmount(d decimal.Decimal) string {
	return humanize.CommafWithDigits(d.InexactFloat64(), 4)
}

// FormatChange renders a percent move with an explicit plus sign for gains,
// e.g. "+2.45%", "-1.23%", "0.00%".
func FormatChange(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// FormatPercent is FormatChange for float percentages.
func FormatPercent(p float64) string {
	return FormatChange(decimal.NewFromFloat(p))
}

// FormatTickerLine renders a one-line summary, e.g. "BTC/USDT $67,450.23 (+2.45%)".
func FormatTickerLine(symbol string, last, changePct float64) string {
	return fmt.Sprintf("%s %s (%s)", symbol, FormatPrice(last), FormatPercent(changePct))
}
