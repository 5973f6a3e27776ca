// Package market holds the static content of the exchange page: the markets
// table, the wallet summary, the navigation and the FAQ.
package market

import (
	"github.com/shopspring/decimal"

	"OvernightExchange/internal/model"
)

var markets = []struct {
	symbol, name, price, change, volume, cap string
}{
	{"BTC/USDT", "Bitcoin", "67450.23", "2.45", "24.5B", "1.32T"},
	{"ETH/USDT", "Ethereum", "3542.18", "-1.23", "12.8B", "425B"},
	{"BNB/USDT", "Binance Coin", "312.45", "0.87", "2.1B", "48B"},
	{"SOL/USDT", "Solana", "142.67", "5.32", "3.4B", "62B"},
	{"XRP/USDT", "Ripple", "0.6234", "-0.45", "1.8B", "34B"},
}

var assets = []struct {
	coin, amount, value, change string
}{
	{"BTC", "1.5432", "104123.45", "2.45"},
	{"ETH", "5.2100", "18454.72", "-1.23"},
	{"USDT", "2854.28", "2854.28", "0.00"},
}

var sections = []model.NavItem{
	{ID: model.SectionHome, Label: "Home", Icon: "Home"},
	{ID: model.SectionTrade, Label: "Trade", Icon: "TrendingUp"},
	{ID: model.SectionMarkets, Label: "Markets", Icon: "BarChart3"},
	{ID: model.SectionWallet, Label: "Wallet", Icon: "Wallet"},
	{ID: model.SectionAbout, Label: "About", Icon: "Info"},
	{ID: model.SectionFAQ, Label: "FAQ", Icon: "HelpCircle"},
	{ID: model.SectionSupport, Label: "Support", Icon: "MessageSquare"},
	{ID: model.SectionContact, Label: "Contact", Icon: "Mail"},
}

var faq = []model.FAQEntry{
	{
		Question: "How do I start trading?",
		Answer:   "Sign up, pass KYC verification, top up your balance and start trading. The whole process takes no more than 15 minutes.",
	},
	{
		Question: "What are the trading fees?",
		Answer:   "The maker fee is 0.1% and the taker fee is 0.15%. VIP clients get special rates from 0.05%.",
	},
	{
		Question: "How are my funds protected?",
		Answer:   "95% of funds are kept in cold wallets, protected by a multi-layer security system, 2FA and asset insurance.",
	},
	{
		Question: "Which deposit and withdrawal methods are available?",
		Answer:   "Bank transfers, Visa/Mastercard cards, crypto transfers and P2P exchange are supported.",
	},
	{
		Question: "Is there a mobile app?",
		Answer:   "Yes, apps are available for iOS and Android with the full functionality of the web version.",
	},
}

// Markets returns the markets table rows.
func Markets() []model.Market {
	out := make([]model.Market, len(markets))
	for i, m := range markets {
		out[i] = model.Market{
			Symbol:    m.symbol,
			Name:      m.name,
			Price:     decimal.RequireFromString(m.price),
			Change:    decimal.RequireFromString(m.change),
			Volume:    m.volume,
			MarketCap: m.cap,
		}
	}
	return out
}

// FindMarket looks a market up by symbol.
func FindMarket(symbol string) (model.Market, bool) {
	for _, m := range Markets() {
		if m.Symbol == symbol {
			return m, true
		}
	}
	return model.Market{}, false
}

// Wallet returns the wallet summary with its total USD value.
func Wallet() model.Wallet {
	w := model.Wallet{Assets: make([]model.Asset, len(assets)), Total: decimal.Zero}
	for i, a := range assets {
		asset := model.Asset{
			Coin:   a.coin,
			Amount: decimal.RequireFromString(a.amount),
			Value:  decimal.RequireFromString(a.value),
			Change: decimal.RequireFromString(a.change),
		}
		w.Assets[i] = asset
		w.Total = w.Total.Add(asset.Value)
	}
	return w
}

// Sections returns the navigation items in display order.
func Sections() []model.NavItem {
	out := make([]model.NavItem, len(sections))
	copy(out, sections)
	return out
}

// LookupSection resolves a section id, falling back to home.
func LookupSection(id string) model.Section {
	for _, s := range sections {
		if string(s.ID) == id {
			return s.ID
		}
	}
	return model.SectionHome
}

// FAQ returns the FAQ entries.
func FAQ() []model.FAQEntry {
	out := make([]model.FAQEntry, len(faq))
	copy(out, faq)
	return out
}
