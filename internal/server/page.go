package server

import (
	"html/template"
	"log"
	"net/http"

	"OvernightExchange/internal/chart"
	"OvernightExchange/internal/collector"
	"OvernightExchange/internal/market"
	"OvernightExchange/internal/model"
)

type marketRow struct {
	Symbol    string
	Name      string
	Price     string
	Change    string
	Up        bool
	Volume    string
	MarketCap string
}

type assetRow struct {
	Coin   string
	Amount string
	Value  string
	Change string
}

type pageData struct {
	Nav     []model.NavItem
	Current model.Section

	Symbol    string
	LastPrice string
	Change    string
	Ticker    *model.Ticker
	Chart     template.HTML

	Markets     []marketRow
	Assets      []assetRow
	WalletTotal string
	FAQ         []model.FAQEntry
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Overnight Exchange</title></head>
<body>
<header>
  <strong>Overnight Exchange</strong>
  <nav>{{range .Nav}}<a href="/section/{{.ID}}"{{if eq .ID $.Current}} class="active"{{end}}>{{.Label}}</a> {{end}}</nav>
</header>
<main>
{{- if eq .Current "home"}}
  <section id="home">
    <h1>Trade crypto</h1>
    <p>A premium platform for professional digital asset trading, 24/7.</p>
    <a href="/section/trade">Start trading</a>
  </section>
{{- else if eq .Current "trade"}}
  <section id="trade">
    <h2>{{.Symbol}} <small>{{.Change}}</small></h2>
    <p class="price">{{.LastPrice}}</p>
    {{with .Ticker}}<p>High {{printf "%.2f" .High}} · Low {{printf "%.2f" .Low}} · SMA {{printf "%.2f" .SMA}} · RSI {{printf "%.0f" .RSI}}</p>{{end}}
    <div class="chart">{{.Chart}}</div>
  </section>
{{- else if eq .Current "markets"}}
  <section id="markets">
    <table>
      <tr><th>Pair</th><th>Price</th><th>24h change</th><th>Volume</th><th>Market cap</th></tr>
      {{range .Markets}}<tr><td>{{.Symbol}} {{.Name}}</td><td>${{.Price}}</td><td class="{{if .Up}}up{{else}}down{{end}}">{{.Change}}</td><td>{{.Volume}}</td><td>{{.MarketCap}}</td></tr>
      {{end}}
    </table>
  </section>
{{- else if eq .Current "wallet"}}
  <section id="wallet">
    <h2>Total balance ${{.WalletTotal}}</h2>
    <ul>{{range .Assets}}<li>{{.Coin}} {{.Amount}} — ${{.Value}} ({{.Change}})</li>{{end}}</ul>
  </section>
{{- else if eq .Current "about"}}
  <section id="about">
    <p>Overnight Exchange is a premium cryptocurrency trading platform built by a team with experience at leading financial institutions and technology companies.</p>
  </section>
{{- else if eq .Current "faq"}}
  <section id="faq">
    {{range .FAQ}}<details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>
    {{end}}
  </section>
{{- else if eq .Current "support"}}
  <section id="support"><p>Live chat · Email · Phone</p></section>
{{- else if eq .Current "contact"}}
  <section id="contact">
    <form method="post" action="/api/contact">
      <input name="name" placeholder="Name"> <input name="email" type="email" placeholder="Email">
      <input name="subject" placeholder="Subject"> <textarea name="message" rows="5"></textarea>
      <button type="submit">Send message</button>
    </form>
  </section>
{{- end}}
</main>
</body>
</html>
`))

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	current := market.LookupSection(r.PathValue("id"))
	data := pageData{
		Nav:     market.Sections(),
		Current: current,
		Symbol:  s.Feed.Symbol(),
	}

	switch current {
	case model.SectionTrade:
		s.fillTrade(&data)
	case model.SectionMarkets:
		for _, m := range market.Markets() {
			data.Markets = append(data.Markets, marketRow{
				Symbol:    m.Symbol,
				Name:      m.Name,
				Price:     market.FormatAmount(m.Price),
				Change:    market.FormatChange(m.Change),
				Up:        !m.Change.IsNegative(),
				Volume:    m.Volume,
				MarketCap: m.MarketCap,
			})
		}
	case model.SectionWallet:
		wallet := market.Wallet()
		data.WalletTotal = market.FormatAmount(wallet.Total)
		for _, a := range wallet.Assets {
			data.Assets = append(data.Assets, assetRow{
				Coin:   a.Coin,
				Amount: market.FormatAmount(a.Amount),
				Value:  market.FormatAmount(a.Value),
				Change: market.FormatChange(a.Change),
			})
		}
	case model.SectionFAQ:
		data.FAQ = market.FAQ()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render page: %v", err)
	}
}

func (s *Server) fillTrade(data *pageData) {
	snap := s.Feed.Snapshot()
	c := collector.NewCollector(&collector.StaticSource{Series: snap}, s.Feed.Symbol())
	t, err := c.Collect()
	if err != nil {
		data.LastPrice = "—"
		return
	}
	data.Ticker = t
	data.LastPrice = market.FormatPrice(t.Last)
	data.Change = market.FormatPercent(t.ChangePct)

	if plot, ok := chart.Render(snap.Samples(), s.Viewport); ok {
		// SVG is generated from numeric path data only.
		data.Chart = template.HTML(chart.SVG(plot, chart.DefaultStyle))
	}
}
