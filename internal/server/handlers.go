package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"

	"OvernightExchange/internal/chart"
	"OvernightExchange/internal/collector"
	"OvernightExchange/internal/market"
	"OvernightExchange/internal/model"
	"OvernightExchange/internal/series"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

// seriesPayload is the JSON shape of a series snapshot, shared by the REST
// endpoint and the stream.
type seriesPayload struct {
	Symbol  string         `json:"symbol"`
	Samples []model.Sample `json:"samples"`
	Latest  *model.Sample  `json:"latest,omitempty"`
	Min     float64        `json:"min"`
	Max     float64        `json:"max"`
	Line    string         `json:"line,omitempty"`
	Fill    string         `json:"fill,omitempty"`
}

func (s *Server) newSeriesPayload(snap series.Series) seriesPayload {
	samples := snap.Samples()
	p := seriesPayload{Symbol: s.Feed.Symbol(), Samples: samples}
	if last, ok := snap.Latest(); ok {
		p.Latest = &last
	}
	if plot, ok := chart.Render(samples, s.Viewport); ok {
		p.Min, p.Max = plot.Bounds.Min, plot.Bounds.Max
		p.Line = plot.Line.String()
		p.Fill = plot.Fill.String()
	}
	return p
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleSeries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.newSeriesPayload(s.Feed.Snapshot()))
}

func (s *Server) handleTicker(w http.ResponseWriter, _ *http.Request) {
	t, err := s.Collector.Collect()
	if errors.Is(err, collector.ErrNoData) {
		writeError(w, http.StatusServiceUnavailable, "price series not ready")
		return
	}
	if err != nil {
		log.Printf("[ERROR] collect ticker: %v", err)
		writeError(w, http.StatusInternalServerError, "ticker unavailable")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleMarkets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, market.Markets())
}

func (s *Server) handleWallet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, market.Wallet())
}

func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, market.Sections())
}

func (s *Server) handleFAQ(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, market.FAQ())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	ticks, err := s.Recorder.RecentTicks(s.Feed.Symbol(), limit)
	if err != nil {
		log.Printf("[ERROR] load history: %v", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if ticks == nil {
		ticks = []model.Sample{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol":  s.Feed.Symbol(),
		"samples": ticks,
	})
}

func (s *Server) handleChartSVG(w http.ResponseWriter, _ *http.Request) {
	plot, ok := chart.Render(s.Feed.Snapshot().Samples(), s.Viewport)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if err := chart.WriteSVG(w, plot, chart.DefaultStyle); err != nil {
		log.Printf("[WARN] %v", err)
	}
}

func (s *Server) handleChartPNG(w http.ResponseWriter, _ *http.Request) {
	samples := s.Feed.Snapshot().Samples()
	if len(samples) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, samples, s.Viewport, s.Feed.Symbol()); err != nil {
		log.Printf("[ERROR] render png: %v", err)
		writeError(w, http.StatusInternalServerError, "chart unavailable")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}
