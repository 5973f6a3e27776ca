// Package server exposes the exchange page, its JSON API, the rendered chart
// and a WebSocket stream of the live price series.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"OvernightExchange/internal/chart"
	"OvernightExchange/internal/collector"
	"OvernightExchange/internal/feed"
	"OvernightExchange/internal/metrics"
	"OvernightExchange/internal/recorder"
)

const shutdownTimeout = 10 * time.Second

// Server wires the feed, recorder and metrics to HTTP routes.
type Server struct {
	Feed      *feed.Feed
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Metrics   *metrics.Metrics
	Viewport  chart.Viewport

	mux  *http.ServeMux
	http *http.Server
}

// New creates a Server and registers all routes.
func New(addr string, f *feed.Feed, rec recorder.Recorder, m *metrics.Metrics, vp chart.Viewport) *Server {
	s := &Server{
		Feed:      f,
		Collector: collector.NewCollector(f, f.Symbol()),
		Recorder:  rec,
		Metrics:   m,
		Viewport:  vp,
		mux:       http.NewServeMux(),
	}
	s.routes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.handle("GET /{$}", s.handlePage)
	s.handle("GET /section/{id}", s.handlePage)
	s.handle("GET /healthz", s.handleHealth)

	s.handle("GET /api/series", s.handleSeries)
	s.handle("GET /api/ticker", s.handleTicker)
	s.handle("GET /api/markets", s.handleMarkets)
	s.handle("GET /api/wallet", s.handleWallet)
	s.handle("GET /api/sections", s.handleSections)
	s.handle("GET /api/faq", s.handleFAQ)
	s.handle("GET /api/history", s.handleHistory)
	s.handle("POST /api/contact", s.handleContact)

	s.handle("GET /chart.svg", s.handleChartSVG)
	s.handle("GET /chart.png", s.handleChartPNG)

	// The stream hijacks the connection, so it bypasses the status recorder.
	s.mux.HandleFunc("GET /ws", s.handleStream)
	s.mux.Handle("GET /metrics", s.Metrics.Handler())
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] http server listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("[INFO] http server stopped")
	return nil
}

// handle registers h under pattern and counts responses by route and code.
func (s *Server) handle(pattern string, h http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		s.Metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(sw.code)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
