package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OvernightExchange/internal/chart"
	"OvernightExchange/internal/feed"
	"OvernightExchange/internal/metrics"
	"OvernightExchange/internal/model"
	"OvernightExchange/internal/recorder"
	"OvernightExchange/internal/series"
)

func newTestServer(t *testing.T, activate bool) *Server {
	t.Helper()
	gen := series.NewGenerator(time.Now, rand.New(rand.NewPCG(9, 9)))
	f := feed.New("BTC/USDT", gen, 67450, series.DefaultLength)
	if activate {
		_, err := f.Activate()
		require.NoError(t, err)
	}
	t.Cleanup(f.Deactivate)
	return New(":0", f, recorder.NewNoopRecorder(), metrics.NewMetrics("test"), chart.DefaultViewport)
}

func do(t *testing.T, s *Server, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSeriesEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, "GET", "/api/series", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got seriesPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "BTC/USDT", got.Symbol)
	assert.Len(t, got.Samples, series.DefaultLength)
	require.NotNil(t, got.Latest)
	assert.Equal(t, got.Samples[len(got.Samples)-1], *got.Latest)
	assert.True(t, strings.HasPrefix(got.Line, "M 0 "))
	assert.True(t, strings.HasSuffix(got.Fill, "L 800 256 L 0 256 Z"))
	assert.LessOrEqual(t, got.Min, got.Max)
}

func TestTickerEndpoint(t *testing.T) {
	s := newTestServer(t, true)
	rec := do(t, s, "GET", "/api/ticker", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tk model.Ticker
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tk))
	last, _ := s.Feed.Latest()
	assert.Equal(t, last.Price, tk.Last)

	idle := newTestServer(t, false)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, idle, "GET", "/api/ticker", "", "").Code)
}

func TestStaticEndpoints(t *testing.T) {
	s := newTestServer(t, true)

	var markets []model.Market
	rec := do(t, s, "GET", "/api/markets", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &markets))
	assert.Len(t, markets, 5)

	var wallet model.Wallet
	rec = do(t, s, "GET", "/api/wallet", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wallet))
	assert.Equal(t, "125432.45", wallet.Total.StringFixed(2))

	var nav []model.NavItem
	rec = do(t, s, "GET", "/api/sections", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nav))
	assert.Len(t, nav, 8)

	var faq []model.FAQEntry
	rec = do(t, s, "GET", "/api/faq", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &faq))
	assert.Len(t, faq, 5)

	rec = do(t, s, "GET", "/healthz", "", "")
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHistoryEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, "GET", "/api/history?limit=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"symbol":"BTC/USDT","samples":[]}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, s, "GET", "/api/history?limit=-1", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, "GET", "/api/history?limit=x", "", "").Code)
}

func TestPageSections(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, "GET", "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="home"`)

	rec = do(t, s, "GET", "/section/trade", "", "")
	assert.Contains(t, rec.Body.String(), `id="trade"`)
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), `fill="url(#priceGradient)"`)

	rec = do(t, s, "GET", "/section/markets", "", "")
	assert.Contains(t, rec.Body.String(), "$67,450.23")
	assert.Contains(t, rec.Body.String(), "-1.23%")

	rec = do(t, s, "GET", "/section/wallet", "", "")
	assert.Contains(t, rec.Body.String(), "125,432.45")

	rec = do(t, s, "GET", "/section/bogus", "", "")
	assert.Contains(t, rec.Body.String(), `id="home"`)
}

func TestChartEndpoints(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, "GET", "/chart.svg", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "NaN")

	rec = do(t, s, "GET", "/chart.png", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	idle := newTestServer(t, false)
	assert.Equal(t, http.StatusNoContent, do(t, idle, "GET", "/chart.svg", "", "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, idle, "GET", "/chart.png", "", "").Code)
}

func TestContactEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, "POST", "/api/contact", "application/json",
		`{"name":"Ivan","email":"ivan@example.com","subject":"Fees","message":"What is the taker fee?"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var ack map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	_, err := uuid.Parse(ack["ticket"])
	assert.NoError(t, err)

	form := url.Values{"name": {"Ivan"}, "email": {"ivan@example.com"}, "message": {"hi"}}
	rec = do(t, s, "POST", "/api/contact", "application/x-www-form-urlencoded", form.Encode())
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, s, "POST", "/api/contact", "application/json", `{"name":"Ivan","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, s, "POST", "/api/contact", "application/json", `{"name":"Ivan"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, "POST", "/api/contact", "application/json", `{"email":"ivan@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, true)
	do(t, s, "GET", "/api/markets", "", "")

	rec := do(t, s, "GET", "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{code="200",route="GET /api/markets"} 1`)
}

func TestStream(t *testing.T) {
	s := newTestServer(t, true)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first seriesPayload
	require.NoError(t, conn.ReadJSON(&first))
	assert.Len(t, first.Samples, series.DefaultLength)

	require.Eventually(t, func() bool { return s.Feed.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	sample, ok := s.Feed.Tick()
	require.True(t, ok)

	var next seriesPayload
	require.NoError(t, conn.ReadJSON(&next))
	require.NotNil(t, next.Latest)
	assert.Equal(t, sample, *next.Latest)
	assert.Equal(t, first.Samples[1:], next.Samples[:len(next.Samples)-1])

	s.Feed.Deactivate()
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
