package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	lg, err := logger.NewLogger()
	require.NoError(t, err)

	return NewClient(Config{
		BaseURL:           server.URL,
		QuoteAsset:        "USDT",
		RequestsPerSecond: 1000,
		Burst:             100,
		Timeout:           2 * time.Second,
		CandleLookback:    3,
	}, lg)
}

func TestFetchTicks(t *testing.T) {
	closeTime := time.Date(2025, 3, 14, 12, 0, 37, 0, time.UTC)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/24hr", r.URL.Path)
		symbol := r.URL.Query().Get("symbol")
		assert.Contains(t, []string{"BTCUSDT", "ETHUSDT"}, symbol)

		json.NewEncoder(w).Encode(map[string]any{
			"symbol":    symbol,
			"lastPrice": "50000.10",
			"bidPrice":  "49999.90",
			"askPrice":  "50000.30",
			"volume":    "123.45",
			"closeTime": closeTime.UnixMilli(),
		})
	})

	c := newTestClient(t, handler)
	batch, err := c.FetchTicks(context.Background(), []string{"BTC", "ETH"})
	require.NoError(t, err)
	require.Len(t, batch.Ticks, 2)
	assert.Empty(t, batch.Malformed)
	assert.Equal(t, SourceName, batch.Source)

	tk := batch.Ticks[0]
	assert.Equal(t, "BTC", tk.Symbol)
	assert.Equal(t, 50000.10, tk.Price)
	assert.Equal(t, 49999.90, tk.Bid)
	assert.Equal(t, 50000.30, tk.Ask)
	assert.Equal(t, 123.45, tk.Volume)
	// The snapshot lands on its minute boundary.
	assert.Equal(t, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC), tk.Timestamp)
	assert.Equal(t, SourceName, tk.Source)
}

func TestFetchTicks_UnparseablePriceGoesMalformed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"symbol":    "BTCUSDT",
			"lastPrice": "not-a-number",
			"bidPrice":  "49999.90",
			"askPrice":  "50000.30",
			"volume":    "123.45",
			"closeTime": time.Now().UnixMilli(),
		})
	})

	c := newTestClient(t, handler)
	batch, err := c.FetchTicks(context.Background(), []string{"BTC"})
	require.NoError(t, err)
	assert.Empty(t, batch.Ticks)
	require.Len(t, batch.Malformed, 1)
	assert.Contains(t, batch.Malformed[0].Reason, "lastPrice")
	assert.NotEmpty(t, batch.Malformed[0].Payload)
}

func TestFetchTicks_RateLimited(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c := newTestClient(t, handler)
	_, err := c.FetchTicks(context.Background(), []string{"BTC", "ETH"})
	require.Error(t, err)

	retryAfter, ok := source.AsRateLimited(err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, retryAfter)
}

func TestFetchTicks_AllSymbolsUnavailable(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := newTestClient(t, handler)
	_, err := c.FetchTicks(context.Background(), []string{"BTC"})
	require.Error(t, err)

	var unavailable *source.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.Status)
}

func kline(openTime time.Time, volume string, trades int) []any {
	return []any{
		openTime.UnixMilli(),
		"100.0", "101.0", "99.0", "100.5", volume,
		openTime.Add(time.Minute).UnixMilli() - 1,
		"1250.0", trades, "60.0", "600.0", "0",
	}
}

func TestFetchCandles_DropsOpenBucket(t *testing.T) {
	current := time.Now().UTC().Truncate(time.Minute)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1m", r.URL.Query().Get("interval"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode([]any{
			kline(current.Add(-2*time.Minute), "10.0", 100),
			kline(current.Add(-time.Minute), "11.0", 110),
			kline(current, "0.5", 3), // still accumulating
		})
	})

	c := newTestClient(t, handler)
	batch, err := c.FetchCandles(context.Background(), []string{"BTC"}, interval.Interval1m)
	require.NoError(t, err)
	require.Len(t, batch.Candles, 2)
	assert.Empty(t, batch.Malformed)

	first := batch.Candles[0]
	assert.Equal(t, current.Add(-2*time.Minute), first.Timestamp)
	assert.Equal(t, "BTC", first.Symbol)
	assert.Equal(t, "1m", first.Timeframe)
	assert.Equal(t, 100.0, first.Open)
	assert.Equal(t, 101.0, first.High)
	assert.Equal(t, 99.0, first.Low)
	assert.Equal(t, 100.5, first.Close)
	assert.Equal(t, 10.0, first.Volume)
	assert.Equal(t, int64(100), first.TradeCount)
}

func TestFetchCandles_MalformedElementKeepsRest(t *testing.T) {
	current := time.Now().UTC().Truncate(time.Minute)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{
			kline(current.Add(-3*time.Minute), "10.0", 100),
			kline(current.Add(-2*time.Minute), "garbage", 110),
			kline(current.Add(-time.Minute), "12.0", 120),
		})
	})

	c := newTestClient(t, handler)
	batch, err := c.FetchCandles(context.Background(), []string{"BTC"}, interval.Interval1m)
	require.NoError(t, err)
	assert.Len(t, batch.Candles, 2)
	require.Len(t, batch.Malformed, 1)
	assert.Contains(t, batch.Malformed[0].Reason, "volume")
}

func TestFetchCandles_MalformedBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	})

	c := newTestClient(t, handler)
	_, err := c.FetchCandles(context.Background(), []string{"BTC"}, interval.Interval1m)
	require.Error(t, err)

	var malformed *source.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}
