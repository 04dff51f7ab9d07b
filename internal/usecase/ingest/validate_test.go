package ingest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
)

func TestValidateTick(t *testing.T) {
	aligned := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	base := func() *tick.Tick {
		return &tick.Tick{
			Timestamp: aligned,
			Symbol:    "BTC",
			Price:     50000,
			Volume:    10,
			Bid:       49999,
			Ask:       50001,
			Source:    "binance",
		}
	}

	testCases := []struct {
		name   string
		mutate func(*tick.Tick)
		reason string
	}{
		{name: "valid", mutate: func(*tick.Tick) {}, reason: ""},
		{name: "zero volume is valid", mutate: func(tk *tick.Tick) { tk.Volume = 0 }, reason: ""},
		{name: "missing symbol", mutate: func(tk *tick.Tick) { tk.Symbol = "" }, reason: "missing symbol"},
		{name: "missing source", mutate: func(tk *tick.Tick) { tk.Source = "" }, reason: "missing source"},
		{name: "zero timestamp", mutate: func(tk *tick.Tick) { tk.Timestamp = time.Time{} }, reason: "missing timestamp"},
		{name: "negative price", mutate: func(tk *tick.Tick) { tk.Price = -5 }, reason: "price"},
		{name: "NaN price", mutate: func(tk *tick.Tick) { tk.Price = math.NaN() }, reason: "price"},
		{name: "infinite volume", mutate: func(tk *tick.Tick) { tk.Volume = math.Inf(1) }, reason: "volume"},
		{name: "negative bid", mutate: func(tk *tick.Tick) { tk.Bid = -1 }, reason: "bid"},
		{name: "misaligned timestamp", mutate: func(tk *tick.Tick) { tk.Timestamp = aligned.Add(7 * time.Second) }, reason: "minute-aligned"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := base()
			tc.mutate(tk)
			detail := validateTick(tk)
			if tc.reason == "" {
				assert.Nil(t, detail)
			} else {
				assert.Contains(t, detail.Message, tc.reason)
				assert.Equal(t, errors.StructuralValidationError, errors.CodeOf(detail))
			}
		})
	}
}

func TestValidateCandle(t *testing.T) {
	base := func() *candle.Candle {
		return &candle.Candle{
			Timestamp:  time.Date(2025, 3, 14, 12, 15, 0, 0, time.UTC),
			Symbol:     "BTC",
			Timeframe:  "15m",
			Open:       100,
			High:       105,
			Low:        95,
			Close:      102,
			Volume:     10,
			TradeCount: 25,
			Source:     "binance",
		}
	}

	testCases := []struct {
		name   string
		mutate func(*candle.Candle)
		reason string
	}{
		{name: "valid", mutate: func(*candle.Candle) {}, reason: ""},
		{name: "zero trade count is valid", mutate: func(c *candle.Candle) { c.TradeCount = 0 }, reason: ""},
		{name: "unsupported timeframe", mutate: func(c *candle.Candle) { c.Timeframe = "3m" }, reason: "timeframe"},
		{name: "negative trade count", mutate: func(c *candle.Candle) { c.TradeCount = -1 }, reason: "trade count"},
		{name: "negative low", mutate: func(c *candle.Candle) { c.Low = -1 }, reason: "low"},
		{name: "high below low", mutate: func(c *candle.Candle) { c.High = 90 }, reason: "below low"},
		{
			name:   "timestamp off the bucket boundary",
			mutate: func(c *candle.Candle) { c.Timestamp = c.Timestamp.Add(time.Minute) },
			reason: "boundary",
		},
		{
			name: "daily candle off midnight",
			mutate: func(c *candle.Candle) {
				c.Timeframe = "1d"
				c.Timestamp = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
			},
			reason: "boundary",
		},
		{
			name: "daily candle at midnight is valid",
			mutate: func(c *candle.Candle) {
				c.Timeframe = "1d"
				c.Timestamp = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
			},
			reason: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			detail := validateCandle(c)
			if tc.reason == "" {
				assert.Nil(t, detail)
			} else {
				assert.Contains(t, detail.Message, tc.reason)
				assert.Equal(t, errors.StructuralValidationError, errors.CodeOf(detail))
			}
		})
	}
}
