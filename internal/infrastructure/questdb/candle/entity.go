package candle

import (
	"fmt"
	"time"
)

// Candle represents a single OHLCV data point aggregated over a timeframe
// bucket. Candles are immutable once accepted.
type Candle struct {
	Timestamp  time.Time
	Symbol     string
	Timeframe  string // Use interval.IsValidInterval for validation
	Open       float64
	High       float64
	Low        float64
	Close      float64
	Volume     float64
	TradeCount int64
	Source     string
}

// Key returns the unique key for this candle. A candle is unique per
// (symbol, timestamp, timeframe).
func (c *Candle) Key() string {
	return fmt.Sprintf("candle|%s|%d|%s", c.Symbol, c.Timestamp.UTC().UnixMilli(), c.Timeframe)
}

// Filter represents the filter criteria for candle data.
type Filter struct {
	Symbol    string
	Timeframe string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// BaselineSample is the volume/trade-count pair the quality monitor feeds
// its rolling baselines with on warm-up.
type BaselineSample struct {
	Timestamp  time.Time
	Volume     float64
	TradeCount int64
}
