package tick

import (
	"fmt"
	"time"
)

// Tick represents a single minute-aligned price observation for a symbol
// from one source. Ticks are immutable once accepted.
type Tick struct {
	Timestamp time.Time
	Symbol    string
	Price     float64
	Volume    float64
	Bid       float64
	Ask       float64
	Source    string
}

// Key returns the unique key for this tick. A tick is unique per
// (symbol, timestamp, source).
func (t *Tick) Key() string {
	return fmt.Sprintf("tick|%s|%d|%s", t.Symbol, t.Timestamp.UTC().UnixMilli(), t.Source)
}

// Filter represents the filter criteria for tick data.
type Filter struct {
	Symbol string
	Source string
	From   *time.Time
	To     *time.Time
	Limit  int
}
