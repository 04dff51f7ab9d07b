package ingest

import (
	"fmt"
	"math"
	"time"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/metadata"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
)

// finiteNonNegative rejects NaN, infinities and negative values. Zero is
// legal: an empty bucket is a real observation.
func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func structural(field, format string, args ...any) *errors.ErrorDetails {
	return errors.NewFieldError(errors.StructuralValidationError, field, fmt.Sprintf(format, args...))
}

// validateTick returns nil when the tick is structurally sound, otherwise the
// detail that becomes the quarantine reason.
func validateTick(t *tick.Tick) *errors.ErrorDetails {
	switch {
	case t.Symbol == "":
		return structural("symbol", "missing symbol")
	case t.Source == "":
		return structural("source", "missing source")
	case t.Timestamp.IsZero():
		return structural("timestamp", "missing timestamp")
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"price", t.Price},
		{"volume", t.Volume},
		{"bid", t.Bid},
		{"ask", t.Ask},
	}
	for _, f := range fields {
		if !finiteNonNegative(f.value) {
			return structural(f.name, "%s %v is not a finite non-negative number", f.name, f.value)
		}
	}

	if !t.Timestamp.UTC().Truncate(time.Minute).Equal(t.Timestamp.UTC()) {
		return structural("timestamp", "timestamp %s is not minute-aligned", t.Timestamp.UTC().Format(time.RFC3339Nano))
	}
	return nil
}

// validateCandle returns nil when the candle is structurally sound, otherwise
// the detail that becomes the quarantine reason.
func validateCandle(c *candle.Candle) *errors.ErrorDetails {
	switch {
	case c.Symbol == "":
		return structural("symbol", "missing symbol")
	case c.Source == "":
		return structural("source", "missing source")
	case c.Timestamp.IsZero():
		return structural("timestamp", "missing timestamp")
	}

	iv, err := interval.GetInterval(c.Timeframe)
	if err != nil {
		return structural("timeframe", "unsupported timeframe %q", c.Timeframe)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"open", c.Open},
		{"high", c.High},
		{"low", c.Low},
		{"close", c.Close},
		{"volume", c.Volume},
	}
	for _, f := range fields {
		if !finiteNonNegative(f.value) {
			return structural(f.name, "%s %v is not a finite non-negative number", f.name, f.value)
		}
	}
	if c.TradeCount < 0 {
		return structural("trade_count", "trade count %d is negative", c.TradeCount)
	}
	if c.High < c.Low {
		return structural("high", "high %v is below low %v", c.High, c.Low)
	}

	if !iv.IsAligned(c.Timestamp) {
		return structural("timestamp", "timestamp %s is not aligned to a %s boundary", c.Timestamp.UTC().Format(time.RFC3339Nano), c.Timeframe)
	}
	return nil
}

// validateMetadata returns nil when the metadata record is structurally
// sound, otherwise the detail that becomes the quarantine reason.
func validateMetadata(m *metadata.Metadata) *errors.ErrorDetails {
	switch {
	case m.CoinID == "":
		return structural("coin_id", "missing coin id")
	case m.Symbol == "":
		return structural("symbol", "missing symbol")
	case m.Source == "":
		return structural("source", "missing source")
	case m.Timestamp.IsZero():
		return structural("timestamp", "missing timestamp")
	}
	return nil
}
