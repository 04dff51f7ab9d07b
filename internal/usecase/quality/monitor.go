// Package quality implements the adaptive data-quality monitor. Each
// (symbol, timeframe) pair owns a rolling baseline of observed volume and
// trade counts; batches are scored against a low-percentile floor of that
// history, scaled by a time-of-day multiplier table.
package quality

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// Monitor maintains rolling baselines and classifies incoming batches.
type Monitor struct {
	config     Config
	candleRepo candle.CandleRepository
	logger     logger.Interface

	multipliers [24]float64

	mu        sync.RWMutex
	baselines map[string]*baseline
}

// NewMonitor creates a new quality monitor with injected configuration.
func NewMonitor(config Config, candleRepo candle.CandleRepository, logger logger.Interface) *Monitor {
	return &Monitor{
		config:      config,
		candleRepo:  candleRepo,
		logger:      logger,
		multipliers: config.hourMultipliers(),
		baselines:   make(map[string]*baseline),
	}
}

func baselineKey(symbol, timeframe string) string {
	return symbol + "|" + timeframe
}

// baselineFor returns the baseline for a key, creating it on first use.
func (m *Monitor) baselineFor(symbol, timeframe string) *baseline {
	key := baselineKey(symbol, timeframe)

	m.mu.RLock()
	b, ok := m.baselines[key]
	m.mu.RUnlock()
	if ok {
		return b
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok = m.baselines[key]; ok {
		return b
	}
	b = newBaseline(m.config.WindowSamples)
	m.baselines[key] = b
	return b
}

// SampleCount returns how many samples the baseline currently holds.
func (m *Monitor) SampleCount(symbol, timeframe string) int {
	m.mu.RLock()
	b, ok := m.baselines[baselineKey(symbol, timeframe)]
	m.mu.RUnlock()
	if !ok {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.volume.len()
}

// ScoreCandle scores one candle's volume and trade count against the
// (symbol, timeframe) baseline and records the observation.
func (m *Monitor) ScoreCandle(ctx context.Context, c *candle.Candle) *verdict.Verdict {
	return m.score(ctx, c.Symbol, c.Timeframe, c.Timestamp, c.Volume, float64(c.TradeCount), true)
}

// ScoreTick scores one tick's volume against the symbol's tick baseline.
// Ticks carry no trade count so the trade tier never raises severity.
func (m *Monitor) ScoreTick(ctx context.Context, t *tick.Tick) *verdict.Verdict {
	return m.score(ctx, t.Symbol, TimeframeTick, t.Timestamp, t.Volume, 0, false)
}

func (m *Monitor) score(ctx context.Context, symbol, timeframe string, timestamp time.Time, volume, trades float64, judgeTrades bool) *verdict.Verdict {
	b := m.baselineFor(symbol, timeframe)

	b.mu.Lock()
	defer b.mu.Unlock()

	v := &verdict.Verdict{
		Timestamp:    timestamp,
		Symbol:       symbol,
		Timeframe:    timeframe,
		VolumeActual: volume,
		TradesActual: int64(trades),
		Severity:     verdict.SeverityNone,
	}

	if b.volume.len() < m.config.minSamples() {
		// Collecting: no judgement possible yet. Report the seed
		// minimums so operators can see what would apply.
		v.BaselineComplete = false
		v.VolumeThreshold = seedMinVolume[timeframe]
		v.TradesThreshold = seedMinTrades[timeframe]
		m.record(b, symbol, timeframe, timestamp, volume, trades)
		return v
	}

	multiplier := m.multipliers[timestamp.UTC().Hour()]
	v.BaselineComplete = true
	v.VolumeThreshold = b.volume.percentile(m.config.Percentile) * multiplier
	v.VolumeDeficit = deficit(v.VolumeThreshold, volume)
	v.Severity = severityForDeficit(v.VolumeDeficit)

	if judgeTrades {
		v.TradesThreshold = b.trades.percentile(m.config.Percentile) * multiplier
		v.TradesDeficit = deficit(v.TradesThreshold, trades)
		v.Severity = v.Severity.Max(severityForDeficit(v.TradesDeficit))
	}

	m.record(b, symbol, timeframe, timestamp, volume, trades)
	return v
}

// record adds a sample to an already-locked baseline and logs build
// progress while collecting.
func (m *Monitor) record(b *baseline, symbol, timeframe string, timestamp time.Time, volume, trades float64) {
	if !b.observe(timestamp, volume, trades) {
		return
	}

	min := int64(m.config.minSamples())
	if b.observed <= min && b.observed%10 == 0 {
		m.logger.Info("building quality baseline",
			logger.Field{Key: "symbol", Value: symbol},
			logger.Field{Key: "timeframe", Value: timeframe},
			logger.Field{Key: "samples", Value: b.observed},
			logger.Field{Key: "required", Value: min},
		)
	}
}

// WarmUp rebuilds baselines from stored candle history so a restart does not
// reset the Collecting->Active transition.
func (m *Monitor) WarmUp(ctx context.Context, symbols []string, timeframes []string) error {
	from := time.Now().UTC().Add(-m.config.InitWindow)

	for _, symbol := range symbols {
		for _, timeframe := range timeframes {
			samples, err := m.candleRepo.GetBaselineSamples(ctx, symbol, timeframe, from)
			if err != nil {
				return errors.TracerFromError(fmt.Errorf("loading baseline for %s %s: %w", symbol, timeframe, err))
			}
			if len(samples) == 0 {
				m.logger.Warn("no historical data for baseline",
					logger.Field{Key: "symbol", Value: symbol},
					logger.Field{Key: "timeframe", Value: timeframe},
				)
				continue
			}

			b := m.baselineFor(symbol, timeframe)
			b.mu.Lock()
			for _, sample := range samples {
				b.observe(sample.Timestamp, sample.Volume, float64(sample.TradeCount))
			}
			count := b.volume.len()
			b.mu.Unlock()

			m.logger.Info("baseline warmed up from storage",
				logger.Field{Key: "symbol", Value: symbol},
				logger.Field{Key: "timeframe", Value: timeframe},
				logger.Field{Key: "samples", Value: count},
			)
		}
	}

	return nil
}

// deficit returns how far actual falls below threshold, as a fraction of the
// threshold, clamped at zero. A non-positive threshold never produces a
// deficit.
func deficit(threshold, actual float64) float64 {
	if threshold <= 0 || actual >= threshold {
		return 0
	}
	return (threshold - actual) / threshold
}

// severityForDeficit maps a deficit fraction to a severity tier. Tier upper
// bounds are inclusive: a deficit of exactly 0.25 is still low.
func severityForDeficit(d float64) verdict.Severity {
	switch {
	case d <= 0:
		return verdict.SeverityNone
	case d <= 0.25:
		return verdict.SeverityLow
	case d <= 0.5:
		return verdict.SeverityMedium
	default:
		return verdict.SeverityHigh
	}
}
