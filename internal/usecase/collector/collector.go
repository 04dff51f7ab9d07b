// Package collector assembles the recurring jobs the scheduler runs: one
// tick job per tick source, one candle job per (source, timeframe) and one
// metadata job per metadata source. Each job is a fetch-then-ingest cycle
// whose failures are reported to the scheduler, never fatal.
package collector

import (
	"context"
	"fmt"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/ingest"
	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/scheduler"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// Collector builds scheduler jobs over a fixed symbol universe.
type Collector struct {
	ingest  ingest.Usecase
	symbols []string
	logger  logger.Interface
}

// NewCollector creates a job builder for the given symbols.
func NewCollector(ingest ingest.Usecase, symbols []string, logger logger.Interface) *Collector {
	return &Collector{
		ingest:  ingest,
		symbols: symbols,
		logger:  logger,
	}
}

// TickJob returns the minute-cadence job collecting ticks from one source.
func (c *Collector) TickJob(fetcher source.TickFetcher) scheduler.Job {
	name := fmt.Sprintf("ticks:%s", fetcher.Name())
	return scheduler.Job{
		Name:    name,
		Cadence: interval.Interval1m,
		Run: func(ctx context.Context) error {
			batch, err := fetcher.FetchTicks(ctx, c.symbols)
			if err != nil {
				return c.fetchFailed(name, err)
			}

			result, err := c.ingest.IngestTicks(ctx, batch)
			c.logCycle(ctx, name, len(batch.Ticks), len(batch.Malformed), result)
			return err
		},
	}
}

// CandleJob returns the job collecting closed candles for one timeframe
// from one source, running on that timeframe's own cadence.
func (c *Collector) CandleJob(fetcher source.CandleFetcher, timeframe interval.Interval) scheduler.Job {
	name := fmt.Sprintf("candles:%s:%s", fetcher.Name(), timeframe.Name)
	return scheduler.Job{
		Name:    name,
		Cadence: timeframe,
		Run: func(ctx context.Context) error {
			batch, err := fetcher.FetchCandles(ctx, c.symbols, timeframe)
			if err != nil {
				return c.fetchFailed(name, err)
			}

			result, err := c.ingest.IngestCandles(ctx, batch)
			c.logCycle(ctx, name, len(batch.Candles), len(batch.Malformed), result)
			return err
		},
	}
}

// MetadataJob returns the job refreshing coin metadata from one source.
func (c *Collector) MetadataJob(fetcher source.MetadataFetcher, cadence interval.Interval) scheduler.Job {
	name := fmt.Sprintf("metadata:%s", fetcher.Name())
	return scheduler.Job{
		Name:    name,
		Cadence: cadence,
		Run: func(ctx context.Context) error {
			batch, err := fetcher.FetchMetadata(ctx, c.symbols)
			if err != nil {
				return c.fetchFailed(name, err)
			}

			result, err := c.ingest.IngestMetadata(ctx, batch)
			c.logCycle(ctx, name, len(batch.Metadata), len(batch.Malformed), result)
			return err
		},
	}
}

func (c *Collector) fetchFailed(name string, err error) error {
	if retryAfter, ok := source.AsRateLimited(err); ok && retryAfter > 0 {
		c.logger.Warn("source requested backoff",
			logger.Field{Key: "job", Value: name},
			logger.Field{Key: "retry_after", Value: retryAfter.String()},
		)
	}
	return err
}

func (c *Collector) logCycle(ctx context.Context, name string, fetched, malformed int, result *ingest.Result) {
	if result == nil {
		return
	}
	c.logger.InfoContext(ctx, "collection cycle finished",
		logger.Field{Key: "job", Value: name},
		logger.Field{Key: "fetched", Value: fetched},
		logger.Field{Key: "malformed", Value: malformed},
		logger.Field{Key: "stored", Value: result.Stored},
		logger.Field{Key: "quarantined", Value: result.Quarantined},
		logger.Field{Key: "duplicates", Value: result.Duplicates},
	)
}
