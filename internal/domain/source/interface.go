// Package source defines the contracts every market-data source adapter
// implements. Adapters normalize source-specific payloads into canonical
// tick/candle/metadata records; a malformed element never discards the rest
// of its batch, it is returned in the batch's Malformed list instead.
package source

import (
	"context"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/metadata"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
)

//go:generate mockgen -source=interface.go -destination=mock/source_mock.go -package=mock

// MalformedRecord is a single batch element the adapter could not decode,
// kept with its raw payload so it can be quarantined with a reason.
type MalformedRecord struct {
	Payload string
	Reason  string
}

// TickBatch is the normalized result of one tick fetch.
type TickBatch struct {
	Source    string
	Ticks     []*tick.Tick
	Malformed []MalformedRecord
}

// CandleBatch is the normalized result of one candle fetch.
type CandleBatch struct {
	Source    string
	Candles   []*candle.Candle
	Malformed []MalformedRecord
}

// MetadataBatch is the normalized result of one metadata fetch.
type MetadataBatch struct {
	Source    string
	Metadata  []*metadata.Metadata
	Malformed []MalformedRecord
}

// TickFetcher fetches minute ticks for a set of symbols.
type TickFetcher interface {
	Name() string
	FetchTicks(ctx context.Context, symbols []string) (*TickBatch, error)
}

// CandleFetcher fetches closed candles for a set of symbols and a timeframe.
type CandleFetcher interface {
	Name() string
	FetchCandles(ctx context.Context, symbols []string, timeframe interval.Interval) (*CandleBatch, error)
}

// MetadataFetcher fetches coin metadata for a set of symbols.
type MetadataFetcher interface {
	Name() string
	FetchMetadata(ctx context.Context, symbols []string) (*MetadataBatch, error)
}
