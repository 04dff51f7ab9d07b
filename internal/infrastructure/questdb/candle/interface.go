package candle

import (
	"context"
	"time"
)

// CandleRepository is the interface for the candle repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type CandleRepository interface {
	Exists(ctx context.Context, symbol string, timestamp time.Time, timeframe string) (bool, error)
	GetBaselineSamples(ctx context.Context, symbol, timeframe string, from time.Time) ([]BaselineSample, error)
	GetByFilter(ctx context.Context, filter Filter) ([]*Candle, error)
	GetLatest(ctx context.Context, symbol, timeframe string) (*Candle, error)
	Store(ctx context.Context, candle *Candle) error
	StoreBatch(ctx context.Context, candles []*Candle) error
}
