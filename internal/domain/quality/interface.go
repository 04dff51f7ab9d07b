// Package quality defines the contract of the data-quality monitor: rolling
// per-(symbol, timeframe) baselines that turn raw volume/trade observations
// into severity-tagged verdicts.
package quality

import (
	"context"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
)

//go:generate mockgen -source=interface.go -destination=mock/monitor_mock.go -package=mock

// Monitor scores incoming records against adaptive baselines. Scoring is
// synchronous and never blocks ingestion; a verdict is produced for every
// call, including while a baseline is still collecting.
type Monitor interface {
	SampleCount(symbol, timeframe string) int
	ScoreCandle(ctx context.Context, c *candle.Candle) *verdict.Verdict
	ScoreTick(ctx context.Context, t *tick.Tick) *verdict.Verdict
	WarmUp(ctx context.Context, symbols []string, timeframes []string) error
}
