package candle

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Repository represents the repository for candle data.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new candle repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a candle data point.
func (r *Repository) Store(ctx context.Context, candle *Candle) error {
	query := `INSERT INTO candles (timestamp, symbol, timeframe, open, high, low, close, volume, trade_count, source)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	err := r.client.Exec(ctx, query,
		candle.Timestamp, candle.Symbol, candle.Timeframe, candle.Open, candle.High,
		candle.Low, candle.Close, candle.Volume, candle.TradeCount, candle.Source)

	if err != nil {
		return fmt.Errorf("failed to store candle: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of candle data points.
func (r *Repository) StoreBatch(ctx context.Context, candles []*Candle) error {
	if len(candles) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"candles"},
		[]string{"timestamp", "symbol", "timeframe", "open", "high", "low", "close", "volume", "trade_count", "source"},
		pgx.CopyFromSlice(len(candles), func(i int) ([]any, error) {
			candle := candles[i]
			return []any{
				candle.Timestamp,
				candle.Symbol,
				candle.Timeframe,
				candle.Open,
				candle.High,
				candle.Low,
				candle.Close,
				candle.Volume,
				candle.TradeCount,
				candle.Source,
			}, nil
		}),
	)

	if err != nil {
		return fmt.Errorf("failed to copy candles: %w", err)
	}

	return nil
}

// Exists reports whether a candle with the given unique key is already stored.
func (r *Repository) Exists(ctx context.Context, symbol string, timestamp time.Time, timeframe string) (bool, error) {
	query := `SELECT count() FROM candles
			  WHERE symbol = $1 AND timestamp = $2 AND timeframe = $3`

	var count int64
	err := r.client.QueryRow(ctx, query, symbol, timestamp, timeframe).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check candle existence: %w", err)
	}

	return count > 0, nil
}

// GetBaselineSamples retrieves the volume/trade-count history for a
// (symbol, timeframe) pair since `from`, oldest first, so the quality
// monitor can rebuild its baseline after a restart.
func (r *Repository) GetBaselineSamples(ctx context.Context, symbol, timeframe string, from time.Time) ([]BaselineSample, error) {
	query := `SELECT timestamp, volume, trade_count FROM candles
			  WHERE symbol = $1 AND timeframe = $2 AND timestamp >= $3
			  ORDER BY timestamp ASC`

	rows, err := r.client.Query(ctx, query, symbol, timeframe, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query baseline samples: %w", err)
	}
	defer rows.Close()

	var samples []BaselineSample
	for rows.Next() {
		var sample BaselineSample
		if err := rows.Scan(&sample.Timestamp, &sample.Volume, &sample.TradeCount); err != nil {
			return nil, fmt.Errorf("failed to scan baseline sample: %w", err)
		}
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return samples, nil
}

// GetByFilter retrieves candle data points by filter.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Candle, error) {
	query := "SELECT timestamp, symbol, timeframe, open, high, low, close, volume, trade_count, source FROM candles WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.Timeframe != "" {
		query += fmt.Sprintf(" AND timeframe = $%d", argIndex)
		args = append(args, filter.Timeframe)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candles: %w", err)
	}
	defer rows.Close()

	var candles []*Candle
	for rows.Next() {
		candle := &Candle{}
		err := rows.Scan(&candle.Timestamp, &candle.Symbol, &candle.Timeframe, &candle.Open,
			&candle.High, &candle.Low, &candle.Close, &candle.Volume, &candle.TradeCount, &candle.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candle: %w", err)
		}
		candles = append(candles, candle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return candles, nil
}

// GetLatest retrieves the latest candle for a symbol and timeframe.
func (r *Repository) GetLatest(ctx context.Context, symbol, timeframe string) (*Candle, error) {
	query := `SELECT timestamp, symbol, timeframe, open, high, low, close, volume, trade_count, source
			  FROM candles
			  WHERE symbol = $1 AND timeframe = $2
			  ORDER BY timestamp DESC
			  LIMIT 1`

	candle := &Candle{}
	err := r.client.QueryRow(ctx, query, symbol, timeframe).Scan(
		&candle.Timestamp, &candle.Symbol, &candle.Timeframe, &candle.Open,
		&candle.High, &candle.Low, &candle.Close, &candle.Volume, &candle.TradeCount, &candle.Source)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest candle: %w", err)
	}

	return candle, nil
}
