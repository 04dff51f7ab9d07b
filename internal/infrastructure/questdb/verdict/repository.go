package verdict

import (
	"context"
	"fmt"

	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Repository represents the repository for validation verdicts.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new verdict repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a validation verdict.
func (r *Repository) Store(ctx context.Context, verdict *Verdict) error {
	query := `INSERT INTO validation_verdicts (timestamp, symbol, timeframe, volume_actual, volume_threshold, volume_deficit, trades_actual, trades_threshold, trades_deficit, baseline_complete, severity)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	err := r.client.Exec(ctx, query,
		verdict.Timestamp, verdict.Symbol, verdict.Timeframe,
		verdict.VolumeActual, verdict.VolumeThreshold, verdict.VolumeDeficit,
		verdict.TradesActual, verdict.TradesThreshold, verdict.TradesDeficit,
		verdict.BaselineComplete, string(verdict.Severity))

	if err != nil {
		return fmt.Errorf("failed to store verdict: %w", err)
	}

	return nil
}

// GetByFilter retrieves validation verdicts by filter.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Verdict, error) {
	query := `SELECT timestamp, symbol, timeframe, volume_actual, volume_threshold, volume_deficit, trades_actual, trades_threshold, trades_deficit, baseline_complete, severity FROM validation_verdicts WHERE 1=1`
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

	if filter.Severity != "" {
		query += fmt.Sprintf(" AND severity = $%d", argIndex)
		args = append(args, string(filter.Severity))
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
		return nil, fmt.Errorf("failed to query verdicts: %w", err)
	}
	defer rows.Close()

	var verdicts []*Verdict
	for rows.Next() {
		v := &Verdict{}
		var severity string
		err := rows.Scan(&v.Timestamp, &v.Symbol, &v.Timeframe,
			&v.VolumeActual, &v.VolumeThreshold, &v.VolumeDeficit,
			&v.TradesActual, &v.TradesThreshold, &v.TradesDeficit,
			&v.BaselineComplete, &severity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verdict: %w", err)
		}
		v.Severity = Severity(severity)
		verdicts = append(verdicts, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return verdicts, nil
}
