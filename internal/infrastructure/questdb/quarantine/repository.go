package quarantine

import (
	"context"
	"fmt"

	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Repository represents the repository for quarantined records.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new quarantine repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a quarantined record.
func (r *Repository) Store(ctx context.Context, record *Record) error {
	query := `INSERT INTO quarantined_records (id, timestamp, source, kind, payload, reason)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	err := r.client.Exec(ctx, query,
		record.ID, record.Timestamp, record.Source, record.Kind, record.Payload, record.Reason)

	if err != nil {
		return fmt.Errorf("failed to store quarantined record: %w", err)
	}

	return nil
}

// GetByFilter retrieves quarantined records by filter.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Record, error) {
	query := "SELECT id, timestamp, source, kind, payload, reason FROM quarantined_records WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argIndex)
		args = append(args, filter.Source)
		argIndex++
	}

	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIndex)
		args = append(args, filter.Kind)
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
		return nil, fmt.Errorf("failed to query quarantined records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		err := rows.Scan(&record.ID, &record.Timestamp, &record.Source, &record.Kind, &record.Payload, &record.Reason)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quarantined record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
