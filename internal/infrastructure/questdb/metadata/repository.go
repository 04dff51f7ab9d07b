package metadata

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Repository represents the repository for coin metadata.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new metadata repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a coin metadata snapshot.
func (r *Repository) Store(ctx context.Context, metadata *Metadata) error {
	query := `INSERT INTO coin_metadata (timestamp, coin_id, symbol, name, market_cap_rank, categories, website_url, github_url, source)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	err := r.client.Exec(ctx, query,
		metadata.Timestamp, metadata.CoinID, metadata.Symbol, metadata.Name,
		metadata.MarketCapRank, metadata.Categories, metadata.WebsiteURL, metadata.GithubURL, metadata.Source)

	if err != nil {
		return fmt.Errorf("failed to store metadata: %w", err)
	}

	return nil
}

// GetLatestBySymbol retrieves the latest metadata snapshot for a symbol.
func (r *Repository) GetLatestBySymbol(ctx context.Context, symbol string) (*Metadata, error) {
	query := `SELECT timestamp, coin_id, symbol, name, market_cap_rank, categories, website_url, github_url, source
			  FROM coin_metadata
			  WHERE symbol = $1
			  ORDER BY timestamp DESC
			  LIMIT 1`

	metadata := &Metadata{}
	err := r.client.QueryRow(ctx, query, symbol).Scan(
		&metadata.Timestamp, &metadata.CoinID, &metadata.Symbol, &metadata.Name,
		&metadata.MarketCapRank, &metadata.Categories, &metadata.WebsiteURL, &metadata.GithubURL, &metadata.Source)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest metadata: %w", err)
	}

	return metadata, nil
}
