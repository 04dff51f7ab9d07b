package metadata

import (
	"context"
)

// MetadataRepository is the interface for the coin metadata repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type MetadataRepository interface {
	GetLatestBySymbol(ctx context.Context, symbol string) (*Metadata, error)
	Store(ctx context.Context, metadata *Metadata) error
}
