// Package ingest defines the contract of the ingestion coordinator, the
// single path every fetched batch takes into storage.
package ingest

import (
	"context"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
)

//go:generate mockgen -source=interface.go -destination=mock/ingest_mock.go -package=mock

// Result summarizes what happened to one batch.
type Result struct {
	Stored      int
	Quarantined int
	Duplicates  int
}

// Usecase routes batches through structural validation, duplicate dropping,
// quality scoring and storage dispatch.
type Usecase interface {
	IngestCandles(ctx context.Context, batch *source.CandleBatch) (*Result, error)
	IngestMetadata(ctx context.Context, batch *source.MetadataBatch) (*Result, error)
	IngestTicks(ctx context.Context, batch *source.TickBatch) (*Result, error)
}
