// Package alert defines the contract for pushing quality alerts to
// downstream consumers.
package alert

import (
	"context"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
)

//go:generate mockgen -source=interface.go -destination=mock/publisher_mock.go -package=mock

// Publisher publishes severity-flagged verdicts. Publishing is best effort;
// a publish failure must never block ingestion.
type Publisher interface {
	PublishVerdict(ctx context.Context, v *verdict.Verdict) error
}
