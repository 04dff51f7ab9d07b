package verdict

import (
	"context"
)

// VerdictRepository is the interface for the verdict repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type VerdictRepository interface {
	GetByFilter(ctx context.Context, filter Filter) ([]*Verdict, error)
	Store(ctx context.Context, verdict *Verdict) error
}
