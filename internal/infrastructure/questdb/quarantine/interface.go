package quarantine

import (
	"context"
)

// QuarantineRepository is the interface for the quarantine repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type QuarantineRepository interface {
	GetByFilter(ctx context.Context, filter Filter) ([]*Record, error)
	Store(ctx context.Context, record *Record) error
}
