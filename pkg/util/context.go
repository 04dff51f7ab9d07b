package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const cycleIDKey = key("cycle-id")

// WithCycleID returns a context tagged with a collection cycle id, generating
// one when id is empty. Every log line produced during the cycle carries it,
// so one fetch can be followed through validation and storage.
func WithCycleID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, cycleIDKey, id)
}

// GetCycleID returns the cycle id from ctx, empty when the context is not
// tagged.
func GetCycleID(ctx context.Context) string {
	id, _ := ctx.Value(cycleIDKey).(string)
	return id
}
