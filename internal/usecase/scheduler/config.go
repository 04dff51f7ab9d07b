package scheduler

import "time"

// Config holds the collection scheduler configuration.
type Config struct {
	// InitialBackoff is the delay after a job's first consecutive failure.
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"1s"`

	// MaxBackoff caps the exponential failure backoff.
	MaxBackoff time.Duration `env:"MAX_BACKOFF" envDefault:"60s"`

	// DegradedAfter is how many consecutive failures mark a job degraded.
	// A degraded job keeps running on its cadence; the marker only changes
	// what gets logged.
	DegradedAfter int `env:"DEGRADED_AFTER" envDefault:"5"`
}
