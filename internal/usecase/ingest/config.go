package ingest

import "time"

// Config holds the ingestion coordinator configuration.
type Config struct {
	// StorageRetries is how many times a failed storage write is attempted
	// before the batch is surfaced to the caller as degraded.
	StorageRetries int `env:"STORAGE_RETRIES" envDefault:"3"`

	// StorageRetryBackoff is the initial delay between storage attempts;
	// it doubles on every retry.
	StorageRetryBackoff time.Duration `env:"STORAGE_RETRY_BACKOFF" envDefault:"200ms"`

	// DedupCacheSize bounds the in-memory set of recently ingested record
	// keys. When a key ages out, duplicate detection falls back to a
	// storage existence check.
	DedupCacheSize int `env:"DEDUP_CACHE_SIZE" envDefault:"100000"`
}
