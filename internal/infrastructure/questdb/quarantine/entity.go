package quarantine

import (
	"time"
)

// Record holds a structurally invalid payload alongside the reason it was
// rejected. Quarantined records never reach the quality monitor or the main
// tables; they exist for operator inspection.
type Record struct {
	ID        string
	Timestamp time.Time
	Source    string
	Kind      string // "tick", "candle" or "metadata"
	Payload   string
	Reason    string
}

// Filter represents the filter criteria for quarantined records.
type Filter struct {
	Source string
	Kind   string
	From   *time.Time
	To     *time.Time
	Limit  int
}
