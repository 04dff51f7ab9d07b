package verdict

import (
	"time"
)

// Severity classifies how far a batch's volume/trade count falls below its
// expected threshold.
type Severity string

const (
	// SeverityNone means the batch met every threshold, or no judgement was
	// possible because the baseline is still collecting.
	SeverityNone Severity = "none"
	// SeverityLow means a deficit of up to 25% below threshold.
	SeverityLow Severity = "low"
	// SeverityMedium means a deficit of more than 25% and up to 50%.
	SeverityMedium Severity = "medium"
	// SeverityHigh means a deficit of more than 50%.
	SeverityHigh Severity = "high"
)

var severityRank = map[Severity]int{
	SeverityNone:   0,
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

// Rank returns the ordering of a severity, none < low < medium < high.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Max returns the more severe of s and other.
func (s Severity) Max(other Severity) Severity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// Verdict is the audit record produced for every batch the quality monitor
// evaluates. It is persisted regardless of severity and never mutated.
type Verdict struct {
	Timestamp        time.Time
	Symbol           string
	Timeframe        string
	VolumeActual     float64
	VolumeThreshold  float64
	VolumeDeficit    float64
	TradesActual     int64
	TradesThreshold  float64
	TradesDeficit    float64
	BaselineComplete bool
	Severity         Severity
}

// Filter represents the filter criteria for verdict data.
type Filter struct {
	Symbol    string
	Timeframe string
	Severity  Severity
	From      *time.Time
	To        *time.Time
	Limit     int
}
