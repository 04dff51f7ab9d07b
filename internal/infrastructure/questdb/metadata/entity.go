package metadata

import (
	"time"
)

// Metadata is a point-in-time snapshot of coin metadata from a listing
// provider.
type Metadata struct {
	Timestamp     time.Time
	CoinID        string
	Symbol        string
	Name          string
	MarketCapRank int64
	Categories    string // comma-joined category list
	WebsiteURL    string
	GithubURL     string
	Source        string
}
