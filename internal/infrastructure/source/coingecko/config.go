package coingecko

import (
	"strings"
	"time"
)

// Config holds the CoinGecko adapter configuration.
type Config struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.coingecko.com/api/v3"`

	// The free tier allows roughly 30 calls per minute; the default keeps
	// a comfortable margin.
	RequestsPerSecond float64       `env:"REQUESTS_PER_SECOND" envDefault:"0.4"`
	Burst             int           `env:"BURST" envDefault:"2"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// CoinIDs overrides or extends the built-in symbol to CoinGecko id
	// mapping, as SYMBOL:id pairs.
	CoinIDs []string `env:"COIN_IDS" envSeparator:","`
}

// defaultCoinIDs maps collected symbols to CoinGecko coin ids.
var defaultCoinIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"BNB": "binancecoin",
	"SOL": "solana",
}

// coinIDs returns the effective symbol to id mapping.
func (c Config) coinIDs() map[string]string {
	ids := make(map[string]string, len(defaultCoinIDs)+len(c.CoinIDs))
	for symbol, id := range defaultCoinIDs {
		ids[symbol] = id
	}
	for _, pair := range c.CoinIDs {
		symbol, id, ok := strings.Cut(pair, ":")
		if !ok || symbol == "" || id == "" {
			continue
		}
		ids[strings.ToUpper(strings.TrimSpace(symbol))] = strings.TrimSpace(id)
	}
	return ids
}
