package binance

import "time"

// Config holds the Binance adapter configuration.
type Config struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.binance.com"`

	// QuoteAsset is appended to each collected symbol to form the Binance
	// trading pair, e.g. BTC -> BTCUSDT.
	QuoteAsset string `env:"QUOTE_ASSET" envDefault:"USDT"`

	// RequestsPerSecond feeds the client-side token bucket. Binance allows
	// 1200 request weight per minute; the default stays far below it.
	RequestsPerSecond float64       `env:"REQUESTS_PER_SECOND" envDefault:"10"`
	Burst             int           `env:"BURST" envDefault:"5"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// CandleLookback is how many klines each candle request asks for. The
	// newest kline is still open and always dropped, so this must be at
	// least 2.
	CandleLookback int `env:"CANDLE_LOOKBACK" envDefault:"3"`
}
