// Package config loads the collector configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/binance"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/coingecko"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/alertpublisher"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/ingest"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/quality"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/scheduler"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig             `envPrefix:"APP_"`
	QuestDB    questdb.Config        `envPrefix:"QUESTDB_"`
	Collection CollectionConfig      `envPrefix:"COLLECTION_"`
	Binance    binance.Config        `envPrefix:"BINANCE_"`
	CoinGecko  coingecko.Config      `envPrefix:"COINGECKO_"`
	Quality    quality.Config        `envPrefix:"QUALITY_"`
	Ingest     ingest.Config         `envPrefix:"INGEST_"`
	Scheduler  scheduler.Config      `envPrefix:"SCHEDULER_"`
	AlertKafka alertpublisher.Config `envPrefix:"ALERT_KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"crypto-collector"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// CollectionConfig defines what gets collected.
type CollectionConfig struct {
	// Symbols is the base-asset universe, e.g. BTC,ETH.
	Symbols []string `env:"SYMBOLS" envSeparator:"," envDefault:"BTC,ETH,BNB,SOL"`

	// Timeframes lists the candle timeframes to collect.
	Timeframes []string `env:"TIMEFRAMES" envSeparator:"," envDefault:"1m,5m,15m,1h,4h,1d"`

	// MetadataCadence is the timeframe name driving metadata refreshes.
	MetadataCadence string `env:"METADATA_CADENCE" envDefault:"5m"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
