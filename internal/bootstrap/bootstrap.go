// Package bootstrap wires repositories, usecases and source adapters
// together from loaded configuration.
package bootstrap

import (
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/binance"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/coingecko"
	"github.com/muhammadchandra19/crypto-collector/pkg/config"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

// Bootstrap is the assembled dependency graph of the collector.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Source     Source
	Logger     logger.Interface

	Config  *config.Config
	QuestDB questdb.QuestDBClient
}

// BoostrapConfig is the config for the bootstrap.
type BoostrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Logger  logger.Interface
}

// Source groups the upstream adapters.
type Source struct {
	Binance   *binance.Client
	CoinGecko *coingecko.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BoostrapConfig) Bootstrap {
	b.Config = config.Config
	b.QuestDB = config.QuestDB
	b.Logger = config.Logger

	b.registerRepository()
	b.registerSource()
	b.registerUsecase()

	return *b
}

// registerSource registers the upstream adapters.
func (b *Bootstrap) registerSource() {
	b.Source.Binance = binance.NewClient(b.Config.Binance, b.Logger)
	b.Source.CoinGecko = coingecko.NewClient(b.Config.CoinGecko, b.Logger)
}
