package bootstrap

import (
	candleInfra "github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	metadataInfra "github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/metadata"
	quarantineInfra "github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/quarantine"
	tickInfra "github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	verdictInfra "github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
)

// Repository groups the storage repositories of the collector.
type Repository struct {
	TickRepository       tickInfra.TickRepository
	CandleRepository     candleInfra.CandleRepository
	VerdictRepository    verdictInfra.VerdictRepository
	QuarantineRepository quarantineInfra.QuarantineRepository
	MetadataRepository   metadataInfra.MetadataRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.TickRepository = tickInfra.NewRepository(b.QuestDB)
	b.Repository.CandleRepository = candleInfra.NewRepository(b.QuestDB)
	b.Repository.VerdictRepository = verdictInfra.NewRepository(b.QuestDB)
	b.Repository.QuarantineRepository = quarantineInfra.NewRepository(b.QuestDB)
	b.Repository.MetadataRepository = metadataInfra.NewRepository(b.QuestDB)
}
