package bootstrap

import (
	ingestUc "github.com/muhammadchandra19/crypto-collector/internal/usecase/ingest"
	qualityUc "github.com/muhammadchandra19/crypto-collector/internal/usecase/quality"

	alertDomain "github.com/muhammadchandra19/crypto-collector/internal/domain/alert"
	ingestDomain "github.com/muhammadchandra19/crypto-collector/internal/domain/ingest"
	qualityDomain "github.com/muhammadchandra19/crypto-collector/internal/domain/quality"

	"github.com/muhammadchandra19/crypto-collector/internal/usecase/alertpublisher"
)

// Usecase groups the usecases of the collector.
type Usecase struct {
	QualityMonitor qualityDomain.Monitor
	IngestUsecase  ingestDomain.Usecase
	AlertPublisher alertDomain.Publisher
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.QualityMonitor = qualityUc.NewMonitor(b.Config.Quality, b.Repository.CandleRepository, b.Logger)

	if b.Config.AlertKafka.Enabled {
		b.Usecase.AlertPublisher = alertpublisher.NewPublisher(b.Config.AlertKafka, b.Logger)
	} else {
		b.Usecase.AlertPublisher = alertpublisher.NopPublisher{}
	}

	b.Usecase.IngestUsecase = ingestUc.NewUsecase(
		b.Config.Ingest,
		b.Repository.TickRepository,
		b.Repository.CandleRepository,
		b.Repository.VerdictRepository,
		b.Repository.QuarantineRepository,
		b.Repository.MetadataRepository,
		b.Usecase.QualityMonitor,
		b.Usecase.AlertPublisher,
		b.Logger,
	)
}
