// Package ingest implements the ingestion coordinator: the single path every
// fetched batch takes through structural validation, duplicate dropping,
// quality scoring and storage dispatch. Invalid records are quarantined with
// a reason, never silently dropped, and a storage write happens at most once
// per unique record key.
package ingest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/alert"
	domain "github.com/muhammadchandra19/crypto-collector/internal/domain/ingest"
	"github.com/muhammadchandra19/crypto-collector/internal/domain/quality"
	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/metadata"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/quarantine"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// Record kinds as stored on quarantined records.
const (
	KindTick     = "tick"
	KindCandle   = "candle"
	KindMetadata = "metadata"
)

// Usecase is the concrete ingestion coordinator.
type Usecase struct {
	config         Config
	tickRepo       tick.TickRepository
	candleRepo     candle.CandleRepository
	verdictRepo    verdict.VerdictRepository
	quarantineRepo quarantine.QuarantineRepository
	metadataRepo   metadata.MetadataRepository
	monitor        quality.Monitor
	alerts         alert.Publisher
	logger         logger.Interface

	tracker *keyTracker
}

// NewUsecase creates the ingestion coordinator with injected dependencies.
func NewUsecase(
	config Config,
	tickRepo tick.TickRepository,
	candleRepo candle.CandleRepository,
	verdictRepo verdict.VerdictRepository,
	quarantineRepo quarantine.QuarantineRepository,
	metadataRepo metadata.MetadataRepository,
	monitor quality.Monitor,
	alerts alert.Publisher,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		config:         config,
		tickRepo:       tickRepo,
		candleRepo:     candleRepo,
		verdictRepo:    verdictRepo,
		quarantineRepo: quarantineRepo,
		metadataRepo:   metadataRepo,
		monitor:        monitor,
		alerts:         alerts,
		logger:         logger,
		tracker:        newKeyTracker(config.DedupCacheSize),
	}
}

var _ domain.Usecase = (*Usecase)(nil)

// IngestTicks validates, deduplicates, scores and stores one tick batch.
// Every input record ends up stored, quarantined or counted as a duplicate.
func (u *Usecase) IngestTicks(ctx context.Context, batch *source.TickBatch) (*domain.Result, error) {
	result := &domain.Result{}
	var firstErr error

	u.quarantineMalformed(ctx, batch.Source, KindTick, batch.Malformed, result, &firstErr)

	for _, t := range batch.Ticks {
		if detail := validateTick(t); detail != nil {
			u.quarantineRecord(ctx, batch.Source, KindTick, t, detail, result, &firstErr)
			continue
		}

		key := t.Key()
		if !u.tracker.acquire(key) {
			result.Duplicates++
			continue
		}

		// The in-memory set only covers this process lifetime; storage
		// is the authority for keys ingested before a restart.
		exists, err := u.tickRepo.Exists(ctx, t.Symbol, t.Timestamp, t.Source)
		if err != nil {
			u.tracker.release(key, false)
			firstErr = u.degraded(ctx, firstErr, err, "tick existence check failed", key)
			continue
		}
		if exists {
			u.tracker.release(key, true)
			result.Duplicates++
			continue
		}

		if err := u.withStorageRetry(ctx, func() error {
			return u.tickRepo.Store(ctx, t)
		}); err != nil {
			u.tracker.release(key, false)
			firstErr = u.degraded(ctx, firstErr, err, "tick store failed after retries", key)
			continue
		}
		u.tracker.release(key, true)
		result.Stored++

		v := u.monitor.ScoreTick(ctx, t)
		u.persistVerdict(ctx, v, &firstErr)
	}

	return result, firstErr
}

// IngestCandles validates, deduplicates, scores and stores one candle batch.
func (u *Usecase) IngestCandles(ctx context.Context, batch *source.CandleBatch) (*domain.Result, error) {
	result := &domain.Result{}
	var firstErr error

	u.quarantineMalformed(ctx, batch.Source, KindCandle, batch.Malformed, result, &firstErr)

	for _, c := range batch.Candles {
		if detail := validateCandle(c); detail != nil {
			u.quarantineRecord(ctx, batch.Source, KindCandle, c, detail, result, &firstErr)
			continue
		}

		key := c.Key()
		if !u.tracker.acquire(key) {
			result.Duplicates++
			continue
		}

		exists, err := u.candleRepo.Exists(ctx, c.Symbol, c.Timestamp, c.Timeframe)
		if err != nil {
			u.tracker.release(key, false)
			firstErr = u.degraded(ctx, firstErr, err, "candle existence check failed", key)
			continue
		}
		if exists {
			u.tracker.release(key, true)
			result.Duplicates++
			continue
		}

		if err := u.withStorageRetry(ctx, func() error {
			return u.candleRepo.Store(ctx, c)
		}); err != nil {
			u.tracker.release(key, false)
			firstErr = u.degraded(ctx, firstErr, err, "candle store failed after retries", key)
			continue
		}
		u.tracker.release(key, true)
		result.Stored++

		v := u.monitor.ScoreCandle(ctx, c)
		u.persistVerdict(ctx, v, &firstErr)
	}

	return result, firstErr
}

// IngestMetadata validates and stores one coin metadata batch. Metadata is
// descriptive, not market data, so it bypasses the quality monitor.
func (u *Usecase) IngestMetadata(ctx context.Context, batch *source.MetadataBatch) (*domain.Result, error) {
	result := &domain.Result{}
	var firstErr error

	u.quarantineMalformed(ctx, batch.Source, KindMetadata, batch.Malformed, result, &firstErr)

	for _, m := range batch.Metadata {
		if detail := validateMetadata(m); detail != nil {
			u.quarantineRecord(ctx, batch.Source, KindMetadata, m, detail, result, &firstErr)
			continue
		}

		if err := u.withStorageRetry(ctx, func() error {
			return u.metadataRepo.Store(ctx, m)
		}); err != nil {
			firstErr = u.degraded(ctx, firstErr, err, "metadata store failed after retries", m.CoinID)
			continue
		}
		result.Stored++
	}

	return result, firstErr
}

// persistVerdict stores the audit verdict and pushes an alert for
// medium/high severities. Alerting is best effort and never blocks the
// batch.
func (u *Usecase) persistVerdict(ctx context.Context, v *verdict.Verdict, firstErr *error) {
	if err := u.withStorageRetry(ctx, func() error {
		return u.verdictRepo.Store(ctx, v)
	}); err != nil {
		*firstErr = u.degraded(ctx, *firstErr, err, "verdict store failed after retries", v.Symbol+"|"+v.Timeframe)
		return
	}

	if v.Severity.Rank() < verdict.SeverityMedium.Rank() {
		return
	}

	u.logger.WarnContext(ctx, "quality threshold breached",
		logger.Field{Key: "symbol", Value: v.Symbol},
		logger.Field{Key: "timeframe", Value: v.Timeframe},
		logger.Field{Key: "severity", Value: string(v.Severity)},
		logger.Field{Key: "volume_deficit", Value: v.VolumeDeficit},
		logger.Field{Key: "trades_deficit", Value: v.TradesDeficit},
	)
	if err := u.alerts.PublishVerdict(ctx, v); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.Field{Key: "symbol", Value: v.Symbol},
			logger.Field{Key: "timeframe", Value: v.Timeframe},
		)
	}
}

// quarantineMalformed routes the adapter's undecodable payloads to the
// quarantine table.
func (u *Usecase) quarantineMalformed(ctx context.Context, src, kind string, malformed []source.MalformedRecord, result *domain.Result, firstErr *error) {
	for _, rec := range malformed {
		detail := errors.NewErrorDetails(errors.SourceMalformedResponse, rec.Reason)
		if err := u.storeQuarantine(ctx, src, kind, rec.Payload, detail); err != nil {
			*firstErr = u.degraded(ctx, *firstErr, err, "quarantine store failed after retries", kind)
			continue
		}
		result.Quarantined++
	}
}

// quarantineRecord serializes a structurally invalid record and routes it to
// the quarantine table.
func (u *Usecase) quarantineRecord(ctx context.Context, src, kind string, record any, detail *errors.ErrorDetails, result *domain.Result, firstErr *error) {
	payload, err := json.Marshal(record)
	if err != nil {
		// Records are plain structs; marshalling only fails on
		// non-finite floats, which is itself the quarantine reason.
		payload = []byte("{}")
	}
	if err := u.storeQuarantine(ctx, src, kind, string(payload), detail); err != nil {
		*firstErr = u.degraded(ctx, *firstErr, err, "quarantine store failed after retries", kind)
		return
	}
	result.Quarantined++
}

func (u *Usecase) storeQuarantine(ctx context.Context, src, kind, payload string, detail *errors.ErrorDetails) error {
	rec := &quarantine.Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    src,
		Kind:      kind,
		Payload:   payload,
		Reason:    detail.Message,
	}
	if err := u.withStorageRetry(ctx, func() error {
		return u.quarantineRepo.Store(ctx, rec)
	}); err != nil {
		return err
	}

	u.logger.WarnContext(ctx, "record quarantined",
		logger.Field{Key: "source", Value: src},
		logger.Field{Key: "kind", Value: kind},
		logger.Field{Key: "code", Value: string(detail.Code)},
		logger.Field{Key: "reason", Value: detail.Message},
	)
	return nil
}

// withStorageRetry runs a storage operation with bounded exponential
// backoff. The context cancels the wait, never the in-flight attempt.
func (u *Usecase) withStorageRetry(ctx context.Context, fn func() error) error {
	backoff := u.config.StorageRetryBackoff
	var err error
	for attempt := 0; attempt < u.config.StorageRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == u.config.StorageRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return errors.TracerFromError(err)
}

// degraded logs a storage failure and keeps the first error for the caller.
// Ingestion continues with the rest of the batch.
func (u *Usecase) degraded(ctx context.Context, firstErr error, err error, message, key string) error {
	u.logger.ErrorContext(ctx, errors.TracerFromError(err),
		logger.Field{Key: "op", Value: message},
		logger.Field{Key: "key", Value: key},
	)
	if firstErr == nil {
		return err
	}
	return firstErr
}
