// Package alertpublisher pushes severity-flagged quality verdicts to a Kafka
// topic for downstream alerting.
package alertpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/verdict"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// Config holds the Kafka alert publisher configuration.
type Config struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"quality-alerts"`
}

// Publisher represents a Kafka publisher for quality alerts.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// alertMessage is the wire shape of one published alert.
type alertMessage struct {
	Timestamp        time.Time        `json:"timestamp"`
	Symbol           string           `json:"symbol"`
	Timeframe        string           `json:"timeframe"`
	Severity         verdict.Severity `json:"severity"`
	VolumeActual     float64          `json:"volume_actual"`
	VolumeThreshold  float64          `json:"volume_threshold"`
	VolumeDeficit    float64          `json:"volume_deficit"`
	TradesActual     int64            `json:"trades_actual"`
	TradesThreshold  float64          `json:"trades_threshold"`
	TradesDeficit    float64          `json:"trades_deficit"`
	BaselineComplete bool             `json:"baseline_complete"`
}

// NewPublisher creates a new Kafka publisher for quality alerts.
func NewPublisher(config Config, logger logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

// PublishVerdict publishes one verdict to the alert topic, keyed by symbol
// so per-symbol ordering is preserved across partitions.
func (p *Publisher) PublishVerdict(ctx context.Context, v *verdict.Verdict) error {
	payload, err := json.Marshal(alertMessage{
		Timestamp:        v.Timestamp,
		Symbol:           v.Symbol,
		Timeframe:        v.Timeframe,
		Severity:         v.Severity,
		VolumeActual:     v.VolumeActual,
		VolumeThreshold:  v.VolumeThreshold,
		VolumeDeficit:    v.VolumeDeficit,
		TradesActual:     v.TradesActual,
		TradesThreshold:  v.TradesThreshold,
		TradesDeficit:    v.TradesDeficit,
		BaselineComplete: v.BaselineComplete,
	})
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   []byte(v.Symbol),
		Value: payload,
	}
	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "symbol", Value: v.Symbol},
			logger.Field{Key: "timeframe", Value: v.Timeframe},
			logger.Field{Key: "severity", Value: string(v.Severity)},
		)
		return errors.NewTracer("failed to publish quality alert")
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}

// NopPublisher drops every verdict. Used when alerting is disabled.
type NopPublisher struct{}

// PublishVerdict implements alert.Publisher and does nothing.
func (NopPublisher) PublishVerdict(context.Context, *verdict.Verdict) error {
	return nil
}
