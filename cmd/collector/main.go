package main

import (
	"context"
	"io"
	"log"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/crypto-collector/internal/bootstrap"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/collector"
	"github.com/muhammadchandra19/crypto-collector/internal/usecase/scheduler"
	"github.com/muhammadchandra19/crypto-collector/pkg/config"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
	"github.com/muhammadchandra19/crypto-collector/pkg/questdb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	questdbClient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		lg.Error(err)
		log.Fatalf("Failed to initialize QuestDB client: %v", err)
	}
	defer questdbClient.Close()

	if err := questdbClient.Ping(ctx); err != nil {
		lg.Error(err)
		log.Fatalf("Failed to ping QuestDB: %v", err)
	}
	lg.Info("QuestDB client connected successfully")

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BoostrapConfig{
		Config:  cfg,
		QuestDB: questdbClient,
		Logger:  lg,
	})

	timeframes, err := resolveTimeframes(cfg.Collection.Timeframes)
	if err != nil {
		lg.Error(err)
		log.Fatalf("Invalid collection timeframes: %v", err)
	}
	metadataCadence, err := interval.GetInterval(cfg.Collection.MetadataCadence)
	if err != nil {
		lg.Error(err)
		log.Fatalf("Invalid metadata cadence: %v", err)
	}

	// Rebuild candle baselines from stored history before the first cycle
	// so a restart does not demote active baselines back to collecting.
	// Tick baselines rebuild naturally from the minute stream.
	if err := app.Usecase.QualityMonitor.WarmUp(ctx, cfg.Collection.Symbols, cfg.Collection.Timeframes); err != nil {
		lg.Error(err)
		log.Fatalf("Failed to warm up quality baselines: %v", err)
	}

	jobs := collector.NewCollector(app.Usecase.IngestUsecase, cfg.Collection.Symbols, lg)
	sched := scheduler.NewScheduler(cfg.Scheduler, lg)
	sched.Register(jobs.TickJob(app.Source.Binance))
	for _, timeframe := range timeframes {
		sched.Register(jobs.CandleJob(app.Source.Binance, timeframe))
	}
	sched.Register(jobs.MetadataJob(app.Source.CoinGecko, metadataCadence))

	lg.Info("Crypto collector started",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
		logger.Field{Key: "symbols", Value: cfg.Collection.Symbols},
		logger.Field{Key: "timeframes", Value: cfg.Collection.Timeframes},
	)

	sched.Run(ctx)

	// Run drains every job goroutine before returning, so reaching this
	// point means collection has fully stopped.
	if closer, ok := app.Usecase.AlertPublisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			lg.Error(err)
		}
	}
	lg.Info("Crypto collector stopped")
}

func resolveTimeframes(names []string) ([]interval.Interval, error) {
	timeframes := make([]interval.Interval, 0, len(names))
	for _, name := range names {
		iv, err := interval.GetInterval(name)
		if err != nil {
			return nil, err
		}
		timeframes = append(timeframes, iv)
	}
	return timeframes, nil
}
