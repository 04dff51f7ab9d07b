// Package scheduler runs one goroutine per collection job, each aligned to
// its cadence's wall-clock boundaries. Boundaries are re-derived from the
// clock every cycle so sleep drift never accumulates, and a failing job
// backs off exponentially without ever taking the process down.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
	"github.com/muhammadchandra19/crypto-collector/pkg/util"
)

// Job is one recurring unit of collection work, identified by name and run
// once per cadence boundary.
type Job struct {
	Name    string
	Cadence interval.Interval
	Run     func(ctx context.Context) error
}

// Scheduler owns a set of jobs and their lifecycle.
type Scheduler struct {
	config Config
	logger logger.Interface
	jobs   []Job
}

// NewScheduler creates an empty scheduler.
func NewScheduler(config Config, logger logger.Interface) *Scheduler {
	return &Scheduler{
		config: config,
		logger: logger,
	}
}

// Register adds jobs to the scheduler. Not safe to call after Run.
func (s *Scheduler) Register(jobs ...Job) {
	s.jobs = append(s.jobs, jobs...)
}

// Run blocks until the context is cancelled and every job goroutine has
// drained. Job failures never propagate out of Run.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}
	wg.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	s.logger.Info("job scheduled",
		logger.Field{Key: "job", Value: job.Name},
		logger.Field{Key: "cadence", Value: job.Cadence.Name},
	)

	backoff := s.config.InitialBackoff
	failures := 0

	for {
		// Always re-derive the boundary from the wall clock; cycles
		// missed during a long backoff are skipped, not replayed.
		next := job.Cadence.NextBoundary(time.Now())
		if !sleepUntil(ctx, next) {
			s.logger.Info("job stopped", logger.Field{Key: "job", Value: job.Name})
			return
		}

		err := s.safeRun(ctx, job)
		if ctx.Err() != nil {
			s.logger.Info("job stopped", logger.Field{Key: "job", Value: job.Name})
			return
		}
		if err == nil {
			if failures >= s.config.DegradedAfter {
				s.logger.Info("job recovered",
					logger.Field{Key: "job", Value: job.Name},
					logger.Field{Key: "failures", Value: failures},
				)
			}
			failures = 0
			backoff = s.config.InitialBackoff
			continue
		}

		failures++
		s.logger.Error(errors.TracerFromError(err),
			logger.Field{Key: "job", Value: job.Name},
			logger.Field{Key: "failures", Value: failures},
			logger.Field{Key: "backoff", Value: backoff.String()},
		)
		if failures == s.config.DegradedAfter {
			s.logger.Warn("job degraded",
				logger.Field{Key: "job", Value: job.Name},
				logger.Field{Key: "failures", Value: failures},
			)
		}

		if !sleep(ctx, backoff) {
			s.logger.Info("job stopped", logger.Field{Key: "job", Value: job.Name})
			return
		}
		backoff *= 2
		if backoff > s.config.MaxBackoff {
			backoff = s.config.MaxBackoff
		}
	}
}

// safeRun executes one cycle under a fresh cycle id and converts a panic
// into a regular failure so one bad cycle never kills the collector.
func (s *Scheduler) safeRun(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Run(util.WithCycleID(ctx, ""))
}

// sleepUntil blocks until the deadline or context cancellation. It returns
// false when the context ended first.
func sleepUntil(ctx context.Context, deadline time.Time) bool {
	return sleep(ctx, time.Until(deadline))
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
