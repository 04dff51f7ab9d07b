package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	lg, err := logger.NewLogger()
	require.NoError(t, err)
	return NewScheduler(Config{
		InitialBackoff: 5 * time.Millisecond,
		MaxBackoff:     20 * time.Millisecond,
		DegradedAfter:  2,
	}, lg)
}

func fastCadence() interval.Interval {
	return interval.Interval{Name: "20ms", Duration: 20 * time.Millisecond}
}

func TestScheduler_RunsOnCadence(t *testing.T) {
	s := testScheduler(t)

	var runs atomic.Int64
	s.Register(Job{
		Name:    "counter",
		Cadence: fastCadence(),
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	// ~12 boundaries fit in the window; demand only a loose lower bound
	// to keep the test stable under load.
	assert.GreaterOrEqual(t, runs.Load(), int64(3))
}

func TestScheduler_RunAlignsToBoundary(t *testing.T) {
	s := testScheduler(t)
	cadence := fastCadence()

	var misaligned atomic.Int64
	s.Register(Job{
		Name:    "aligned",
		Cadence: cadence,
		Run: func(ctx context.Context) error {
			// Runs fire just after a boundary; being more than half a
			// cadence late means alignment drifted.
			offset := time.Since(cadence.CalculateBucketTime(time.Now()))
			if offset > cadence.Duration/2 {
				misaligned.Add(1)
			}
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	assert.Zero(t, misaligned.Load())
}

func TestScheduler_FailuresBackOffAndRecover(t *testing.T) {
	s := testScheduler(t)

	var runs atomic.Int64
	s.Register(Job{
		Name:    "flaky",
		Cadence: fastCadence(),
		Run: func(ctx context.Context) error {
			if runs.Add(1) <= 3 {
				return errors.New("upstream down")
			}
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	// The job kept running after its failures instead of dying.
	assert.Greater(t, runs.Load(), int64(3))
}

func TestScheduler_PanicDoesNotKillJob(t *testing.T) {
	s := testScheduler(t)

	var runs atomic.Int64
	s.Register(Job{
		Name:    "panicky",
		Cadence: fastCadence(),
		Run: func(ctx context.Context) error {
			if runs.Add(1) == 1 {
				panic("boom")
			}
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	assert.Greater(t, runs.Load(), int64(1))
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	s := testScheduler(t)

	s.Register(Job{
		Name:    "idle",
		Cadence: interval.Interval1h,
		Run: func(ctx context.Context) error {
			t.Error("job should never fire within the test window")
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not drain after cancellation")
	}
}

func TestScheduler_MultipleJobsRunIndependently(t *testing.T) {
	s := testScheduler(t)

	var fast, failing atomic.Int64
	s.Register(
		Job{
			Name:    "healthy",
			Cadence: fastCadence(),
			Run: func(ctx context.Context) error {
				fast.Add(1)
				return nil
			},
		},
		Job{
			Name:    "always-failing",
			Cadence: fastCadence(),
			Run: func(ctx context.Context) error {
				failing.Add(1)
				return errors.New("permanently broken")
			},
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	// The failing job never starves the healthy one.
	assert.GreaterOrEqual(t, fast.Load(), int64(3))
	assert.GreaterOrEqual(t, failing.Load(), int64(1))
}
