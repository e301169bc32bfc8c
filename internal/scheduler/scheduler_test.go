package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/scheduler"
)

func TestScheduler_StartStop(t *testing.T) {
	var runs atomic.Int32
	task := func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}

	s := scheduler.NewScheduler("test", zap.NewNop(), 50*time.Millisecond, task)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	// The first run fires immediately, the next on the tick.
	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	settled := runs.Load()
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}

func TestScheduler_DoubleStart(t *testing.T) {
	s := scheduler.NewScheduler("test", zap.NewNop(), time.Hour, func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	defer func() {
		_ = s.Stop()
	}()

	err := s.Start(context.Background())
	assert.ErrorIs(t, err, scheduler.ErrSchedulerAlreadyRunning)
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := scheduler.NewScheduler("test", zap.NewNop(), time.Hour, func(ctx context.Context) error {
		return nil
	})

	err := s.Stop()
	assert.ErrorIs(t, err, scheduler.ErrSchedulerNotRunning)
}

func TestScheduler_Restart(t *testing.T) {
	var runs atomic.Int32
	s := scheduler.NewScheduler("test", zap.NewNop(), time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
	require.NoError(t, s.Start(context.Background()))
	defer func() {
		_ = s.Stop()
	}()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_TaskErrorKeepsTicking(t *testing.T) {
	var runs atomic.Int32
	s := scheduler.NewScheduler("test", zap.NewNop(), 30*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("task failed")
	})

	require.NoError(t, s.Start(context.Background()))
	defer func() {
		_ = s.Stop()
	}()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := scheduler.NewScheduler("test", zap.NewNop(), 30*time.Millisecond, func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		return !s.IsRunning()
	}, time.Second, 10*time.Millisecond)
}
