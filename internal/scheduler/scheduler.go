package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a task at a fixed interval until stopped. Each aggregator
// owns its own instance; timers are independent and never synchronized.
type Scheduler struct {
	name      string
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance. The task runs once
// immediately on Start and then on every tick.
func NewScheduler(name string, logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		name:     name,
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started",
		zap.String("scheduler", s.name),
		zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for the loop to exit. No further task
// run lands after Stop returns.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh

	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped", zap.String("scheduler", s.name))
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	// Execute immediately on start
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled", zap.String("scheduler", s.name))
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs the task once with a deadline of one interval. A failed run is
// logged and retried on the next tick; there is no backoff.
func (s *Scheduler) tick(ctx context.Context) {
	taskCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.taskFunc(taskCtx); err != nil {
		s.logger.Error("Scheduled task failed",
			zap.String("scheduler", s.name),
			zap.Error(err))
	}
}
