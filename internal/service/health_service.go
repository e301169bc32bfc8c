package service

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/zapdeals/console/internal/cache"
)

// BreakerReporter exposes upstream circuit breaker telemetry.
type BreakerReporter interface {
	CircuitBreakerStatus() (state string, requests, failures uint32)
}

type healthService struct {
	breaker         BreakerReporter
	snapshots       *cache.Snapshots
	sessionService  SessionService
	dispatchService DispatchService
}

func NewHealthService(
	breaker BreakerReporter,
	snapshots *cache.Snapshots,
	sessionService SessionService,
	dispatchService DispatchService,
) HealthService {
	return &healthService{
		breaker:         breaker,
		snapshots:       snapshots,
		sessionService:  sessionService,
		dispatchService: dispatchService,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status: HealthStateHealthy,
	}

	if s.sessionService.PollingActive() {
		status.SessionPollerStatus = "running"
	} else {
		status.SessionPollerStatus = "stopped"
	}

	if s.dispatchService.RefresherActive() {
		status.QueueRefresherStatus = "running"
	} else {
		status.QueueRefresherStatus = "stopped"
	}

	if err := s.snapshots.Ping(ctx); err != nil {
		status.CacheStatus = "disconnected"
		// A dead cache only costs the stale fallback; the console keeps
		// serving live aggregates.
		status.Status = HealthStateDegraded
	} else {
		status.CacheStatus = "connected"
	}

	state, requests, failures := s.breaker.CircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if state == gobreaker.StateOpen.String() {
		status.Status = HealthStateDegraded
	}

	return status
}
