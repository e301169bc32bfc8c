package service

type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

type HealthStatus struct {
	Status               HealthState `json:"status"`
	SessionPollerStatus  string      `json:"session_poller_status"`
	QueueRefresherStatus string      `json:"queue_refresher_status"`
	CacheStatus          string      `json:"cache_status"`
	CircuitBreakerState  string      `json:"circuit_breaker_state"`
	CircuitBreakerStatus string      `json:"circuit_breaker_status,omitempty"`
}

// Overview is the dashboard summary: merged counters plus session headcount.
type Overview struct {
	ActiveSessions int `json:"active_sessions"`
	MaxSessions    int `json:"max_sessions"`
	Pending        int `json:"pending"`
	SentToday      int `json:"sent_today"`
	Failures       int `json:"failures"`
	SentLastHour   int `json:"sent_last_hour"`
}
