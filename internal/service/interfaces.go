package service

import (
	"context"

	"github.com/zapdeals/console/internal/dispatch"
	"github.com/zapdeals/console/internal/models"
)

type SessionService interface {
	List() []models.Session
	Create(ctx context.Context, rawPhone string) (models.Session, error)
	Remove(ctx context.Context, id string) error
	Reconnect(ctx context.Context, id string) error
	Sync(ctx context.Context) error
	StartPolling(ctx context.Context) error
	StopPolling() error
	PollingActive() bool
	MaxSessions() int
}

type DispatchService interface {
	Niches(ctx context.Context, scope dispatch.Scope) []string
	Configs(ctx context.Context, scope dispatch.Scope) []models.NicheConfig
	SaveConfig(ctx context.Context, sessionID, niche string, params dispatch.SaveParams) ([]models.NicheConfig, error)
	DeleteConfig(ctx context.Context, sessionID, niche string) ([]models.NicheConfig, error)
	Queue(ctx context.Context, scope dispatch.Scope, niche string) []models.QueueItem
	History(ctx context.Context, scope dispatch.Scope) ([]models.HistoryItem, error)
	Stats(ctx context.Context, scope dispatch.Scope) (models.DispatchStats, error)
	Overview(ctx context.Context) (*Overview, error)
	Start(ctx context.Context) error
	Stop() error
	RefresherActive() bool
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
