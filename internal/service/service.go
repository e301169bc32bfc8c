// Package service composes the session registry and dispatch aggregators
// behind the interfaces the HTTP layer consumes.
package service

import (
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/cache"
	"github.com/zapdeals/console/internal/config"
	"github.com/zapdeals/console/internal/session"
	"github.com/zapdeals/console/internal/upstream"
)

type Service struct {
	Session  SessionService
	Dispatch DispatchService
	Health   HealthService
}

func NewService(
	cfg *config.Config,
	api *upstream.Client,
	registry *session.Registry,
	snapshots *cache.Snapshots,
	logger *zap.Logger,
) *Service {
	sessionService := NewSessionService(registry)
	dispatchService := NewDispatchService(cfg, api, registry, snapshots, logger)
	healthService := NewHealthService(api, snapshots, sessionService, dispatchService)

	return &Service{
		Session:  sessionService,
		Dispatch: dispatchService,
		Health:   healthService,
	}
}
