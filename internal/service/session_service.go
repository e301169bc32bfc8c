package service

import (
	"context"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/session"
)

// sessionService is a thin facade over the registry; the registry owns all
// session state and polling.
type sessionService struct {
	registry *session.Registry
}

func NewSessionService(registry *session.Registry) SessionService {
	return &sessionService{registry: registry}
}

func (s *sessionService) List() []models.Session {
	return s.registry.List()
}

func (s *sessionService) Create(ctx context.Context, rawPhone string) (models.Session, error) {
	id, err := s.registry.Create(ctx, rawPhone)
	if err != nil {
		return models.Session{}, err
	}

	created, ok := s.registry.Get(id)
	if !ok {
		return models.Session{ID: id, Name: id, State: models.SessionStateLoading}, nil
	}
	return created, nil
}

func (s *sessionService) Remove(ctx context.Context, id string) error {
	return s.registry.Remove(ctx, id)
}

func (s *sessionService) Reconnect(ctx context.Context, id string) error {
	return s.registry.Reconnect(ctx, id)
}

func (s *sessionService) Sync(ctx context.Context) error {
	return s.registry.SyncFromUpstream(ctx)
}

func (s *sessionService) StartPolling(ctx context.Context) error {
	return s.registry.StartPolling(ctx)
}

func (s *sessionService) StopPolling() error {
	return s.registry.StopPolling()
}

func (s *sessionService) PollingActive() bool {
	return s.registry.PollingActive()
}

func (s *sessionService) MaxSessions() int {
	return s.registry.MaxSessions()
}
