package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/cache"
	"github.com/zapdeals/console/internal/config"
	"github.com/zapdeals/console/internal/dispatch"
	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/session"
	"github.com/zapdeals/console/internal/upstream"
)

const (
	statsSnapshotKey   = "stats"
	historySnapshotKey = "history"
)

type dispatchService struct {
	registry  *session.Registry
	niches    *dispatch.NicheAggregator
	configs   *dispatch.ConfigManager
	queue     *dispatch.QueueView
	history   *dispatch.HistoryStats
	snapshots *cache.Snapshots
	logger    *zap.Logger
}

func NewDispatchService(
	cfg *config.Config,
	api *upstream.Client,
	registry *session.Registry,
	snapshots *cache.Snapshots,
	logger *zap.Logger,
) DispatchService {
	return &dispatchService{
		registry:  registry,
		niches:    dispatch.NewNicheAggregator(api, registry, logger),
		configs:   dispatch.NewConfigManager(api, registry, logger),
		queue:     dispatch.NewQueueView(api, registry, logger, cfg.Polling.DispatchPollInterval()),
		history:   dispatch.NewHistoryStats(api, registry, logger),
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *dispatchService) Niches(ctx context.Context, scope dispatch.Scope) []string {
	return s.niches.Load(ctx, scope)
}

func (s *dispatchService) Configs(ctx context.Context, scope dispatch.Scope) []models.NicheConfig {
	return s.configs.Load(ctx, scope)
}

func (s *dispatchService) SaveConfig(ctx context.Context, sessionID, niche string, params dispatch.SaveParams) ([]models.NicheConfig, error) {
	return s.configs.Save(ctx, sessionID, niche, params)
}

func (s *dispatchService) DeleteConfig(ctx context.Context, sessionID, niche string) ([]models.NicheConfig, error) {
	return s.configs.Delete(ctx, sessionID, niche)
}

// Queue serves the warm background snapshot when the requested scope matches
// the view's current one; a scope change restarts the refresher and answers
// with a fresh synchronous pass.
func (s *dispatchService) Queue(ctx context.Context, scope dispatch.Scope, niche string) []models.QueueItem {
	curScope, curNiche := s.queue.Scope()
	if curScope == scope && curNiche == niche && s.queue.RefresherActive() {
		return s.queue.Items()
	}

	if err := s.queue.SetScope(ctx, scope, niche); err != nil {
		s.logger.Warn("Failed to restart queue refresher", zap.Error(err))
	}
	return s.queue.Load(ctx, scope, niche)
}

// Stats aggregates delivery counters, caching the last successful all-scope
// pass. When every session fetch fails, the cached snapshot is served
// instead of an empty view.
func (s *dispatchService) Stats(ctx context.Context, scope dispatch.Scope) (models.DispatchStats, error) {
	stats, err := s.history.Stats(ctx, scope)
	if err != nil {
		if errors.Is(err, dispatch.ErrAllSessionsFailed) && scope.IsAll() {
			var cached models.DispatchStats
			if s.snapshots.Get(ctx, statsSnapshotKey, &cached) {
				s.logger.Warn("Serving cached stats snapshot, upstream unreachable")
				return cached, nil
			}
		}
		return models.DispatchStats{}, err
	}

	if scope.IsAll() {
		s.snapshots.Put(ctx, statsSnapshotKey, stats)
	}
	return stats, nil
}

// History merges per-session delivery history with the same stale-snapshot
// fallback as Stats.
func (s *dispatchService) History(ctx context.Context, scope dispatch.Scope) ([]models.HistoryItem, error) {
	items, err := s.history.History(ctx, scope)
	if err != nil {
		if errors.Is(err, dispatch.ErrAllSessionsFailed) && scope.IsAll() {
			var cached []models.HistoryItem
			if s.snapshots.Get(ctx, historySnapshotKey, &cached) {
				s.logger.Warn("Serving cached history snapshot, upstream unreachable")
				return cached, nil
			}
		}
		return nil, err
	}

	if scope.IsAll() {
		s.snapshots.Put(ctx, historySnapshotKey, items)
	}
	return items, nil
}

// Overview builds the dashboard summary: connected session headcount plus
// merged counters and the sent-last-hour figure derived from history.
func (s *dispatchService) Overview(ctx context.Context) (*Overview, error) {
	stats, err := s.Stats(ctx, dispatch.ScopeAll)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		MaxSessions: s.registry.MaxSessions(),
		Pending:     stats.Pending,
		SentToday:   stats.SentToday,
		Failures:    stats.Failures,
	}

	for _, sess := range s.registry.List() {
		if sess.State == models.SessionStateConnected {
			overview.ActiveSessions++
		}
	}

	items, err := s.History(ctx, dispatch.ScopeAll)
	if err != nil {
		// Counters still render without the last-hour figure.
		s.logger.Warn("Failed to load history for overview", zap.Error(err))
	} else {
		overview.SentLastHour = dispatch.SentLastHour(items, time.Now())
	}

	return overview, nil
}

func (s *dispatchService) Start(ctx context.Context) error {
	return s.queue.Start(ctx)
}

func (s *dispatchService) Stop() error {
	return s.queue.Stop()
}

func (s *dispatchService) RefresherActive() bool {
	return s.queue.RefresherActive()
}
