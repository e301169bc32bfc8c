package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/scheduler"
	"github.com/zapdeals/console/internal/upstream"
)

// QueueView maintains the merged pending-send queue for the current scope,
// refreshed on a fixed tick. Every refresh computes a fresh merged snapshot
// and replaces the previous one atomically; readers always see a complete
// pass or the previous one, never a half-merged state.
type QueueView struct {
	api      API
	sessions SessionSource
	logger   *zap.Logger

	// generation invalidates in-flight loads when the scope changes. A load
	// started under an older generation is discarded on completion instead
	// of overwriting the new scope's results.
	generation atomic.Uint64

	mu    sync.RWMutex
	scope Scope
	niche string
	items []models.QueueItem

	refresher *scheduler.Scheduler
}

func NewQueueView(api API, sessions SessionSource, logger *zap.Logger, refreshInterval time.Duration) *QueueView {
	v := &QueueView{
		api:      api,
		sessions: sessions,
		logger:   logger,
		scope:    ScopeAll,
	}
	v.refresher = scheduler.NewScheduler("dispatch-queue", logger, refreshInterval, v.Refresh)
	return v
}

// SetScope switches the view to a new scope and niche filter. The refresh
// tick is restarted when it is running, and the generation bump makes any
// in-flight load for the previous scope a no-op on completion.
func (v *QueueView) SetScope(ctx context.Context, scope Scope, niche string) error {
	v.mu.Lock()
	v.scope = scope
	v.niche = niche
	v.items = nil
	v.mu.Unlock()
	v.generation.Add(1)

	if !v.refresher.IsRunning() {
		return nil
	}
	if err := v.refresher.Stop(); err != nil {
		return err
	}
	return v.refresher.Start(ctx)
}

// Start begins the refresh tick with the current scope.
func (v *QueueView) Start(ctx context.Context) error {
	return v.refresher.Start(ctx)
}

// Stop tears the view down; no further merge lands afterwards.
func (v *QueueView) Stop() error {
	v.generation.Add(1)
	return v.refresher.Stop()
}

// RefresherActive reports whether the refresh tick is running.
func (v *QueueView) RefresherActive() bool {
	return v.refresher.IsRunning()
}

// Items returns the latest committed snapshot.
func (v *QueueView) Items() []models.QueueItem {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]models.QueueItem(nil), v.items...)
}

// Scope returns the view's current scope and niche filter.
func (v *QueueView) Scope() (Scope, string) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scope, v.niche
}

// Refresh runs one aggregation pass for the current scope and commits the
// merged result, unless the scope changed while the pass was in flight.
func (v *QueueView) Refresh(ctx context.Context) error {
	gen := v.generation.Load()

	v.mu.RLock()
	scope, niche := v.scope, v.niche
	v.mu.RUnlock()

	items := v.load(ctx, scope, niche)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.generation.Load() != gen {
		// Superseded scope; discard, do not apply.
		return nil
	}
	v.items = items
	return nil
}

// Load performs a one-off aggregation pass without touching the view's own
// scope or snapshot.
func (v *QueueView) Load(ctx context.Context, scope Scope, niche string) []models.QueueItem {
	return v.load(ctx, scope, niche)
}

// load fans out one queue fetch per session in scope and concatenates the
// results, tagging each item with its owning session at the point of return.
// One session failing leaves the other sessions' items in the aggregate.
func (v *QueueView) load(ctx context.Context, scope Scope, niche string) []models.QueueItem {
	ids := resolveSessions(scope, v.sessions)
	results := make([][]models.QueueItem, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			fetched, err := v.api.DispatchQueue(ctx, id, niche)
			if err != nil {
				v.logger.Warn("Queue fetch failed, keeping partial aggregate",
					zap.String("session_id", id),
					zap.Error(err))
				return
			}

			tagged := make([]models.QueueItem, 0, len(fetched))
			for _, item := range fetched {
				tagged = append(tagged, queueItemFromUpstream(id, item))
			}
			results[i] = tagged
		}(i, id)
	}
	wg.Wait()

	var merged []models.QueueItem
	for _, part := range results {
		merged = append(merged, part...)
	}
	return merged
}

func queueItemFromUpstream(sessionID string, item upstream.QueueItem) models.QueueItem {
	return models.QueueItem{
		SessionID:     sessionID,
		ID:            item.ID,
		ProductName:   item.ProductName,
		ImageURL:      item.ImageURL,
		CurrentPrice:  item.CurrentPrice,
		OriginalPrice: item.OriginalPrice,
		Discount:      item.Discount,
		FreeShipping:  item.FreeShipping,
		AffiliateLink: item.AffiliateLink,
		Niche:         item.Niche,
		CreatedAt:     item.CreatedAt,
	}
}
