package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/upstream"
)

// ErrAllSessionsFailed means no session in the scope produced a result, so
// there is nothing to aggregate. Callers may fall back to a cached snapshot.
var ErrAllSessionsFailed = errors.New("every session fetch failed")

// HistoryStats merges per-session delivery history and numeric counters.
type HistoryStats struct {
	api      API
	sessions SessionSource
	logger   *zap.Logger
}

func NewHistoryStats(api API, sessions SessionSource, logger *zap.Logger) *HistoryStats {
	return &HistoryStats{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Stats sums the counters field-wise across the scope. For a concrete
// session the upstream values pass through unchanged. Sessions whose fetch
// fails are skipped; only a fully failed pass is an error.
func (h *HistoryStats) Stats(ctx context.Context, scope Scope) (models.DispatchStats, error) {
	ids := resolveSessions(scope, h.sessions)
	results := make([]*upstream.Stats, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			stats, err := h.api.DispatchStats(ctx, id)
			if err != nil {
				h.logger.Warn("Stats fetch failed",
					zap.String("session_id", id),
					zap.Error(err))
				return
			}
			results[i] = stats
		}(i, id)
	}
	wg.Wait()

	var total models.DispatchStats
	succeeded := 0
	for _, stats := range results {
		if stats == nil {
			continue
		}
		succeeded++
		total.Add(models.DispatchStats{
			Pending:   stats.Pending,
			SentToday: stats.SentToday,
			Failures:  stats.Failures,
		})
	}

	if succeeded == 0 && len(ids) > 0 {
		return models.DispatchStats{}, ErrAllSessionsFailed
	}
	return total, nil
}

// History concatenates delivery history across the scope, each item tagged
// with its owning session so the aggregate view can show provenance.
func (h *HistoryStats) History(ctx context.Context, scope Scope) ([]models.HistoryItem, error) {
	ids := resolveSessions(scope, h.sessions)
	results := make([][]models.HistoryItem, len(ids))
	failed := make([]bool, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			fetched, err := h.api.DispatchHistory(ctx, id)
			if err != nil {
				h.logger.Warn("History fetch failed",
					zap.String("session_id", id),
					zap.Error(err))
				failed[i] = true
				return
			}

			tagged := make([]models.HistoryItem, 0, len(fetched))
			for _, item := range fetched {
				tagged = append(tagged, historyItemFromUpstream(id, item))
			}
			results[i] = tagged
		}(i, id)
	}
	wg.Wait()

	allFailed := len(ids) > 0
	var merged []models.HistoryItem
	for i, part := range results {
		if !failed[i] {
			allFailed = false
		}
		merged = append(merged, part...)
	}

	if allFailed {
		return nil, ErrAllSessionsFailed
	}
	return merged, nil
}

// SentLastHour counts items delivered within the last hour. Items without a
// send timestamp never count, whatever their status claims.
func SentLastHour(items []models.HistoryItem, now time.Time) int {
	cutoff := now.Add(-time.Hour)

	count := 0
	for _, item := range items {
		if item.Status == models.HistoryStatusSent && item.SentAt != nil && !item.SentAt.Before(cutoff) {
			count++
		}
	}
	return count
}

func historyItemFromUpstream(sessionID string, item upstream.HistoryItem) models.HistoryItem {
	return models.HistoryItem{
		SessionID:   sessionID,
		ID:          item.ID,
		ProductName: item.ProductName,
		Niche:       item.Niche,
		Status:      models.HistoryStatus(item.Status),
		SentAt:      item.SentAt,
		CreatedAt:   item.CreatedAt,
	}
}
