package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/dispatch"
	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/upstream"
	"github.com/zapdeals/console/internal/upstream/mocks"
)

func TestHistoryStats_Stats(t *testing.T) {
	t.Run("sums counters field-wise across the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchStats(gomock.Any(), "s1").
			Return(&upstream.Stats{Pending: 2, SentToday: 5, Failures: 0}, nil)
		api.EXPECT().DispatchStats(gomock.Any(), "s2").
			Return(&upstream.Stats{Pending: 1, SentToday: 3, Failures: 1}, nil)

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		stats, err := hs.Stats(context.Background(), dispatch.ScopeAll)
		require.NoError(t, err)
		assert.Equal(t, models.DispatchStats{Pending: 3, SentToday: 8, Failures: 1}, stats)
	})

	t.Run("concrete session passes through unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchStats(gomock.Any(), "s1").
			Return(&upstream.Stats{Pending: 4, SentToday: 7, Failures: 2}, nil)

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		stats, err := hs.Stats(context.Background(), dispatch.Scope("s1"))
		require.NoError(t, err)
		assert.Equal(t, models.DispatchStats{Pending: 4, SentToday: 7, Failures: 2}, stats)
	})

	t.Run("partial failure keeps the successful sessions' sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchStats(gomock.Any(), "s1").
			Return(nil, errors.New("timeout"))
		api.EXPECT().DispatchStats(gomock.Any(), "s2").
			Return(&upstream.Stats{Pending: 1, SentToday: 3, Failures: 1}, nil)

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		stats, err := hs.Stats(context.Background(), dispatch.ScopeAll)
		require.NoError(t, err)
		assert.Equal(t, models.DispatchStats{Pending: 1, SentToday: 3, Failures: 1}, stats)
	})

	t.Run("all sessions failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchStats(gomock.Any(), "s1").Return(nil, errors.New("timeout"))
		api.EXPECT().DispatchStats(gomock.Any(), "s2").Return(nil, errors.New("timeout"))

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		_, err := hs.Stats(context.Background(), dispatch.ScopeAll)
		assert.ErrorIs(t, err, dispatch.ErrAllSessionsFailed)
	})

	t.Run("empty scope sums to zero without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		hs := dispatch.NewHistoryStats(api, sessionIDs{}, zap.NewNop())

		stats, err := hs.Stats(context.Background(), dispatch.ScopeAll)
		require.NoError(t, err)
		assert.Equal(t, models.DispatchStats{}, stats)
	})
}

func TestHistoryStats_History(t *testing.T) {
	t.Run("concatenates and tags items with their session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchHistory(gomock.Any(), "s1").Return([]upstream.HistoryItem{
			{ID: "h1", ProductName: "Phone stand", Status: "sent"},
		}, nil)
		api.EXPECT().DispatchHistory(gomock.Any(), "s2").Return([]upstream.HistoryItem{
			{ID: "h2", ProductName: "Desk lamp", Status: "failed"},
		}, nil)

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		items, err := hs.History(context.Background(), dispatch.ScopeAll)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "s1", items[0].SessionID)
		assert.Equal(t, models.HistoryStatusSent, items[0].Status)
		assert.Equal(t, "s2", items[1].SessionID)
		assert.Equal(t, models.HistoryStatusFailed, items[1].Status)
	})

	t.Run("partial failure returns the surviving items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchHistory(gomock.Any(), "s1").Return(nil, errors.New("timeout"))
		api.EXPECT().DispatchHistory(gomock.Any(), "s2").Return([]upstream.HistoryItem{
			{ID: "h2", Status: "sent"},
		}, nil)

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		items, err := hs.History(context.Background(), dispatch.ScopeAll)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "h2", items[0].ID)
	})

	t.Run("all sessions failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().DispatchHistory(gomock.Any(), "s1").Return(nil, errors.New("timeout"))

		hs := dispatch.NewHistoryStats(api, sessionIDs{"s1"}, zap.NewNop())

		_, err := hs.History(context.Background(), dispatch.ScopeAll)
		assert.ErrorIs(t, err, dispatch.ErrAllSessionsFailed)
	})
}

func TestSentLastHour(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	recent := now.Add(-30 * time.Minute)
	old := now.Add(-2 * time.Hour)
	boundary := now.Add(-time.Hour)

	items := []models.HistoryItem{
		{ID: "h1", Status: models.HistoryStatusSent, SentAt: &recent},
		{ID: "h2", Status: models.HistoryStatusSent, SentAt: &old},
		{ID: "h3", Status: models.HistoryStatusSent, SentAt: &boundary},
		{ID: "h4", Status: models.HistoryStatusFailed, SentAt: &recent},
		{ID: "h5", Status: models.HistoryStatusSent},
	}

	assert.Equal(t, 2, dispatch.SentLastHour(items, now))
}

func TestHistoryItem_DisplayTime(t *testing.T) {
	created := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	sent := time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)

	withSent := models.HistoryItem{SentAt: &sent, CreatedAt: created}
	assert.Equal(t, sent, withSent.DisplayTime())

	withoutSent := models.HistoryItem{CreatedAt: created}
	assert.Equal(t, created, withoutSent.DisplayTime())
}
