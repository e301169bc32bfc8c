package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/dispatch"
	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/upstream"
	"github.com/zapdeals/console/internal/upstream/mocks"
)

// sessionIDs is a fixed SessionSource for tests.
type sessionIDs []string

func (s sessionIDs) IDs() []string {
	return s
}

func TestNicheUnion(t *testing.T) {
	tests := []struct {
		name     string
		groups   []upstream.Group
		configs  []upstream.NicheConfig
		expected []string
	}{
		{
			name: "group without a niche yields the synthetic label",
			groups: []upstream.Group{
				{GroupID: "g1", Niche: "Tech"},
				{GroupID: "g2"},
			},
			configs: []upstream.NicheConfig{
				{Niche: "Tech"},
			},
			expected: []string{"Tech", models.NoNicheLabel},
		},
		{
			name: "config-only niche is included",
			groups: []upstream.Group{
				{GroupID: "g1", Niche: "Tech"},
			},
			configs: []upstream.NicheConfig{
				{Niche: "Fashion"},
			},
			expected: []string{"Tech", "Fashion"},
		},
		{
			name:     "both sources empty",
			expected: nil,
		},
		{
			name: "duplicates collapse preserving first appearance",
			groups: []upstream.Group{
				{GroupID: "g1", Niche: "Tech"},
				{GroupID: "g2", Niche: "Fashion"},
				{GroupID: "g3", Niche: "Tech"},
			},
			configs: []upstream.NicheConfig{
				{Niche: "Fashion"},
				{Niche: "Home"},
			},
			expected: []string{"Tech", "Fashion", "Home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dispatch.NicheUnion(tt.groups, tt.configs))
		})
	}
}

func TestNicheAggregator_Load(t *testing.T) {
	t.Run("aggregate scope dedupes across sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().NicheGroups(gomock.Any(), "s1").Return([]upstream.Group{
			{GroupID: "g1", Niche: "Tech"},
		}, nil)
		api.EXPECT().DispatchConfigs(gomock.Any(), "s1").Return(nil, nil)
		api.EXPECT().NicheGroups(gomock.Any(), "s2").Return([]upstream.Group{
			{GroupID: "g2", Niche: "Tech"},
			{GroupID: "g3", Niche: "Fashion"},
		}, nil)
		api.EXPECT().DispatchConfigs(gomock.Any(), "s2").Return(nil, nil)

		agg := dispatch.NewNicheAggregator(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		niches := agg.Load(context.Background(), dispatch.ScopeAll)
		assert.Equal(t, []string{"Tech", "Fashion"}, niches)
	})

	t.Run("failed session is skipped, the rest still render", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().NicheGroups(gomock.Any(), "s1").Return(nil, errors.New("timeout"))
		api.EXPECT().DispatchConfigs(gomock.Any(), "s1").Return(nil, errors.New("timeout"))
		api.EXPECT().NicheGroups(gomock.Any(), "s2").Return([]upstream.Group{
			{GroupID: "g1", Niche: "Fashion"},
		}, nil)
		api.EXPECT().DispatchConfigs(gomock.Any(), "s2").Return(nil, nil)

		agg := dispatch.NewNicheAggregator(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		niches := agg.Load(context.Background(), dispatch.ScopeAll)
		assert.Equal(t, []string{"Fashion"}, niches)
	})

	t.Run("concrete scope only queries that session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)

		api.EXPECT().NicheGroups(gomock.Any(), "s2").Return([]upstream.Group{
			{GroupID: "g1", Niche: "Home"},
		}, nil)
		api.EXPECT().DispatchConfigs(gomock.Any(), "s2").Return(nil, nil)

		agg := dispatch.NewNicheAggregator(api, sessionIDs{"s1", "s2"}, zap.NewNop())

		niches := agg.Load(context.Background(), dispatch.Scope("s2"))
		assert.Equal(t, []string{"Home"}, niches)
	})
}
