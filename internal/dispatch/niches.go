package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/upstream"
)

// NicheUnion computes the distinct niche labels drawn from group
// registrations and saved dispatch configs. Groups without a niche
// contribute the synthetic "no niche" label. Order is first appearance
// across the two sources; duplicates collapse.
func NicheUnion(groups []upstream.Group, configs []upstream.NicheConfig) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(niche string) {
		if niche == "" {
			niche = models.NoNicheLabel
		}
		if _, ok := seen[niche]; ok {
			return
		}
		seen[niche] = struct{}{}
		out = append(out, niche)
	}

	for _, g := range groups {
		add(g.Niche)
	}
	for _, c := range configs {
		add(c.Niche)
	}
	return out
}

// NicheAggregator derives the set of niches visible under a scope.
type NicheAggregator struct {
	api      API
	sessions SessionSource
	logger   *zap.Logger
}

func NewNicheAggregator(api API, sessions SessionSource, logger *zap.Logger) *NicheAggregator {
	return &NicheAggregator{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Load fetches groups and configs for every session in scope, concurrently,
// and unions the niche labels. A niche appearing in any session is included
// once. Sessions whose fetches fail are skipped; the rest still render.
func (a *NicheAggregator) Load(ctx context.Context, scope Scope) []string {
	ids := resolveSessions(scope, a.sessions)

	type result struct {
		groups  []upstream.Group
		configs []upstream.NicheConfig
	}
	results := make([]result, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			groups, err := a.api.NicheGroups(ctx, id)
			if err != nil {
				a.logger.Warn("Failed to fetch groups for niche aggregation",
					zap.String("session_id", id),
					zap.Error(err))
			} else {
				results[i].groups = groups
			}

			configs, err := a.api.DispatchConfigs(ctx, id)
			if err != nil {
				a.logger.Warn("Failed to fetch configs for niche aggregation",
					zap.String("session_id", id),
					zap.Error(err))
			} else {
				results[i].configs = configs
			}
		}(i, id)
	}
	wg.Wait()

	// Merge in session order so the aggregate list is deterministic.
	seen := make(map[string]struct{})
	var out []string
	for _, res := range results {
		for _, niche := range NicheUnion(res.groups, res.configs) {
			if _, ok := seen[niche]; ok {
				continue
			}
			seen[niche] = struct{}{}
			out = append(out, niche)
		}
	}
	return out
}
