package dispatch

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/upstream"
)

const (
	// MinIntervalMinutes is the domain floor for dispatch intervals. Values
	// below it are clamped up at the point of input, never silently stored.
	MinIntervalMinutes = 5

	defaultStartTime = "00:00"
	defaultEndTime   = "23:59"
)

// SaveParams are the mutable fields of one (session, niche) config.
type SaveParams struct {
	IntervalMinutes int    `json:"interval_minutes"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Paused          bool   `json:"paused"`
}

// ConfigManager loads and mutates per-niche dispatch configuration. The
// all-sessions scope is strictly read-only: Save and Delete reject it before
// any network call.
type ConfigManager struct {
	api      API
	sessions SessionSource
	logger   *zap.Logger
}

func NewConfigManager(api API, sessions SessionSource, logger *zap.Logger) *ConfigManager {
	return &ConfigManager{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Load fans out one config fetch and one group fetch per session in scope,
// tags every record with its owning session id at the point of return and
// merges into a single list. Niches that have groups but no saved config
// surface with defaults: 5 minute interval, full-day window, paused.
func (m *ConfigManager) Load(ctx context.Context, scope Scope) []models.NicheConfig {
	ids := resolveSessions(scope, m.sessions)

	type result struct {
		sessionID string
		groups    []upstream.Group
		configs   []upstream.NicheConfig
		failed    bool
	}
	results := make([]result, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i].sessionID = id

			configs, groups, err := m.fetchSession(ctx, id)
			if err != nil {
				m.logger.Warn("Skipping session in config aggregation",
					zap.String("session_id", id),
					zap.Error(err))
				results[i].failed = true
				return
			}
			results[i].configs = configs
			results[i].groups = groups
		}(i, id)
	}
	wg.Wait()

	var merged []models.NicheConfig
	for _, res := range results {
		if res.failed {
			continue
		}
		merged = append(merged, m.buildSessionConfigs(res.sessionID, res.groups, res.configs)...)
	}
	return merged
}

// reload re-fetches one session's full config list after a mutation. Unlike
// the aggregate Load, a fetch failure here is an error: answering a
// successful save with an empty list would read as "all configs gone".
func (m *ConfigManager) reload(ctx context.Context, sessionID string) ([]models.NicheConfig, error) {
	configs, groups, err := m.fetchSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("config change applied but refresh failed: %w", err)
	}
	return m.buildSessionConfigs(sessionID, groups, configs), nil
}

// fetchSession fetches one session's saved configs and groups.
func (m *ConfigManager) fetchSession(ctx context.Context, sessionID string) ([]upstream.NicheConfig, []upstream.Group, error) {
	configs, err := m.api.DispatchConfigs(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	groups, err := m.api.NicheGroups(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return configs, groups, nil
}

// Save upserts one (session, niche) config and re-fetches the session's full
// config list afterwards; the server is the source of truth for derived
// fields, so patching the single entry locally is not enough.
func (m *ConfigManager) Save(ctx context.Context, sessionID, niche string, params SaveParams) ([]models.NicheConfig, error) {
	if sessionID == "" || Scope(sessionID).IsAll() {
		return nil, ErrReadOnlyScope
	}
	if niche == "" {
		return nil, ErrNicheRequired
	}

	interval := params.IntervalMinutes
	if interval < MinIntervalMinutes {
		interval = MinIntervalMinutes
	}
	start := params.StartTime
	if start == "" {
		start = defaultStartTime
	}
	end := params.EndTime
	if end == "" {
		end = defaultEndTime
	}

	err := m.api.SaveDispatchConfig(ctx, upstream.ConfigUpsert{
		SessionID: sessionID,
		Niche:     niche,
		Interval:  interval,
		Start:     start,
		End:       end,
		Paused:    params.Paused,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return m.reload(ctx, sessionID)
}

// Delete removes one (session, niche) config under the same read-only guard
// as Save and re-fetches the session's config list.
func (m *ConfigManager) Delete(ctx context.Context, sessionID, niche string) ([]models.NicheConfig, error) {
	if sessionID == "" || Scope(sessionID).IsAll() {
		return nil, ErrReadOnlyScope
	}
	if niche == "" {
		return nil, ErrNicheRequired
	}

	if err := m.api.DeleteDispatchConfig(ctx, sessionID, niche); err != nil {
		return nil, fmt.Errorf("failed to delete config: %w", err)
	}

	return m.reload(ctx, sessionID)
}

// buildSessionConfigs joins one session's groups and saved configs into the
// per-niche view, in niche first-appearance order.
func (m *ConfigManager) buildSessionConfigs(sessionID string, groups []upstream.Group, configs []upstream.NicheConfig) []models.NicheConfig {
	saved := make(map[string]upstream.NicheConfig, len(configs))
	for _, c := range configs {
		saved[c.Niche] = c
	}

	groupsByNiche := make(map[string][]models.Group)
	for _, g := range groups {
		niche := g.Niche
		if niche == "" {
			niche = models.NoNicheLabel
		}
		groupsByNiche[niche] = append(groupsByNiche[niche], models.Group{
			SessionID: sessionID,
			GroupID:   g.GroupID,
			GroupName: g.GroupName,
			Niche:     niche,
			Active:    g.Active,
		})
	}

	var out []models.NicheConfig
	for _, niche := range NicheUnion(groups, configs) {
		cfg := models.NicheConfig{
			SessionID:       sessionID,
			Niche:           niche,
			IntervalMinutes: MinIntervalMinutes,
			StartTime:       defaultStartTime,
			EndTime:         defaultEndTime,
			// No saved config yet means dispatch stays paused until the
			// operator enables it.
			Paused: true,
			Groups: groupsByNiche[niche],
		}

		if c, ok := saved[niche]; ok {
			if c.IntervalMS > 0 {
				cfg.IntervalMinutes = int(c.IntervalMS / 60000)
				if cfg.IntervalMinutes < MinIntervalMinutes {
					cfg.IntervalMinutes = MinIntervalMinutes
				}
			}
			if c.StartTime != "" {
				cfg.StartTime = c.StartTime
			}
			if c.EndTime != "" {
				cfg.EndTime = c.EndTime
			}
			cfg.Paused = c.Paused
		}

		out = append(out, cfg)
	}
	return out
}
