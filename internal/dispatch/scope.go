// Package dispatch aggregates dispatch configuration, the pending queue and
// delivery history across one or many WhatsApp sessions into consistent
// merged views.
package dispatch

import (
	"context"
	"errors"

	"github.com/zapdeals/console/internal/upstream"
)

var (
	// ErrReadOnlyScope rejects mutations under the all-sessions scope. The
	// rejection is local: no network call is issued.
	ErrReadOnlyScope = errors.New("the all-sessions view is read-only, choose a specific session")
	ErrNicheRequired = errors.New("niche is required")
)

// Scope selects either one concrete session or the synthetic all-sessions
// aggregate view.
type Scope string

// ScopeAll is the synthetic read-only aggregate over every known session.
const ScopeAll Scope = "all"

// IsAll reports whether the scope is the all-sessions aggregate.
func (s Scope) IsAll() bool {
	return s == ScopeAll || s == ""
}

// SessionID returns the concrete session id, or "" for the aggregate scope.
func (s Scope) SessionID() string {
	if s.IsAll() {
		return ""
	}
	return string(s)
}

// SessionSource yields the identifiers the aggregate scope fans out over.
// The session registry is the only implementation outside tests.
type SessionSource interface {
	IDs() []string
}

// API is the subset of the upstream contract the aggregators depend on.
type API interface {
	NicheGroups(ctx context.Context, sessionID string) ([]upstream.Group, error)
	DispatchConfigs(ctx context.Context, sessionID string) ([]upstream.NicheConfig, error)
	SaveDispatchConfig(ctx context.Context, req upstream.ConfigUpsert) error
	DeleteDispatchConfig(ctx context.Context, sessionID, niche string) error
	DispatchQueue(ctx context.Context, sessionID, niche string) ([]upstream.QueueItem, error)
	DispatchHistory(ctx context.Context, sessionID string) ([]upstream.HistoryItem, error)
	DispatchStats(ctx context.Context, sessionID string) (*upstream.Stats, error)
}

// resolveSessions expands a scope into the session ids of one aggregation
// pass.
func resolveSessions(scope Scope, source SessionSource) []string {
	if scope.IsAll() {
		return source.IDs()
	}
	return []string{string(scope)}
}
