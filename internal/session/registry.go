package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/scheduler"
	"github.com/zapdeals/console/internal/upstream"
)

// API is the subset of the upstream contract the registry depends on.
type API interface {
	ListSessions(ctx context.Context) ([]upstream.SessionInfo, error)
	SessionStatus(ctx context.Context, sessionID string) (*upstream.SessionStatus, error)
	StartSession(ctx context.Context, userID string) error
	DeleteSession(ctx context.Context, sessionID string) error
	NicheGroups(ctx context.Context, sessionID string) ([]upstream.Group, error)
}

// Registry is the only owner of Session entries. All other aggregators read
// session identifiers from it and never write back.
type Registry struct {
	api         API
	logger      *zap.Logger
	maxSessions int

	mu       sync.RWMutex
	sessions map[string]*models.Session
	order    []string

	poller *scheduler.Scheduler
}

func NewRegistry(api API, logger *zap.Logger, maxSessions int, pollInterval time.Duration) *Registry {
	r := &Registry{
		api:         api,
		logger:      logger,
		maxSessions: maxSessions,
		sessions:    make(map[string]*models.Session),
	}
	r.poller = scheduler.NewScheduler("session-status", logger, pollInterval, r.pollOnce)
	return r
}

// List returns a snapshot of known sessions in insertion order.
func (r *Registry) List() []models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.sessions[id])
	}
	return out
}

// Get returns a copy of one session.
func (r *Registry) Get(id string) (models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	return *s, true
}

// IDs returns the known session identifiers in insertion order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Count returns the number of known sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// MaxSessions returns the hard session cap.
func (r *Registry) MaxSessions() int {
	return r.maxSessions
}

// Create validates the operator-supplied number, enforces the session cap
// and only then asks the upstream to start a new session. Both rejections
// happen before any network call. The cap check and the insert run under a
// single lock acquisition, so two creates racing at one slot below the cap
// cannot both get in; the loser fails before touching the network.
func (r *Registry) Create(ctx context.Context, rawPhone string) (string, error) {
	id, err := NormalizePhone(rawPhone)
	if err != nil {
		return "", err
	}

	reserved, err := r.reserve(id)
	if err != nil {
		return "", err
	}

	if err := r.api.StartSession(ctx, id); err != nil {
		if reserved {
			r.release(id)
		}
		return "", err
	}

	if err := r.refreshOne(ctx, id); err != nil {
		// The session exists upstream; the next tick retries the status.
		r.logger.Warn("Initial status fetch failed after session start",
			zap.String("session_id", id),
			zap.Error(err))
	}

	return id, nil
}

// Reconnect re-starts an existing session. A failed reconnect is the one
// path that marks a session Disconnected.
func (r *Registry) Reconnect(ctx context.Context, id string) error {
	if _, ok := r.Get(id); !ok {
		return ErrSessionNotFound
	}

	if err := r.api.StartSession(ctx, id); err != nil {
		r.markDisconnected(id)
		return err
	}

	if err := r.refreshOne(ctx, id); err != nil {
		r.logger.Warn("Status fetch failed after reconnect",
			zap.String("session_id", id),
			zap.Error(err))
	}
	return nil
}

// Remove drops the session from the registry immediately; no later poll can
// bring it back because polling only visits known entries. The remote delete
// is attempted afterwards and its failure reported.
func (r *Registry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.sessions[id]; !ok {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	if err := r.api.DeleteSession(ctx, id); err != nil {
		r.logger.Error("Failed to delete session upstream",
			zap.String("session_id", id),
			zap.Error(err))
		return err
	}
	return nil
}

// SyncFromUpstream merges the upstream session list into the registry.
// Known sessions absent from one list response are kept; a partial listing
// must not discard local state mid-refresh.
func (r *Registry) SyncFromUpstream(ctx context.Context) error {
	infos, err := r.api.ListSessions(ctx)
	if err != nil {
		return err
	}

	for _, info := range infos {
		r.track(info.ID)
		groupCount := r.fetchActiveGroupCount(ctx, info.ID)
		r.applyPoll(info.ID, Classify(info.Status, info.QRCode), info.QRCode, groupCount)
	}
	return nil
}

// StartPolling begins the recurring status tick. One fetch per known session
// per tick, fetches run concurrently.
func (r *Registry) StartPolling(ctx context.Context) error {
	return r.poller.Start(ctx)
}

// StopPolling halts the status tick.
func (r *Registry) StopPolling() error {
	return r.poller.Stop()
}

// PollingActive reports whether the status tick is running.
func (r *Registry) PollingActive() bool {
	return r.poller.IsRunning()
}

// Refresh runs one polling pass synchronously.
func (r *Registry) Refresh(ctx context.Context) error {
	return r.pollOnce(ctx)
}

// pollOnce refreshes every known session concurrently and joins before
// returning. Per-session failures are logged and retried next tick; they
// never remove the session or touch its displayed state.
func (r *Registry) pollOnce(ctx context.Context) error {
	ids := r.IDs()
	if len(ids) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := r.refreshOne(ctx, id); err != nil {
				r.logger.Warn("Session status poll failed",
					zap.String("session_id", id),
					zap.Error(err))
			}
		}(id)
	}
	wg.Wait()

	return nil
}

// refreshOne fetches and reconciles a single session's status.
func (r *Registry) refreshOne(ctx context.Context, id string) error {
	status, err := r.api.SessionStatus(ctx, id)
	if err != nil {
		return err
	}

	groupCount := r.fetchActiveGroupCount(ctx, id)
	r.applyPoll(id, Classify(status.Status, status.QRCode), status.QRCode, groupCount)
	return nil
}

// fetchActiveGroupCount counts the session's active groups. A failed fetch
// returns nil so the previous count is kept instead of flickering to zero.
func (r *Registry) fetchActiveGroupCount(ctx context.Context, id string) *int {
	groups, err := r.api.NicheGroups(ctx, id)
	if err != nil {
		r.logger.Warn("Failed to fetch session groups",
			zap.String("session_id", id),
			zap.Error(err))
		return nil
	}

	count := 0
	for _, g := range groups {
		if g.Active {
			count++
		}
	}
	return &count
}

// track adds an entry in the initial Loading state if the id is unknown.
func (r *Registry) track(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(id)
}

// reserve claims a registry slot for a new session before the network call.
// It reports whether a new entry was inserted; re-creating a known session
// reserves nothing and bypasses the cap.
func (r *Registry) reserve(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return false, nil
	}
	if len(r.order) >= r.maxSessions {
		return false, ErrSessionLimitReached
	}
	r.insert(id)
	return true, nil
}

// release rolls back a reservation whose upstream start failed.
func (r *Registry) release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// insert expects r.mu to be held.
func (r *Registry) insert(id string) {
	if _, exists := r.sessions[id]; exists {
		return
	}
	r.sessions[id] = &models.Session{
		ID:    id,
		Name:  id,
		State: models.SessionStateLoading,
	}
	r.order = append(r.order, id)
}

// applyPoll merges one classified poll result into the entry. Fields not
// carried by the poll (a nil group count) keep their previous value, so a
// status-only update cannot clobber unrelated state. Results for sessions
// removed mid-poll are discarded: removal is authoritative.
func (r *Registry) applyPoll(id string, state models.SessionState, qrcode string, groupCount *int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return
	}

	s.State = state
	if state == models.SessionStateConnected {
		// A stale QR must never linger once the session connects.
		s.QRCode = ""
	} else {
		s.QRCode = qrcode
	}
	if groupCount != nil {
		s.GroupCount = *groupCount
	}
}

func (r *Registry) markDisconnected(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.State = models.SessionStateDisconnected
		s.QRCode = ""
	}
}
