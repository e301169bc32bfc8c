// Package cache stores the last successful aggregate snapshots in Redis so
// a fully failed polling pass can fall back to a stale view instead of an
// empty one.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "console:snapshot:"

// Snapshots is a best-effort JSON store. Every failure is logged and
// swallowed: losing the cache only loses the stale fallback.
type Snapshots struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewSnapshots(client *redis.Client, logger *zap.Logger, ttl time.Duration) *Snapshots {
	return &Snapshots{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

// Put stores value under key, overwriting any previous snapshot.
func (s *Snapshots) Put(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to marshal snapshot", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("Failed to cache snapshot", zap.String("key", key), zap.Error(err))
	}
}

// Get loads the snapshot under key into dest. It returns false when there is
// no snapshot or the cache is unreachable.
func (s *Snapshots) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Failed to read snapshot", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("Failed to unmarshal snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Ping checks cache connectivity for health reporting.
func (s *Snapshots) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
