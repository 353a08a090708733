package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Publisher pushes session events into the broker. Implementations are
// best-effort: a failed publish is logged and dropped, never retried, and
// never fails the session.
type Publisher interface {
	Publish(ctx context.Context, sessionID string, event any)
}

// RedisPublisher publishes events over Redis pub/sub.
type RedisPublisher struct {
	rdb    redis.UniversalClient
	logger *slog.Logger
}

// NewRedisPublisher creates a publisher on the given Redis client.
func NewRedisPublisher(rdb redis.UniversalClient, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{
		rdb:    rdb,
		logger: logger.With("component", "events"),
	}
}

// Publish marshals the event and publishes it to the session's room.
func (p *RedisPublisher) Publish(ctx context.Context, sessionID string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event", "session_id", sessionID, "error", err)
		return
	}
	channel := ChannelForSession(sessionID)
	if err := p.rdb.Publish(ctx, channel, data).Err(); err != nil {
		p.logger.Warn("failed to publish event",
			"session_id", sessionID,
			"channel", channel,
			"error", err)
	}
}

// NopPublisher discards events. Used in tests and offline tooling.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, any) {}

// verify interface compliance
var (
	_ Publisher = (*RedisPublisher)(nil)
	_ Publisher = NopPublisher{}
)

// EncodeEvent renders an event the way Publish does; used by tests and the
// relay path.
func EncodeEvent(event any) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}
