package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Broadcaster receives relayed events for local WebSocket fanout.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, event []byte)
}

// BrokerListener subscribes to session rooms on the Redis broker and
// relays received events to the local Broadcaster. Each pod runs one
// listener; rooms are subscribed only while a local client wants them.
type BrokerListener struct {
	rdb    redis.UniversalClient
	target Broadcaster
	logger *slog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
}

// NewBrokerListener creates a listener relaying into target.
func NewBrokerListener(rdb redis.UniversalClient, target Broadcaster, logger *slog.Logger) *BrokerListener {
	return &BrokerListener{
		rdb:    rdb,
		target: target,
		logger: logger.With("component", "events"),
	}
}

// Start opens the pub/sub connection and runs the relay loop until ctx is
// cancelled. Call once, in its own goroutine.
func (l *BrokerListener) Start(ctx context.Context) {
	l.mu.Lock()
	l.pubsub = l.rdb.Subscribe(ctx)
	ch := l.pubsub.Channel()
	l.mu.Unlock()

	l.logger.Info("broker listener started")
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				l.logger.Info("broker listener channel closed")
				return
			}
			l.target.Broadcast(msg.Channel, []byte(msg.Payload))
		}
	}
}

// Subscribe starts relaying a room. Synchronous: when it returns, events
// published to the room will be received.
func (l *BrokerListener) Subscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pubsub == nil {
		return redis.ErrClosed
	}
	return l.pubsub.Subscribe(ctx, channel)
}

// Unsubscribe stops relaying a room.
func (l *BrokerListener) Unsubscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pubsub == nil {
		return nil
	}
	return l.pubsub.Unsubscribe(ctx, channel)
}

// Close tears down the pub/sub connection.
func (l *BrokerListener) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pubsub != nil {
		_ = l.pubsub.Close()
		l.pubsub = nil
	}
}
