package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type captureBroadcaster struct {
	mu     sync.Mutex
	events []struct {
		channel string
		payload []byte
	}
}

func (c *captureBroadcaster) Broadcast(channel string, event []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, struct {
		channel string
		payload []byte
	}{channel, event})
}

func (c *captureBroadcaster) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func (c *captureBroadcaster) last() (string, []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.events[len(c.events)-1]
	return e.channel, e.payload
}

func TestPublisherListenerRoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	target := &captureBroadcaster{}
	listener := NewBrokerListener(rdb, target, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go listener.Start(ctx)

	// Wait for the pub/sub connection before subscribing.
	require.Eventually(t, func() bool {
		return listener.Subscribe(context.Background(), ChannelForSession("sess-1")) == nil
	}, time.Second, 10*time.Millisecond)

	pub := NewRedisPublisher(rdb, slog.Default())
	pub.Publish(context.Background(), "sess-1", NewSourceFound("sess-1", "https://x.test/a", "A Title"))

	require.Eventually(t, func() bool { return target.count() == 1 }, time.Second, 10*time.Millisecond)

	channel, payload := target.last()
	assert.Equal(t, "research:sess-1", channel)

	var got SourceFound
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, TypeSourceFound, got.Type)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "https://x.test/a", got.URL)
	assert.Equal(t, "A Title", got.Title)
	assert.False(t, got.Timestamp.IsZero())
}

func TestListener_UnsubscribeStopsRelay(t *testing.T) {
	rdb := newTestRedis(t)
	target := &captureBroadcaster{}
	listener := NewBrokerListener(rdb, target, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go listener.Start(ctx)

	require.Eventually(t, func() bool {
		return listener.Subscribe(context.Background(), ChannelForSession("sess-2")) == nil
	}, time.Second, 10*time.Millisecond)

	pub := NewRedisPublisher(rdb, slog.Default())
	pub.Publish(context.Background(), "sess-2", NewProgressUpdate("sess-2", 33, "analyze", ""))
	require.Eventually(t, func() bool { return target.count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, listener.Unsubscribe(context.Background(), ChannelForSession("sess-2")))
	pub.Publish(context.Background(), "sess-2", NewProgressUpdate("sess-2", 66, "write", ""))

	// Give the relay a moment; nothing further should arrive.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, target.count())
}

func TestPublish_EventsWellFormed(t *testing.T) {
	tests := []struct {
		name  string
		event any
		check func(t *testing.T, m map[string]any)
	}{
		{
			name:  "status_change",
			event: NewStatusChange("s", "processing", ""),
			check: func(t *testing.T, m map[string]any) {
				assert.Equal(t, "status_change", m["type"])
				assert.Equal(t, "processing", m["status"])
				assert.NotContains(t, m, "error_message")
			},
		},
		{
			name:  "status_change with error",
			event: NewStatusChange("s", "failed", "llm unreachable"),
			check: func(t *testing.T, m map[string]any) {
				assert.Equal(t, "llm unreachable", m["error_message"])
			},
		},
		{
			name:  "research_complete",
			event: NewResearchComplete("s", "rep-1", 1200, 8),
			check: func(t *testing.T, m map[string]any) {
				assert.Equal(t, "research_complete", m["type"])
				assert.Equal(t, "rep-1", m["report_id"])
				assert.Equal(t, float64(1200), m["word_count"])
				assert.Equal(t, float64(8), m["source_count"])
			},
		},
		{
			name:  "progress_update",
			event: NewProgressUpdate("s", 66, "write", "drafting report"),
			check: func(t *testing.T, m map[string]any) {
				assert.Equal(t, float64(66), m["progress"])
				assert.Equal(t, "write", m["stage"])
			},
		},
		{
			name:  "error",
			event: NewErrorEvent("s", "boom"),
			check: func(t *testing.T, m map[string]any) {
				assert.Equal(t, "error", m["type"])
				assert.Equal(t, "boom", m["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			assert.Equal(t, "s", m["session_id"])
			assert.NotEmpty(t, m["timestamp"])
			tt.check(t, m)
		})
	}
}

func TestValidChannel(t *testing.T) {
	assert.True(t, ValidChannel("research:abc"))
	assert.False(t, ValidChannel("research:"))
	assert.False(t, ValidChannel("admin:abc"))
	assert.False(t, ValidChannel(""))
}
