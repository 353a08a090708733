package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	mu          sync.Mutex
	subscribed  []string
	unsubscribd []string
	failSub     bool
}

func (f *fakeSubscriber) Subscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSub {
		return assert.AnError
	}
	f.subscribed = append(f.subscribed, channel)
	return nil
}

func (f *fakeSubscriber) Unsubscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribd = append(f.unsubscribd, channel)
	return nil
}

func (f *fakeSubscriber) unsubCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.unsubscribd)
}

// dialManager spins up a manager behind a real WebSocket server and dials
// it, returning the manager and the client connection.
func dialManager(t *testing.T, sub RoomSubscriber) (*ConnectionManager, *websocket.Conn) {
	t.Helper()
	m := NewConnectionManager(time.Second, slog.Default())
	if sub != nil {
		m.SetSubscriber(sub)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		m.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(context.Background(), url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return m, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func writeMessage(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestHandleConnection_SubscribeAndBroadcast(t *testing.T) {
	sub := &fakeSubscriber{}
	m, conn := dialManager(t, sub)

	established := readMessage(t, conn)
	assert.Equal(t, "connection.established", established["type"])

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "research:sess-1"})
	confirmed := readMessage(t, conn)
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
	assert.Equal(t, "research:sess-1", confirmed["channel"])

	payload, err := EncodeEvent(NewProgressUpdate("sess-1", 33, "analyze", ""))
	require.NoError(t, err)
	m.Broadcast("research:sess-1", payload)

	event := readMessage(t, conn)
	assert.Equal(t, "progress_update", event["type"])
	assert.Equal(t, float64(33), event["progress"])

	// Broker subscription happened exactly once.
	sub.mu.Lock()
	assert.Equal(t, []string{"research:sess-1"}, sub.subscribed)
	sub.mu.Unlock()
}

func TestHandleConnection_RejectsForeignChannels(t *testing.T) {
	_, conn := dialManager(t, nil)
	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "admin:secrets"})
	errMsg := readMessage(t, conn)
	assert.Equal(t, "error", errMsg["type"])
}

func TestHandleConnection_SubscribeFailure(t *testing.T) {
	sub := &fakeSubscriber{failSub: true}
	m, conn := dialManager(t, sub)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "research:sess-1"})
	resp := readMessage(t, conn)
	assert.Equal(t, "subscription.error", resp["type"])
	assert.Zero(t, m.subscriberCount("research:sess-1"))
}

func TestHandleConnection_Ping(t *testing.T) {
	_, conn := dialManager(t, nil)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "ping"})
	resp := readMessage(t, conn)
	assert.Equal(t, "pong", resp["type"])
}

func TestHandleConnection_UnsubscribeDropsBrokerSub(t *testing.T) {
	sub := &fakeSubscriber{}
	m, conn := dialManager(t, sub)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "research:sess-1"})
	readMessage(t, conn)
	require.Eventually(t, func() bool { return m.subscriberCount("research:sess-1") == 1 },
		time.Second, 10*time.Millisecond)

	writeMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: "research:sess-1"})
	require.Eventually(t, func() bool { return m.subscriberCount("research:sess-1") == 0 },
		time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return sub.unsubCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestBroadcast_NoSubscribersIsNoop(t *testing.T) {
	m := NewConnectionManager(time.Second, slog.Default())
	m.Broadcast("research:nobody", []byte(`{}`))
}

func TestUnregisterCleansSubscriptions(t *testing.T) {
	sub := &fakeSubscriber{}
	m, conn := dialManager(t, sub)
	readMessage(t, conn)

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "research:sess-9"})
	readMessage(t, conn)
	require.Eventually(t, func() bool { return m.ActiveConnections() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return m.ActiveConnections() == 0 },
		time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return m.subscriberCount("research:sess-9") == 0 },
		time.Second, 10*time.Millisecond)
}
