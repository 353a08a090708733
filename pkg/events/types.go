// Package events implements the realtime progress fanout: workers publish
// session events to the Redis broker, each API pod relays them to the
// WebSocket clients subscribed to that session's room. Delivery is
// best-effort and at-most-once; there is no backlog replay. The report in
// the database is the source of truth, events are advisory.
package events

import "time"

// EventType identifies an event payload.
type EventType string

// Event types published over a session's room.
const (
	TypeProgressUpdate   EventType = "progress_update"
	TypeStatusChange     EventType = "status_change"
	TypeSourceFound      EventType = "source_found"
	TypePartialReport    EventType = "partial_report"
	TypeResearchComplete EventType = "research_complete"
	TypeError            EventType = "error"
)

// channelPrefix namespaces session rooms on the broker.
const channelPrefix = "research:"

// ChannelForSession returns the broker channel for a session's room.
func ChannelForSession(sessionID string) string {
	return channelPrefix + sessionID
}

// ValidChannel reports whether a client-supplied channel names a session
// room. Clients cannot subscribe outside the research namespace.
func ValidChannel(channel string) bool {
	return len(channel) > len(channelPrefix) && channel[:len(channelPrefix)] == channelPrefix
}

// BaseEvent carries the fields common to every payload.
type BaseEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientMessage is a message from a WebSocket client.
type ClientMessage struct {
	Action  string `json:"action"` // subscribe, unsubscribe, ping
	Channel string `json:"channel,omitempty"`
}
