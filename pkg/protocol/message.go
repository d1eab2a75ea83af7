// Package protocol defines the messages exchanged between the browser script
// and live components, and the codecs that put them on the wire.
package protocol

import "time"

// Client-to-server control events. Any other event name is routed to the
// component as a user interaction.
const (
	EventJoin      = "join"
	EventHeartbeat = "heartbeat"
	EventLeave     = "leave"
)

// Server-to-client events.
const (
	EventReply  = "reply"
	EventRender = "render"
	EventNotice = "notice"
	EventOpen   = "open"
	EventError  = "error"
)

// Kind classifies an incoming message by its event name.
type Kind uint8

const (
	KindEvent Kind = iota
	KindJoin
	KindHeartbeat
	KindLeave
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindJoin:
		return "join"
	case KindHeartbeat:
		return "heartbeat"
	case KindLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Message is one frame on a live socket.
type Message struct {
	// Ref correlates a reply with the request that caused it.
	Ref     string         `json:"ref,omitempty" msgpack:"ref,omitempty"`
	Topic   string         `json:"topic,omitempty" msgpack:"topic,omitempty"`
	Event   string         `json:"event" msgpack:"event"`
	Payload map[string]any `json:"payload,omitempty" msgpack:"payload,omitempty"`
	// Timestamp is set on server-originated frames, in Unix milliseconds.
	Timestamp int64 `json:"ts,omitempty" msgpack:"ts,omitempty"`
}

// NewMessage creates a server frame stamped with the current time.
func NewMessage(topic, event string, payload map[string]any) Message {
	return Message{
		Topic:     topic,
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Kind reports how the message should be dispatched.
func (m Message) Kind() Kind {
	switch m.Event {
	case EventJoin:
		return KindJoin
	case EventHeartbeat:
		return KindHeartbeat
	case EventLeave:
		return KindLeave
	default:
		return KindEvent
	}
}

// Reply builds an acknowledgement for m.
func (m Message) Reply(status string, payload map[string]any) Message {
	body := map[string]any{"status": status}
	if payload != nil {
		body["response"] = payload
	}
	r := NewMessage(m.Topic, EventReply, body)
	r.Ref = m.Ref
	return r
}
