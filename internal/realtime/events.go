package realtime

import (
	"encoding/json"
	"time"
)

// Client-initiated operations.
const (
	// OpJoinApplication subscribes the connection to a conversation room.
	OpJoinApplication = "join_application"
	// OpLeaveApplication unsubscribes the connection from a conversation room.
	OpLeaveApplication = "leave_application"
	// OpSendMessage sends a chat message through the connection.
	OpSendMessage = "send_message"
	// OpMarkMessagesRead marks the viewer's unread messages in a conversation.
	OpMarkMessagesRead = "mark_messages_read"
)

// Server-initiated session events. Room events broadcast by the fan-out
// engine are named in the domain service package; these cover the direct
// client/server exchange.
const (
	// EventJoined acknowledges a room join and carries the message backlog.
	EventJoined = "joined"
	// EventLeft acknowledges a room leave.
	EventLeft = "left"
	// EventMessageSent acknowledges a send_message with the persisted ID.
	EventMessageSent = "message_sent"
	// EventMarkedRead acknowledges a mark_messages_read with the flip count.
	EventMarkedRead = "marked_read"
	// EventError reports a failed operation without dropping the connection.
	EventError = "error"
)

// Envelope is the inbound frame format: an operation name plus its payload.
type Envelope struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ServerEvent is the outbound frame format shared by direct replies and room
// broadcasts.
type ServerEvent struct {
	Event     string `json:"event"`
	Room      string `json:"room,omitempty"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp int64  `json:"ts"`
}

// EncodeServerEvent builds the wire frame for an outbound event.
func EncodeServerEvent(event, room string, payload any) ([]byte, error) {
	return json.Marshal(ServerEvent{
		Event:     event,
		Room:      room,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	})
}
