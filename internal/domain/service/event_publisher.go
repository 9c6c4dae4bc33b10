package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// InstanceID identifies one process for the lifetime of that process. Relayed
// room events carry it as their origin so the originating instance can drop
// its own events when they come back through the push subscription; without
// that, clients connected to the originator would see every event twice.
type InstanceID string

// NewInstanceID mints the process identity. Provided once per process.
func NewInstanceID() InstanceID {
	return InstanceID(uuid.New().String())
}

// RoomEvent is a room broadcast serialized for cross-instance relay. A worker
// instance receiving it re-broadcasts to its local hub, which is how the
// single-process room index scales horizontally.
type RoomEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	Origin    string          `json:"origin,omitempty"`     // Publishing instance, set by the publisher
	RoomID    string          `json:"room_id"`
	Event     string          `json:"event"`
	Payload   json.RawMessage `json:"payload"`
}

// EventPublisher defines the interface for publishing room events to a
// message queue for other instances to replay.
type EventPublisher interface {
	// PublishRoomEvent publishes a room broadcast for cross-instance delivery.
	PublishRoomEvent(ctx context.Context, event *RoomEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
