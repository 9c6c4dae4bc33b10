package service

import "github.com/google/uuid"

// RoomBroadcaster is the fan-out engine's view of the realtime layer: deliver
// an event to every currently-subscribed local connection of a logical room,
// and inspect presence for the popup policy. Broadcasts are synchronous,
// in-memory and local to this process; cross-instance delivery goes through
// the EventPublisher relay.
type RoomBroadcaster interface {
	// Broadcast delivers an event payload to every connection joined to the room.
	Broadcast(roomID, event string, payload any)

	// HasMobilePresence reports whether any live connection in the user's
	// personal room was classified as a mobile client.
	HasMobilePresence(userID uuid.UUID) bool
}
