// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "teachmatch/internal/delivery/context"
	"teachmatch/internal/domain/service"
)

// relayBroadcast delivers an event to the local hub and relays it through the
// event publisher so sibling instances can replay it to their own connections.
// Relay failures are logged and swallowed: local delivery already happened and
// the persisted record stays queryable either way.
func relayBroadcast(
	ctx context.Context,
	broadcaster service.RoomBroadcaster,
	publisher service.EventPublisher,
	logger *slog.Logger,
	roomID, event string,
	payload any,
) {
	broadcaster.Broadcast(roomID, event, payload)

	encoded, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to encode room event payload",
			slog.String("room_id", roomID),
			slog.String("event", event),
			slog.String("error", err.Error()),
		)

		return
	}

	roomEvent := &service.RoomEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		RoomID:    roomID,
		Event:     event,
		Payload:   encoded,
	}

	if err := publisher.PublishRoomEvent(ctx, roomEvent); err != nil {
		logger.Error("failed to relay room event",
			slog.String("room_id", roomID),
			slog.String("event", event),
			slog.String("error", err.Error()),
		)
	}
}
