package realtime

import (
	"log/slog"
	"sync"
	"time"

	"teachmatch/internal/domain/service"

	"github.com/google/uuid"
)

// Hub is the process-local room index: which connections are joined to which
// rooms. Joins are idempotent, disconnects remove the client from every room,
// and broadcasts never block on a slow consumer. The hub only knows this
// process; cross-instance delivery is the relay's job.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*Client]struct{}
	clientRooms map[*Client]map[string]struct{}

	statsMu       sync.Mutex
	connections   int64
	eventsOut     int64
	slowConsumers int64
	startedAt     time.Time

	logger *slog.Logger
}

// HubStats is a point-in-time snapshot for the stats endpoint.
type HubStats struct {
	Rooms         int       `json:"rooms"`
	Clients       int       `json:"clients"`
	Connections   int64     `json:"connections"`
	EventsOut     int64     `json:"events_out"`
	SlowConsumers int64     `json:"slow_consumers"`
	StartedAt     time.Time `json:"started_at"`
}

// NewHub is the constructor for Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*Client]struct{}),
		clientRooms: make(map[*Client]map[string]struct{}),
		startedAt:   time.Now(),
		logger:      logger,
	}
}

// Join subscribes the client to a room. Joining a room twice is a no-op.
func (h *Hub) Join(roomID string, client *Client) {
	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]struct{})
	}
	h.rooms[roomID][client] = struct{}{}

	if h.clientRooms[client] == nil {
		h.clientRooms[client] = make(map[string]struct{})
	}
	h.clientRooms[client][roomID] = struct{}{}
	roomSize := len(h.rooms[roomID])
	h.mu.Unlock()

	h.logger.Debug("client joined room",
		slog.String("room_id", roomID),
		slog.String("client_id", client.ID().String()),
		slog.String("user_id", client.UserID().String()),
		slog.Int("room_size", roomSize),
	)
}

// Leave unsubscribes the client from a room. Leaving a room the client never
// joined is a no-op. Empty rooms are dropped from the index.
func (h *Hub) Leave(roomID string, client *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[roomID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, roomID)
		}
	}
	if rooms, ok := h.clientRooms[client]; ok {
		delete(rooms, roomID)
	}
	h.mu.Unlock()

	h.logger.Debug("client left room",
		slog.String("room_id", roomID),
		slog.String("client_id", client.ID().String()),
	)
}

// Register tracks a new connection so it counts toward stats even before its
// first room join.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if h.clientRooms[client] == nil {
		h.clientRooms[client] = make(map[string]struct{})
	}
	h.mu.Unlock()

	h.statsMu.Lock()
	h.connections++
	h.statsMu.Unlock()
}

// Disconnect removes the client from every room and closes it.
func (h *Hub) Disconnect(client *Client) {
	h.mu.Lock()
	for roomID := range h.clientRooms[client] {
		if clients, ok := h.rooms[roomID]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	delete(h.clientRooms, client)
	h.mu.Unlock()

	client.Close()

	h.logger.Debug("client disconnected",
		slog.String("client_id", client.ID().String()),
		slog.String("user_id", client.UserID().String()),
	)
}

// Broadcast delivers an event to every connection joined to the room. Slow
// consumers are disconnected rather than allowed to stall the fan-out.
func (h *Hub) Broadcast(roomID, event string, payload any) {
	frame, err := EncodeServerEvent(event, roomID, payload)
	if err != nil {
		h.logger.Error("failed to encode broadcast frame",
			slog.String("room_id", roomID),
			slog.String("event", event),
			slog.String("error", err.Error()),
		)

		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.rooms[roomID]))
	for client := range h.rooms[roomID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	var delivered, dropped int64
	for _, client := range targets {
		if client.Enqueue(frame) {
			delivered++

			continue
		}

		dropped++
		h.logger.Warn("slow consumer, disconnecting",
			slog.String("room_id", roomID),
			slog.String("client_id", client.ID().String()),
			slog.String("user_id", client.UserID().String()),
		)
		h.Disconnect(client)
	}

	h.statsMu.Lock()
	h.eventsOut += delivered
	h.slowConsumers += dropped
	h.statsMu.Unlock()
}

// HasMobilePresence reports whether any live connection in the user's
// personal room was classified as mobile.
func (h *Hub) HasMobilePresence(userID uuid.UUID) bool {
	roomID := service.UserRoom(userID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[roomID] {
		if client.Platform() == PlatformMobile {
			return true
		}
	}

	return false
}

// IsUserOnline reports whether the user has any live connection.
func (h *Hub) IsUserOnline(userID uuid.UUID) bool {
	roomID := service.UserRoom(userID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[roomID]) > 0
}

// Stats snapshots the hub counters.
func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	rooms := len(h.rooms)
	clients := len(h.clientRooms)
	h.mu.RUnlock()

	h.statsMu.Lock()
	defer h.statsMu.Unlock()

	return HubStats{
		Rooms:         rooms,
		Clients:       clients,
		Connections:   h.connections,
		EventsOut:     h.eventsOut,
		SlowConsumers: h.slowConsumers,
		StartedAt:     h.startedAt,
	}
}

// Close disconnects every client, used on shutdown.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clientRooms))
	for client := range h.clientRooms {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.Disconnect(client)
	}

	h.logger.Info("hub shut down", slog.Int("clients", len(clients)))
}

// Hub satisfies the fan-out engine's broadcaster interface.
var _ service.RoomBroadcaster = (*Hub)(nil)
