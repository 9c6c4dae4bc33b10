package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"teachmatch/config"
	"teachmatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn is an in-memory wsConn; the hub tests never touch a real socket.
type fakeConn struct {
	closed atomic.Bool
}

func (f *fakeConn) ReadMessage() (int, []byte, error)       { return 0, nil, io.EOF }
func (f *fakeConn) WriteMessage(int, []byte) error          { return nil }
func (f *fakeConn) SetReadLimit(int64)                      {}
func (f *fakeConn) SetReadDeadline(time.Time) error         { return nil }
func (f *fakeConn) SetWriteDeadline(time.Time) error        { return nil }
func (f *fakeConn) SetPongHandler(func(appData string) error) {}
func (f *fakeConn) Close() error {
	f.closed.Store(true)

	return nil
}

func testRealtimeConfig(bufferSize int) config.RealtimeConfig {
	return config.RealtimeConfig{
		SendBufferSize: bufferSize,
		BacklogLimit:   20,
		MaxMessageSize: 4096,
		PongWait:       time.Minute,
		WriteWait:      10 * time.Second,
	}
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(userID uuid.UUID, platform Platform, bufferSize int) *Client {
	return NewClient(&fakeConn{}, userID, platform, testRealtimeConfig(bufferSize))
}

// drainFrame pops one queued frame off the client's send buffer.
func drainFrame(t *testing.T, client *Client) ServerEvent {
	t.Helper()

	select {
	case frame := <-client.send:
		var event ServerEvent
		require.NoError(t, json.Unmarshal(frame, &event))

		return event
	default:
		t.Fatal("no frame queued")

		return ServerEvent{}
	}
}

func TestHub_JoinIsIdempotent(t *testing.T) {
	hub := newTestHub()
	client := newTestClient(uuid.New(), PlatformWeb, 4)

	hub.Register(client)
	hub.Join("conversation:abc", client)
	hub.Join("conversation:abc", client)

	stats := hub.Stats()
	assert.Equal(t, 1, stats.Rooms)
	assert.Equal(t, 1, stats.Clients)

	hub.Broadcast("conversation:abc", "ping", nil)
	drainFrame(t, client)

	// A double join must not double-deliver.
	select {
	case <-client.send:
		t.Fatal("frame delivered twice to one client")
	default:
	}
}

func TestHub_BroadcastFanOut(t *testing.T) {
	hub := newTestHub()
	first := newTestClient(uuid.New(), PlatformWeb, 4)
	second := newTestClient(uuid.New(), PlatformMobile, 4)
	outsider := newTestClient(uuid.New(), PlatformWeb, 4)

	hub.Join("feed", first)
	hub.Join("feed", second)
	hub.Join("conversation:other", outsider)

	hub.Broadcast("feed", "job_posted", map[string]string{"job_id": "42"})

	for _, client := range []*Client{first, second} {
		event := drainFrame(t, client)
		assert.Equal(t, "job_posted", event.Event)
		assert.Equal(t, "feed", event.Room)
		assert.NotZero(t, event.Timestamp)
	}

	select {
	case <-outsider.send:
		t.Fatal("event leaked into another room")
	default:
	}

	assert.Equal(t, int64(2), hub.Stats().EventsOut)
}

func TestHub_BroadcastToEmptyRoom(t *testing.T) {
	hub := newTestHub()

	hub.Broadcast("conversation:nobody", "new_message", nil)

	assert.Zero(t, hub.Stats().EventsOut)
}

func TestHub_SlowConsumerIsDisconnected(t *testing.T) {
	hub := newTestHub()
	slow := newTestClient(uuid.New(), PlatformWeb, 1)

	hub.Join("feed", slow)
	hub.Broadcast("feed", "first", nil)
	// Buffer is full now; the next fan-out drops the client.
	hub.Broadcast("feed", "second", nil)

	stats := hub.Stats()
	assert.Equal(t, int64(1), stats.SlowConsumers)
	assert.Equal(t, 0, stats.Rooms)
	assert.Equal(t, 0, stats.Clients)

	select {
	case <-slow.Done():
	default:
		t.Fatal("slow consumer left connected")
	}
}

func TestHub_LeaveDropsEmptyRoom(t *testing.T) {
	hub := newTestHub()
	client := newTestClient(uuid.New(), PlatformWeb, 4)

	hub.Join("conversation:abc", client)
	hub.Leave("conversation:abc", client)

	assert.Equal(t, 0, hub.Stats().Rooms)

	// Leaving a room never joined is a no-op.
	hub.Leave("conversation:never", client)

	hub.Broadcast("conversation:abc", "new_message", nil)
	select {
	case <-client.send:
		t.Fatal("frame delivered after leave")
	default:
	}
}

func TestHub_DisconnectRemovesFromAllRooms(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	client := newTestClient(userID, PlatformMobile, 4)

	hub.Register(client)
	hub.Join(service.UserRoom(userID), client)
	hub.Join("feed", client)
	hub.Join("conversation:abc", client)

	hub.Disconnect(client)

	stats := hub.Stats()
	assert.Equal(t, 0, stats.Rooms)
	assert.Equal(t, 0, stats.Clients)
	assert.False(t, hub.IsUserOnline(userID))
	assert.False(t, client.Enqueue([]byte("{}")))
}

func TestHub_HasMobilePresence(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	web := newTestClient(userID, PlatformWeb, 4)

	hub.Join(service.UserRoom(userID), web)
	assert.False(t, hub.HasMobilePresence(userID))
	assert.True(t, hub.IsUserOnline(userID))

	mobile := newTestClient(userID, PlatformMobile, 4)
	hub.Join(service.UserRoom(userID), mobile)
	assert.True(t, hub.HasMobilePresence(userID))

	// A mobile client of another user does not count.
	assert.False(t, hub.HasMobilePresence(uuid.New()))
}

func TestHub_ConnectionsCounterOnlyGrows(t *testing.T) {
	hub := newTestHub()

	for range 3 {
		client := newTestClient(uuid.New(), PlatformWeb, 4)
		hub.Register(client)
		hub.Disconnect(client)
	}

	stats := hub.Stats()
	assert.Equal(t, int64(3), stats.Connections)
	assert.Equal(t, 0, stats.Clients)
}

func TestHub_CloseDisconnectsEveryone(t *testing.T) {
	hub := newTestHub()
	first := newTestClient(uuid.New(), PlatformWeb, 4)
	second := newTestClient(uuid.New(), PlatformMobile, 4)

	hub.Register(first)
	hub.Register(second)
	hub.Join("feed", first)
	hub.Join("feed", second)

	hub.Close()

	assert.Equal(t, 0, hub.Stats().Clients)
	for _, client := range []*Client{first, second} {
		select {
		case <-client.Done():
		default:
			t.Fatal("client survived hub shutdown")
		}
	}
}

func TestClient_EnqueueAfterClose(t *testing.T) {
	conn := &fakeConn{}
	client := NewClient(conn, uuid.New(), PlatformWeb, testRealtimeConfig(4))

	assert.True(t, client.Enqueue([]byte("{}")))

	client.Close()
	client.Close() // safe to repeat

	assert.False(t, client.Enqueue([]byte("{}")))
	assert.True(t, conn.closed.Load())
}
