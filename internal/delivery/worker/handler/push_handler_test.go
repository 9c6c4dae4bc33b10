package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teachmatch/config"
	"teachmatch/internal/domain/service"
	mockService "teachmatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler     *PushHandler
	broadcaster *mockService.MockRoomBroadcaster
	instanceID  service.InstanceID
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	broadcaster := mockService.NewMockRoomBroadcaster(t)
	instanceID := service.NewInstanceID()

	handler := NewPushHandler(PushHandlerParams{
		Config:      &config.Config{},
		InstanceID:  instanceID,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Broadcaster: broadcaster,
	})

	return pushHandlerFixtures{
		handler:     handler,
		broadcaster: broadcaster,
		instanceID:  instanceID,
	}
}

// pushRequest wraps a room event the way Pub/Sub delivers it to the endpoint.
func pushRequest(t *testing.T, event *service.RoomEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Subscription = "projects/test/subscriptions/room-events-sub"
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = "m-1"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_ForeignEventReplaysIntoHub(t *testing.T) {
	fx := createTestPushHandler(t)

	payload := json.RawMessage(`{"body":"hi"}`)
	c, rec := pushRequest(t, &service.RoomEvent{
		Origin:  "some-other-instance",
		RoomID:  "conversation:abc",
		Event:   "new_message",
		Payload: payload,
	})

	fx.broadcaster.EXPECT().
		Broadcast("conversation:abc", "new_message", payload)

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SelfOriginatedEventIsDropped(t *testing.T) {
	fx := createTestPushHandler(t)

	// The originating instance already broadcast this event before publishing
	// it. When the topic pushes it back, replaying it would deliver every
	// event twice to clients connected here, so it must be acked and dropped.
	c, rec := pushRequest(t, &service.RoomEvent{
		Origin:  string(fx.instanceID),
		RoomID:  "conversation:abc",
		Event:   "new_message",
		Payload: json.RawMessage(`{"body":"hi"}`),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.broadcaster.AssertNotCalled(t, "Broadcast")
}

func TestPushHandler_EventWithoutOriginStillReplays(t *testing.T) {
	fx := createTestPushHandler(t)

	payload := json.RawMessage(`{"count":2}`)
	c, rec := pushRequest(t, &service.RoomEvent{
		RoomID:  "user:u-1",
		Event:   "messages_read",
		Payload: payload,
	})

	fx.broadcaster.EXPECT().
		Broadcast("user:u-1", "messages_read", payload)

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEventIsAcked(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.RoomEvent{
		Origin:  "some-other-instance",
		Payload: json.RawMessage(`{}`),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.broadcaster.AssertNotCalled(t, "Broadcast")
}
