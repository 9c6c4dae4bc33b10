package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	mockUsecase "teachmatch/internal/mocks/usecase"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scriptedConn feeds pre-scripted inbound frames; closing the channel ends the
// read pump like a peer disconnect would.
type scriptedConn struct {
	fakeConn
	frames chan []byte
}

func (c *scriptedConn) ReadMessage() (int, []byte, error) {
	frame, ok := <-c.frames
	if !ok {
		return 0, nil, io.EOF
	}

	return websocket.TextMessage, frame, nil
}

// sessionFixtures holds all test dependencies for session tests.
type sessionFixtures struct {
	session   *Session
	client    *Client
	hub       *Hub
	user      *entity.User
	messageUC *mockUsecase.MockMessageUsecase
}

func createTestSession(t *testing.T, roles entity.Roles) sessionFixtures {
	hub := newTestHub()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Roles:    roles,
		IsActive: true,
	}
	client := newTestClient(user.ID, PlatformWeb, 8)
	messageUC := mockUsecase.NewMockMessageUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	session := NewSession(context.Background(), client, hub, user, messageUC, testRealtimeConfig(8), logger)

	return sessionFixtures{
		session:   session,
		client:    client,
		hub:       hub,
		user:      user,
		messageUC: messageUC,
	}
}

func frameFor(t *testing.T, op string, data any) []byte {
	t.Helper()

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	frame, err := json.Marshal(Envelope{Op: op, Data: encoded})
	require.NoError(t, err)

	return frame
}

func TestSession_RunJoinsImplicitRooms(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleSchool})

	conn := &scriptedConn{frames: make(chan []byte)}
	fx.client.conn = conn

	done := make(chan struct{})
	go func() {
		fx.session.Run()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return fx.hub.IsUserOnline(fx.user.ID)
	}, time.Second, 5*time.Millisecond)

	// Personal room, feed and the school applications room.
	assert.Equal(t, 3, fx.hub.Stats().Rooms)

	close(conn.frames)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not shut down")
	}

	assert.False(t, fx.hub.IsUserOnline(fx.user.ID))
	assert.Equal(t, 0, fx.hub.Stats().Clients)
}

func TestSession_TeacherSkipsApplicationsRoom(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conn := &scriptedConn{frames: make(chan []byte)}
	fx.client.conn = conn

	done := make(chan struct{})
	go func() {
		fx.session.Run()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return fx.hub.IsUserOnline(fx.user.ID)
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 2, fx.hub.Stats().Rooms)

	close(conn.frames)
	<-done
}

func TestSession_JoinApplication(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conversation := &entity.Conversation{ID: uuid.New(), TeacherID: fx.user.ID, SchoolID: uuid.New()}
	backlog := []*entity.Message{{ID: uuid.New(), ConversationID: conversation.ID, Body: "hi"}}

	fx.messageUC.EXPECT().
		GetConversation(mock.Anything, fx.user.ID, conversation.ID).
		Return(conversation, nil)

	fx.messageUC.EXPECT().
		ListConversationMessages(mock.Anything, fx.user.ID, conversation.ID, 20, 0).
		Return(backlog, nil)

	fx.session.handleFrame(frameFor(t, OpJoinApplication, conversationRef{ConversationID: conversation.ID}))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventJoined, event.Event)
	assert.Equal(t, "conversation:"+conversation.ID.String(), event.Room)

	// The connection now receives room broadcasts.
	fx.hub.Broadcast("conversation:"+conversation.ID.String(), "new_message", nil)
	broadcast := drainFrame(t, fx.client)
	assert.Equal(t, "new_message", broadcast.Event)
}

func TestSession_JoinRefusedForOutsider(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conversationID := uuid.New()

	fx.messageUC.EXPECT().
		GetConversation(mock.Anything, fx.user.ID, conversationID).
		Return(nil, domainerrors.ErrNotConversationParty)

	fx.session.handleFrame(frameFor(t, OpJoinApplication, conversationRef{ConversationID: conversationID}))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventError, event.Event)

	payload, ok := event.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, OpJoinApplication, payload["op"])
	assert.Equal(t, domainerrors.ErrNotConversationParty.ErrorCode(), payload["code"])

	// The refused connection must not be in the room.
	fx.hub.Broadcast("conversation:"+conversationID.String(), "new_message", nil)
	select {
	case <-fx.client.send:
		t.Fatal("outsider received a room broadcast")
	default:
	}
}

func TestSession_LeaveApplication(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conversationID := uuid.New()
	roomID := "conversation:" + conversationID.String()
	fx.hub.Join(roomID, fx.client)

	fx.session.handleFrame(frameFor(t, OpLeaveApplication, conversationRef{ConversationID: conversationID}))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventLeft, event.Event)
	assert.Equal(t, roomID, event.Room)

	fx.hub.Broadcast(roomID, "new_message", nil)
	select {
	case <-fx.client.send:
		t.Fatal("broadcast delivered after leave")
	default:
	}
}

func TestSession_SendMessage(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleSchool})

	conversationID := uuid.New()
	message := &entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: fx.user.ID, Body: "hello"}
	input := usecase.SendMessageInput{ConversationID: conversationID, Body: "hello"}

	fx.messageUC.EXPECT().
		SendMessage(mock.Anything, fx.user.ID, input).
		Return(message, nil)

	fx.session.handleFrame(frameFor(t, OpSendMessage, input))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventMessageSent, event.Event)

	payload, ok := event.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, message.ID.String(), payload["message_id"])
}

func TestSession_MarkMessagesRead(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conversationID := uuid.New()

	fx.messageUC.EXPECT().
		MarkConversationRead(mock.Anything, fx.user.ID, conversationID).
		Return(int64(5), nil)

	fx.session.handleFrame(frameFor(t, OpMarkMessagesRead, conversationRef{ConversationID: conversationID}))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventMarkedRead, event.Event)

	payload, ok := event.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), payload["count"])
}

func TestSession_MalformedFrames(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
	}{
		{
			name:  "not json",
			frame: []byte("not json at all"),
		},
		{
			name:  "unknown op",
			frame: []byte(`{"op":"fly_to_the_moon"}`),
		},
		{
			name:  "join without conversation id",
			frame: []byte(`{"op":"join_application","data":{}}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

			fx.session.handleFrame(tt.frame)

			event := drainFrame(t, fx.client)
			assert.Equal(t, EventError, event.Event)
		})
	}
}

func TestSession_InternalErrorIsMasked(t *testing.T) {
	fx := createTestSession(t, entity.Roles{entity.RoleTeacher})

	conversationID := uuid.New()

	fx.messageUC.EXPECT().
		MarkConversationRead(mock.Anything, fx.user.ID, conversationID).
		Return(int64(0), io.ErrUnexpectedEOF)

	fx.session.handleFrame(frameFor(t, OpMarkMessagesRead, conversationRef{ConversationID: conversationID}))

	event := drainFrame(t, fx.client)
	assert.Equal(t, EventError, event.Event)

	payload, ok := event.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INTERNAL_ERROR", payload["code"])
	assert.NotContains(t, payload["message"], "EOF")
}
