package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"teachmatch/config"
	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/service"
	"teachmatch/internal/errors"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
)

// Session drives one authenticated connection: implicit room memberships on
// connect, then a loop over client operations until the peer goes away.
type Session struct {
	ctx       context.Context
	client    *Client
	hub       *Hub
	user      *entity.User
	messageUC usecase.MessageUsecase

	backlogLimit int
	logger       *slog.Logger
}

// NewSession is the constructor for Session. ctx should carry the request id
// minted during the upgrade so session logs correlate with the handshake.
func NewSession(
	ctx context.Context,
	client *Client,
	hub *Hub,
	user *entity.User,
	messageUC usecase.MessageUsecase,
	cfg config.RealtimeConfig,
	logger *slog.Logger,
) *Session {
	return &Session{
		ctx:          ctx,
		client:       client,
		hub:          hub,
		user:         user,
		messageUC:    messageUC,
		backlogLimit: cfg.BacklogLimit,
		logger: logger.With(
			slog.String("client_id", client.ID().String()),
			slog.String("user_id", user.ID.String()),
		),
	}
}

// Run blocks until the connection closes. Every connection is implicitly
// joined to the user's personal room and the feed; school users also get
// their applications room. Conversation rooms are joined on demand.
func (s *Session) Run() {
	s.hub.Register(s.client)
	s.hub.Join(service.UserRoom(s.user.ID), s.client)
	s.hub.Join(service.FeedRoom, s.client)
	if s.user.Roles.Contains(entity.RoleSchool) {
		s.hub.Join(service.SchoolApplicationsRoom(s.user.ID), s.client)
	}

	s.logger.Info("realtime session started",
		slog.String("platform", string(s.client.Platform())),
	)

	go s.client.WritePump()
	s.client.ReadPump(s.handleFrame)

	s.hub.Disconnect(s.client)
	s.logger.Info("realtime session ended")
}

// conversationRef is the payload of every conversation-scoped operation.
type conversationRef struct {
	ConversationID uuid.UUID `json:"conversation_id"`
}

// joinedPayload acknowledges a join with the recent message backlog.
type joinedPayload struct {
	ConversationID uuid.UUID         `json:"conversation_id"`
	Backlog        []*entity.Message `json:"backlog"`
}

// messageSentPayload acknowledges a send with the persisted message.
type messageSentPayload struct {
	MessageID      uuid.UUID       `json:"message_id"`
	ConversationID uuid.UUID       `json:"conversation_id"`
	Message        *entity.Message `json:"message"`
}

// markedReadPayload reports how many messages a mark_messages_read flipped.
type markedReadPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Count          int64     `json:"count"`
}

// errorPayload reports a refused or failed operation.
type errorPayload struct {
	Op      string `json:"op"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Session) handleFrame(frame []byte) {
	var envelope Envelope
	if err := json.Unmarshal(frame, &envelope); err != nil {
		s.replyError("", domainerrors.ErrValidationFailed.WithDetails("malformed frame"))

		return
	}

	switch envelope.Op {
	case OpJoinApplication:
		s.handleJoin(envelope)
	case OpLeaveApplication:
		s.handleLeave(envelope)
	case OpSendMessage:
		s.handleSendMessage(envelope)
	case OpMarkMessagesRead:
		s.handleMarkRead(envelope)
	default:
		s.replyError(envelope.Op, domainerrors.ErrValidationFailed.WithDetails("unknown operation"))
	}
}

// handleJoin verifies party membership, joins the conversation room and
// replies with the recent backlog. Listing the backlog doubles as the read
// receipt for the joining user.
func (s *Session) handleJoin(envelope Envelope) {
	ref, ok := s.decodeRef(envelope)
	if !ok {
		return
	}

	conversation, err := s.messageUC.GetConversation(s.ctx, s.user.ID, ref.ConversationID)
	if err != nil {
		s.replyOpError(envelope.Op, err)

		return
	}

	backlog, err := s.messageUC.ListConversationMessages(s.ctx, s.user.ID, conversation.ID, s.backlogLimit, 0)
	if err != nil {
		s.replyOpError(envelope.Op, err)

		return
	}

	s.hub.Join(service.ConversationRoom(conversation.ID), s.client)
	s.reply(EventJoined, service.ConversationRoom(conversation.ID), joinedPayload{
		ConversationID: conversation.ID,
		Backlog:        backlog,
	})
}

func (s *Session) handleLeave(envelope Envelope) {
	ref, ok := s.decodeRef(envelope)
	if !ok {
		return
	}

	roomID := service.ConversationRoom(ref.ConversationID)
	s.hub.Leave(roomID, s.client)
	s.reply(EventLeft, roomID, conversationRef{ConversationID: ref.ConversationID})
}

func (s *Session) handleSendMessage(envelope Envelope) {
	var input usecase.SendMessageInput
	if err := json.Unmarshal(envelope.Data, &input); err != nil {
		s.replyError(envelope.Op, domainerrors.ErrValidationFailed.WithDetails("malformed payload"))

		return
	}

	message, err := s.messageUC.SendMessage(s.ctx, s.user.ID, input)
	if err != nil {
		s.replyOpError(envelope.Op, err)

		return
	}

	s.reply(EventMessageSent, service.ConversationRoom(message.ConversationID), messageSentPayload{
		MessageID:      message.ID,
		ConversationID: message.ConversationID,
		Message:        message,
	})
}

func (s *Session) handleMarkRead(envelope Envelope) {
	ref, ok := s.decodeRef(envelope)
	if !ok {
		return
	}

	count, err := s.messageUC.MarkConversationRead(s.ctx, s.user.ID, ref.ConversationID)
	if err != nil {
		s.replyOpError(envelope.Op, err)

		return
	}

	s.reply(EventMarkedRead, service.ConversationRoom(ref.ConversationID), markedReadPayload{
		ConversationID: ref.ConversationID,
		Count:          count,
	})
}

func (s *Session) decodeRef(envelope Envelope) (conversationRef, bool) {
	var ref conversationRef
	if err := json.Unmarshal(envelope.Data, &ref); err != nil || ref.ConversationID == uuid.Nil {
		s.replyError(envelope.Op, domainerrors.ErrValidationFailed.WithDetails("conversation_id is required"))

		return conversationRef{}, false
	}

	return ref, true
}

// reply sends a frame to this connection only.
func (s *Session) reply(event, room string, payload any) {
	frame, err := EncodeServerEvent(event, room, payload)
	if err != nil {
		s.logger.Error("failed to encode reply",
			slog.String("event", event),
			slog.String("error", err.Error()),
		)

		return
	}

	if !s.client.Enqueue(frame) {
		s.logger.Warn("dropped reply to slow or closed client",
			slog.String("event", event),
		)
	}
}

// replyOpError maps an application error to an error frame. Unexpected errors
// are masked so internals never reach the wire.
func (s *Session) replyOpError(op string, err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		s.reply(EventError, "", errorPayload{
			Op:      op,
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
		})

		return
	}

	s.logger.Error("operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	s.reply(EventError, "", errorPayload{
		Op:      op,
		Code:    "INTERNAL_ERROR",
		Message: "Something went wrong",
	})
}

func (s *Session) replyError(op string, appErr domainerrors.AppError) {
	s.reply(EventError, "", errorPayload{
		Op:      op,
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	})
}
