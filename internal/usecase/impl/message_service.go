package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "teachmatch/internal/delivery/context"
	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/domain/service"
	"teachmatch/internal/errors"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
)

const (
	// defaultMessagePageSize bounds a message listing when the client sends no limit.
	defaultMessagePageSize = 50

	// messageSnippetMaxLen bounds the communication-log mirror of a message body.
	messageSnippetMaxLen = 120
)

type messageService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	txManager        repository.TransactionManager
	broadcaster      service.RoomBroadcaster
	publisher        service.EventPublisher
	notificationUC   usecase.NotificationUsecase
	logger           *slog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	txManager repository.TransactionManager,
	broadcaster service.RoomBroadcaster,
	publisher service.EventPublisher,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		txManager:        txManager,
		broadcaster:      broadcaster,
		publisher:        publisher,
		notificationUC:   notificationUC,
		logger:           logger,
	}
}

func (srv *messageService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// messagesReadEvent is the payload broadcast when a receiver's unread
// messages flip to read.
type messagesReadEvent struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	ReaderID       uuid.UUID `json:"reader_id"`
	Count          int64     `json:"count"`
	ReadAt         time.Time `json:"read_at"`
}

// messageDeletedEvent is the payload broadcast when a sender removes a message.
type messageDeletedEvent struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	DeletedAt      time.Time `json:"deleted_at"`
}

// OpenConversation creates the application thread binding a job, its school
// user and the applying teacher.
func (srv *messageService) OpenConversation(ctx context.Context, jobID, schoolID, teacherID uuid.UUID, jobTitle string) (*entity.Conversation, error) {
	if jobID == uuid.Nil || schoolID == uuid.Nil || teacherID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("conversation parties are required")
	}
	if schoolID == teacherID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("conversation parties must differ")
	}

	now := time.Now()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		JobID:     jobID,
		SchoolID:  schoolID,
		TeacherID: teacherID,
		JobTitle:  jobTitle,
		Log:       []entity.CommunicationEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.conversationRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// SendMessage persists the message and its communication-log mirror in one
// transaction, broadcasts to the conversation room, then notifies the
// counterpart. Persistence failures abort the call; delivery failures do not.
func (srv *messageService) SendMessage(ctx context.Context, senderID uuid.UUID, input usecase.SendMessageInput) (*entity.Message, error) {
	messageType := input.Type
	if messageType == "" {
		messageType = entity.MessageTypeText
	}
	if !messageType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown message type")
	}
	if strings.TrimSpace(input.Body) == "" && len(input.Attachments) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message body or attachments required")
	}

	conversation, err := srv.conversationRepo.FindConversationByID(ctx, input.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, err
	}

	receiverID, ok := conversation.Counterpart(senderID)
	if !ok {
		return nil, domainerrors.ErrNotConversationParty
	}

	now := time.Now()
	// V7 ids are time-ordered, so the id tie-break on created_at keeps
	// same-timestamp messages in send order.
	message := &entity.Message{
		ID:             uuid.Must(uuid.NewV7()),
		ConversationID: conversation.ID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Body:           input.Body,
		Type:           messageType,
		Attachments:    input.Attachments,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	snippet := messageSnippet(input.Body)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMessageRepository().CreateMessage(ctx, message); err != nil {
			return err
		}

		entry := entity.CommunicationEntry{
			AuthorID: senderID,
			Type:     message.Type.String(),
			Snippet:  snippet,
			SentAt:   message.CreatedAt,
		}

		return repoFactory.NewConversationRepository().AppendCommunicationEntry(ctx, conversation.ID, entry)
	})
	if err != nil {
		return nil, err
	}

	relayBroadcast(ctx, srv.broadcaster, srv.publisher, srv.loggerFrom(ctx),
		service.ConversationRoom(conversation.ID), service.EventNewMessage, message)

	body := snippet
	if body == "" {
		body = "Sent an attachment"
	}
	notifyInput := usecase.NotifyInput{
		Type:    entity.NotificationMessage,
		Title:   "New message",
		Message: body,
		Data: map[string]string{
			"conversation_id": conversation.ID.String(),
			"message_id":      message.ID.String(),
			"job_id":          conversation.JobID.String(),
			"job_title":       conversation.JobTitle,
			"sender_id":       senderID.String(),
		},
	}
	if _, err := srv.notificationUC.Notify(ctx, receiverID, notifyInput, usecase.NotifyOptions{}); err != nil {
		srv.loggerFrom(ctx).Warn("failed to notify message counterpart",
			slog.String("conversation_id", conversation.ID.String()),
			slog.String("receiver_id", receiverID.String()),
			slog.String("error", err.Error()),
		)
	}

	return message, nil
}

// GetConversation returns the conversation after verifying membership.
func (srv *messageService) GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	return srv.requireParty(ctx, userID, conversationID)
}

// ListConversationMessages returns messages in chronological order. Fetching
// doubles as the read receipt: every unread message addressed to the viewer
// flips to read before the page is loaded.
func (srv *messageService) ListConversationMessages(ctx context.Context, userID, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	conversation, err := srv.requireParty(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := srv.markRead(ctx, userID, conversation); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindMessagesByConversation(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}

	// Repository order is newest first for pagination; clients render oldest first.
	slices.Reverse(messages)

	return messages, nil
}

// MarkConversationRead marks every unread message addressed to the user.
func (srv *messageService) MarkConversationRead(ctx context.Context, userID, conversationID uuid.UUID) (int64, error) {
	conversation, err := srv.requireParty(ctx, userID, conversationID)
	if err != nil {
		return 0, err
	}

	return srv.markRead(ctx, userID, conversation)
}

// DeleteMessage soft-deletes a message on behalf of its sender.
func (srv *messageService) DeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error {
	message, err := srv.messageRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return err
	}

	if message.SenderID != userID {
		return domainerrors.ErrNotMessageSender
	}
	if message.IsDeleted {
		return domainerrors.ErrMessageNotFound
	}

	now := time.Now()
	if err := srv.messageRepo.SoftDeleteMessage(ctx, messageID, now); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return err
	}

	relayBroadcast(ctx, srv.broadcaster, srv.publisher, srv.loggerFrom(ctx),
		service.ConversationRoom(message.ConversationID), service.EventMessageDeleted,
		messageDeletedEvent{
			ConversationID: message.ConversationID,
			MessageID:      messageID,
			DeletedAt:      now,
		})

	return nil
}

// ListConversations returns the user's conversation list with per-thread
// summaries, most recently active first.
func (srv *messageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationSummary, error) {
	conversations, err := srv.conversationRepo.FindConversationsByParty(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(conversations) == 0 {
		return []*usecase.ConversationSummary{}, nil
	}

	conversationIDs := make([]uuid.UUID, 0, len(conversations))
	for _, conversation := range conversations {
		conversationIDs = append(conversationIDs, conversation.ID)
	}

	lastMessages, err := srv.messageRepo.FindLastMessages(ctx, conversationIDs, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*usecase.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summary := &usecase.ConversationSummary{Conversation: conversation}
		if last, ok := lastMessages[conversation.ID]; ok {
			summary.LastMessage = last.Message
			summary.UnreadCount = last.UnreadCount
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// requireParty loads the conversation and verifies membership.
func (srv *messageService) requireParty(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, err
	}

	if !conversation.IsParty(userID) {
		return nil, domainerrors.ErrNotConversationParty
	}

	return conversation, nil
}

// markRead flips unread messages and, when anything changed, tells the
// conversation room so the counterpart can render read receipts.
func (srv *messageService) markRead(ctx context.Context, userID uuid.UUID, conversation *entity.Conversation) (int64, error) {
	readAt := time.Now()
	flipped, err := srv.messageRepo.MarkConversationRead(ctx, conversation.ID, userID, readAt)
	if err != nil {
		return 0, err
	}

	if flipped > 0 {
		relayBroadcast(ctx, srv.broadcaster, srv.publisher, srv.loggerFrom(ctx),
			service.ConversationRoom(conversation.ID), service.EventMessagesRead,
			messagesReadEvent{
				ConversationID: conversation.ID,
				ReaderID:       userID,
				Count:          flipped,
				ReadAt:         readAt,
			})
	}

	return flipped, nil
}

// messageSnippet trims and bounds a body for the communication-log mirror.
func messageSnippet(body string) string {
	snippet := strings.TrimSpace(body)
	runes := []rune(snippet)
	if len(runes) > messageSnippetMaxLen {
		snippet = string(runes[:messageSnippetMaxLen])
	}

	return snippet
}
