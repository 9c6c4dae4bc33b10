package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	mockRepo "teachmatch/internal/mocks/repository"
	mockService "teachmatch/internal/mocks/service"
	mockUsecase "teachmatch/internal/mocks/usecase"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service          usecase.MessageUsecase
	conversationRepo *mockRepo.MockConversationRepository
	messageRepo      *mockRepo.MockMessageRepository
	txManager        *mockRepo.MockTransactionManager
	broadcaster      *mockService.MockRoomBroadcaster
	publisher        *mockService.MockEventPublisher
	notificationUC   *mockUsecase.MockNotificationUsecase
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	broadcaster := mockService.NewMockRoomBroadcaster(t)
	publisher := mockService.NewMockEventPublisher(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(conversationRepo, messageRepo, txManager, broadcaster, publisher, notificationUC, logger)

	return messageServiceFixtures{
		service:          service,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		txManager:        txManager,
		broadcaster:      broadcaster,
		publisher:        publisher,
		notificationUC:   notificationUC,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// transactional repository mocks, mirroring what the gorm manager does.
func expectTransaction(t *testing.T, fx messageServiceFixtures) (*mockRepo.MockMessageRepository, *mockRepo.MockConversationRepository) {
	txMessageRepo := mockRepo.NewMockMessageRepository(t)
	txConversationRepo := mockRepo.NewMockConversationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMessageRepository().Return(txMessageRepo).Maybe()
	factory.EXPECT().NewConversationRepository().Return(txConversationRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txMessageRepo, txConversationRepo
}

func testConversation(schoolID, teacherID uuid.UUID) *entity.Conversation {
	return &entity.Conversation{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		SchoolID:  schoolID,
		TeacherID: teacherID,
		JobTitle:  "Math teacher, grade 5",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestMessageService_OpenConversation_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	jobID := uuid.New()
	schoolID := uuid.New()
	teacherID := uuid.New()

	fx.conversationRepo.EXPECT().
		CreateConversation(ctx, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.JobID == jobID && c.SchoolID == schoolID && c.TeacherID == teacherID
		})).
		Return(nil)

	conversation, err := fx.service.OpenConversation(ctx, jobID, schoolID, teacherID, "Physics teacher")
	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Equal(t, "Physics teacher", conversation.JobTitle)
	assert.NotNil(t, conversation.Log)
	assert.Empty(t, conversation.Log)
}

func TestMessageService_OpenConversation_Validation(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.OpenConversation(ctx, uuid.Nil, uuid.New(), uuid.New(), "title")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.OpenConversation(ctx, uuid.New(), userID, userID, "title")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	txMessageRepo, txConversationRepo := expectTransaction(t, fx)

	txMessageRepo.EXPECT().
		CreateMessage(ctx, mock.MatchedBy(func(m *entity.Message) bool {
			return m.ConversationID == conversation.ID &&
				m.SenderID == schoolID &&
				m.ReceiverID == teacherID &&
				m.Type == entity.MessageTypeText
		})).
		Return(nil)

	txConversationRepo.EXPECT().
		AppendCommunicationEntry(ctx, conversation.ID, mock.MatchedBy(func(e entity.CommunicationEntry) bool {
			return e.AuthorID == schoolID && e.Snippet == "Hello there"
		})).
		Return(nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "new_message", mock.AnythingOfType("*entity.Message"))

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.notificationUC.EXPECT().
		Notify(ctx, teacherID, mock.MatchedBy(func(in usecase.NotifyInput) bool {
			return in.Type == entity.NotificationMessage && in.Message == "Hello there"
		}), usecase.NotifyOptions{}).
		Return(&entity.Notification{}, nil)

	message, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "Hello there",
	})
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, teacherID, message.ReceiverID)
	assert.False(t, message.IsRead)
}

func TestMessageService_SendMessage_IDsFollowSendOrder(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	txMessageRepo, txConversationRepo := expectTransaction(t, fx)
	txMessageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	txConversationRepo.EXPECT().AppendCommunicationEntry(ctx, conversation.ID, mock.Anything).Return(nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "new_message", mock.AnythingOfType("*entity.Message"))

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.notificationUC.EXPECT().
		Notify(ctx, teacherID, mock.Anything, usecase.NotifyOptions{}).
		Return(&entity.Notification{}, nil)

	first, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "first",
	})
	require.NoError(t, err)

	second, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "second",
	})
	require.NoError(t, err)

	// Message ids sort with creation time, so the id tie-break on created_at
	// preserves send order even when two messages land in the same timestamp.
	assert.Equal(t, uuid.Version(7), first.ID.Version())
	assert.Negative(t, bytes.Compare(first.ID[:], second.ID[:]))
}

func TestMessageService_SendMessage_NotifyFailureIsSwallowed(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	txMessageRepo, txConversationRepo := expectTransaction(t, fx)
	txMessageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	txConversationRepo.EXPECT().AppendCommunicationEntry(ctx, conversation.ID, mock.Anything).Return(nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "new_message", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.notificationUC.EXPECT().
		Notify(ctx, schoolID, mock.Anything, usecase.NotifyOptions{}).
		Return(nil, errors.New("notification store down"))

	message, err := fx.service.SendMessage(ctx, teacherID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "Still interested?",
	})
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_SendMessage_TransactionFailureAbortsDelivery(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)
	dbErr := errors.New("deadlock detected")

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr)

	// No broadcast, publish or notify when persistence fails.
	message, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "hi",
	})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, dbErr)
}

func TestMessageService_SendMessage_Validation(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()

	_, err := fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ConversationID: uuid.New(),
		Body:           "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ConversationID: uuid.New(),
		Body:           "hello",
		Type:           entity.MessageType("telegram"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_SendMessage_AttachmentsOnly(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	txMessageRepo, txConversationRepo := expectTransaction(t, fx)
	txMessageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	txConversationRepo.EXPECT().AppendCommunicationEntry(ctx, conversation.ID, mock.Anything).Return(nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "new_message", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	// An empty body falls back to a placeholder in the counterpart notification.
	fx.notificationUC.EXPECT().
		Notify(ctx, teacherID, mock.MatchedBy(func(in usecase.NotifyInput) bool {
			return in.Message == "Sent an attachment"
		}), usecase.NotifyOptions{}).
		Return(&entity.Notification{}, nil)

	message, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Type:           entity.MessageTypeFile,
		Attachments:    []string{"https://cdn.example.com/cv.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageTypeFile, message.Type)
}

func TestMessageService_SendMessage_Outsider(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := testConversation(uuid.New(), uuid.New())

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	_, err := fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           "let me in",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotConversationParty)
}

func TestMessageService_SendMessage_ConversationNotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversationID).
		Return(nil, repository.ErrConversationNotFound)

	_, err := fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ConversationID: conversationID,
		Body:           "hello?",
	})
	assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
}

func TestMessageService_SendMessage_SnippetBounded(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)
	longBody := strings.Repeat("x", 500)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	txMessageRepo, txConversationRepo := expectTransaction(t, fx)
	txMessageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	txConversationRepo.EXPECT().
		AppendCommunicationEntry(ctx, conversation.ID, mock.MatchedBy(func(e entity.CommunicationEntry) bool {
			return len([]rune(e.Snippet)) == messageSnippetMaxLen
		})).
		Return(nil)

	fx.broadcaster.EXPECT().Broadcast(mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.EXPECT().PublishRoomEvent(mock.Anything, mock.Anything).Return(nil)
	fx.notificationUC.EXPECT().
		Notify(ctx, teacherID, mock.Anything, usecase.NotifyOptions{}).
		Return(&entity.Notification{}, nil)

	message, err := fx.service.SendMessage(ctx, schoolID, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		Body:           longBody,
	})
	require.NoError(t, err)
	// The full body survives; only the log mirror is bounded.
	assert.Equal(t, longBody, message.Body)
}

func TestMessageService_ListConversationMessages_ReadOnFetch(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	older := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, CreatedAt: time.Now().Add(-2 * time.Minute)}
	newer := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, CreatedAt: time.Now().Add(-time.Minute)}

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	fx.messageRepo.EXPECT().
		MarkConversationRead(ctx, conversation.ID, teacherID, mock.AnythingOfType("time.Time")).
		Return(int64(2), nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "messages_read", mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(messagesReadEvent)
			return ok && event.ReaderID == teacherID && event.Count == 2
		}))

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.messageRepo.EXPECT().
		FindMessagesByConversation(ctx, conversation.ID, defaultMessagePageSize, 0).
		Return([]*entity.Message{newer, older}, nil)

	messages, err := fx.service.ListConversationMessages(ctx, teacherID, conversation.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	// Repository hands back newest first; clients get chronological order.
	assert.Equal(t, older.ID, messages[0].ID)
	assert.Equal(t, newer.ID, messages[1].ID)
}

func TestMessageService_ListConversationMessages_NoReceiptWhenNothingUnread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	fx.messageRepo.EXPECT().
		MarkConversationRead(ctx, conversation.ID, schoolID, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	fx.messageRepo.EXPECT().
		FindMessagesByConversation(ctx, conversation.ID, 10, 20).
		Return([]*entity.Message{}, nil)

	messages, err := fx.service.ListConversationMessages(ctx, schoolID, conversation.ID, 10, 20)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageService_ListConversationMessages_Outsider(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := testConversation(uuid.New(), uuid.New())

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	_, err := fx.service.ListConversationMessages(ctx, uuid.New(), conversation.ID, 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrNotConversationParty)
}

func TestMessageService_MarkConversationRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := testConversation(schoolID, teacherID)

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	fx.messageRepo.EXPECT().
		MarkConversationRead(ctx, conversation.ID, schoolID, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+conversation.ID.String(), "messages_read", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	flipped, err := fx.service.MarkConversationRead(ctx, schoolID, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)
}

func TestMessageService_DeleteMessage_SenderOnly(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       senderID,
	}

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, message.ID).
		Return(message, nil)

	err := fx.service.DeleteMessage(ctx, uuid.New(), message.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotMessageSender)
}

func TestMessageService_DeleteMessage_AlreadyDeleted(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	message := &entity.Message{
		ID:        uuid.New(),
		SenderID:  senderID,
		IsDeleted: true,
	}

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, message.ID).
		Return(message, nil)

	err := fx.service.DeleteMessage(ctx, senderID, message.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)
}

func TestMessageService_DeleteMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       senderID,
	}

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, message.ID).
		Return(message, nil)

	fx.messageRepo.EXPECT().
		SoftDeleteMessage(ctx, message.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.broadcaster.EXPECT().
		Broadcast("conversation:"+message.ConversationID.String(), "message_deleted", mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(messageDeletedEvent)
			return ok && event.MessageID == message.ID
		}))

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	err := fx.service.DeleteMessage(ctx, senderID, message.ID)
	require.NoError(t, err)
}

func TestMessageService_ListConversations_MergesSummaries(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	withMessages := testConversation(userID, uuid.New())
	empty := testConversation(userID, uuid.New())
	last := &entity.Message{ID: uuid.New(), ConversationID: withMessages.ID, Body: "See you Monday"}

	fx.conversationRepo.EXPECT().
		FindConversationsByParty(ctx, userID).
		Return([]*entity.Conversation{withMessages, empty}, nil)

	fx.messageRepo.EXPECT().
		FindLastMessages(ctx, []uuid.UUID{withMessages.ID, empty.ID}, userID).
		Return(map[uuid.UUID]*repository.ConversationLastMessage{
			withMessages.ID: {ConversationID: withMessages.ID, Message: last, UnreadCount: 2},
		}, nil)

	summaries, err := fx.service.ListConversations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, last, summaries[0].LastMessage)
	assert.Equal(t, int64(2), summaries[0].UnreadCount)
	assert.Nil(t, summaries[1].LastMessage)
	assert.Zero(t, summaries[1].UnreadCount)
}

func TestMessageService_ListConversations_Empty(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindConversationsByParty(ctx, userID).
		Return([]*entity.Conversation{}, nil)

	summaries, err := fx.service.ListConversations(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestMessageService_GetConversation(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	schoolID := uuid.New()
	conversation := testConversation(schoolID, uuid.New())

	fx.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	got, err := fx.service.GetConversation(ctx, schoolID, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, got.ID)
}
