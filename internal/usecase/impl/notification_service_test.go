package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	mockRepo "teachmatch/internal/mocks/repository"
	mockService "teachmatch/internal/mocks/service"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	broadcaster      *mockService.MockRoomBroadcaster
	publisher        *mockService.MockEventPublisher
	pushSender       *mockService.MockPushSender
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	broadcaster := mockService.NewMockRoomBroadcaster(t)
	publisher := mockService.NewMockEventPublisher(t)
	pushSender := mockService.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNotificationService(notificationRepo, deviceRepo, broadcaster, publisher, pushSender, logger)

	// Run push delivery inline so expectations are checked before the test ends.
	service.(*notificationService).dispatch = func(fn func()) { fn() }

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		broadcaster:      broadcaster,
		publisher:        publisher,
		pushSender:       pushSender,
	}
}

func highPriorityInput() usecase.NotifyInput {
	return usecase.NotifyInput{
		Type:    entity.NotificationShortlisted,
		Title:   "Application shortlisted",
		Message: "Your application made the shortlist",
	}
}

func TestNotificationService_Notify_HighPriorityPushesByDefault(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Token: "token-1", IsActive: true}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(false)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.Device{device}, nil)

	fx.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"token-1"}, "Application shortlisted", "Your application made the shortlist", mock.Anything).
		Return(1, 0, nil, nil)

	notification, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, entity.NotificationShortlisted, notification.Type)
	assert.False(t, notification.IsRead)
}

func TestNotificationService_Notify_LowPriorityDoesNotPush(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(true)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	// No device lookup and no SendBatch: low priority types stay quiet.
	notification, err := fx.service.Notify(ctx, userID, usecase.NotifyInput{
		Type:    entity.NotificationJobPosted,
		Title:   "New job",
		Message: "A school you follow posted a job",
	}, usecase.NotifyOptions{})
	require.NoError(t, err)
	require.NotNil(t, notification)
}

func TestNotificationService_Notify_PopupNeedsPriorityAndPresence(t *testing.T) {
	tests := []struct {
		name          string
		input         usecase.NotifyInput
		opts          usecase.NotifyOptions
		mobileOnline  bool
		expectPopup   bool
		expectsDevice bool
	}{
		{
			name:          "high priority with mobile presence pops",
			input:         highPriorityInput(),
			mobileOnline:  true,
			expectPopup:   true,
			expectsDevice: true,
		},
		{
			name:          "high priority without presence stays quiet",
			input:         highPriorityInput(),
			mobileOnline:  false,
			expectPopup:   false,
			expectsDevice: true,
		},
		{
			name:          "force popup overrides missing presence",
			input:         highPriorityInput(),
			opts:          usecase.NotifyOptions{ForcePopup: true},
			mobileOnline:  false,
			expectPopup:   true,
			expectsDevice: true,
		},
		{
			name: "low priority never pops even when forced",
			input: usecase.NotifyInput{
				Type:    entity.NotificationBlogPublished,
				Title:   "New post",
				Message: "Fresh on the blog",
			},
			opts:          usecase.NotifyOptions{ForcePopup: true},
			mobileOnline:  true,
			expectPopup:   false,
			expectsDevice: true, // force popup still forces push
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.notificationRepo.EXPECT().
				CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			fx.broadcaster.EXPECT().
				HasMobilePresence(userID).
				Return(tt.mobileOnline).
				Maybe()

			var gotPopup bool
			fx.broadcaster.EXPECT().
				Broadcast("user:"+userID.String(), "new_notification", mock.Anything).
				Run(func(_ string, _ string, payload interface{}) {
					event, ok := payload.(newNotificationEvent)
					require.True(t, ok)
					gotPopup = event.ShowPopup
				})

			fx.publisher.EXPECT().
				PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
				Return(nil)

			if tt.expectsDevice {
				fx.deviceRepo.EXPECT().
					FindActiveDevicesByUser(mock.Anything, userID).
					Return([]*entity.Device{}, nil).
					Maybe()
			}

			_, err := fx.service.Notify(ctx, userID, tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expectPopup, gotPopup)
		})
	}
}

func TestNotificationService_Notify_SendPushOverride(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	noPush := false

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(true)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	// SendPush=false silences a high priority type; no device lookup happens.
	_, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{SendPush: &noPush})
	require.NoError(t, err)
}

func TestNotificationService_Notify_InvalidType(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Notify(context.Background(), uuid.New(), usecase.NotifyInput{
		Type:  entity.NotificationType("carrier_pigeon"),
		Title: "??",
	}, usecase.NotifyOptions{})
	assert.ErrorIs(t, err, domainerrors.ErrNotificationTypeInvalid)
}

func TestNotificationService_Notify_MissingRecipient(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Notify(context.Background(), uuid.Nil, highPriorityInput(), usecase.NotifyOptions{})
	assert.Error(t, err)
}

func TestNotificationService_Notify_PersistFailureFailsCall(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	dbErr := errors.New("database down")

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(dbErr)

	notification, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	assert.Nil(t, notification)
	assert.ErrorIs(t, err, dbErr)
}

func TestNotificationService_Notify_PushFailureIsSwallowed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Token: "token-1", IsActive: true}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(false)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.Device{device}, nil)

	fx.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"token-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unreachable"))

	notification, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_Notify_InvalidTokensDeactivated(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, Token: "good-token", IsActive: true},
		{ID: uuid.New(), UserID: userID, Token: "dead-token", IsActive: true},
	}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(false)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return(devices, nil)

	fx.pushSender.EXPECT().
		SendBatch(mock.Anything, []string{"good-token", "dead-token"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"dead-token"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateByTokens(mock.Anything, []string{"dead-token"}).
		Return(1, nil)

	_, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	require.NoError(t, err)
}

func TestNotificationService_Notify_LargeDeviceSetIsChunked(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	const deviceCount = pushTokenBatchSize + 1
	devices := make([]*entity.Device, 0, deviceCount)
	for i := range deviceCount {
		devices = append(devices, &entity.Device{
			ID:       uuid.New(),
			UserID:   userID,
			Token:    "token-" + strconv.Itoa(i),
			IsActive: true,
		})
	}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(false)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return(devices, nil)

	// One full batch at the provider limit, then the remainder. The invalid
	// token surfaces from the second batch and still reaches the registry.
	fx.pushSender.EXPECT().
		SendBatch(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == pushTokenBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(pushTokenBatchSize, 0, nil, nil)

	fx.pushSender.EXPECT().
		SendBatch(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 1 }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"token-" + strconv.Itoa(deviceCount-1)}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateByTokens(mock.Anything, []string{"token-" + strconv.Itoa(deviceCount-1)}).
		Return(1, nil)

	_, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	require.NoError(t, err)
}

func TestNotificationService_Notify_BroadcastFailureDoesNotFail(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.broadcaster.EXPECT().
		HasMobilePresence(userID).
		Return(true)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+userID.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(errors.New("pubsub unavailable"))

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.Device{}, nil)

	notification, err := fx.service.Notify(ctx, userID, highPriorityInput(), usecase.NotifyOptions{})
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_NotifyMany_PartialFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	goodUser := uuid.New()
	badUser := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == goodUser
		})).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == badUser
		})).
		Return(errors.New("constraint violation"))

	fx.broadcaster.EXPECT().
		HasMobilePresence(goodUser).
		Return(false)

	fx.broadcaster.EXPECT().
		Broadcast("user:"+goodUser.String(), "new_notification", mock.Anything)

	fx.publisher.EXPECT().
		PublishRoomEvent(mock.Anything, mock.AnythingOfType("*service.RoomEvent")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, goodUser).
		Return([]*entity.Device{}, nil)

	notifications, err := fx.service.NotifyMany(ctx, []uuid.UUID{goodUser, badUser}, highPriorityInput(), usecase.NotifyOptions{})
	assert.Error(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, goodUser, notifications[0].UserID)
}

func TestNotificationService_MarkRead_OwnerOnly(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: owner}, nil)

	err := fx.service.MarkRead(ctx, stranger, notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotNotificationOwner)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	owner := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: owner}, nil)

	fx.notificationRepo.EXPECT().
		MarkNotificationRead(ctx, notificationID, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.MarkRead(ctx, owner, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_Delete_OwnerOnly(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	owner := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: owner}, nil)

	fx.notificationRepo.EXPECT().
		DeleteNotification(ctx, notificationID).
		Return(nil)

	err := fx.service.Delete(ctx, owner, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_ListNotifications_DefaultsPageSize(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultNotificationPageSize, 0).
		Return([]*entity.Notification{}, nil)

	_, err := fx.service.ListNotifications(ctx, userID, 0, -3)
	require.NoError(t, err)
}

func TestNotificationService_CountUnread(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(4), nil)

	count, err := fx.service.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
