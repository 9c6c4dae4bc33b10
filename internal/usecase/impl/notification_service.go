package impl

import (
	"context"
	"log/slog"
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
	// defaultNotificationPageSize bounds a notification listing when the client
	// sends no limit.
	defaultNotificationPageSize = 20

	// pushTokenBatchSize is the FCM per-request token limit. Larger recipient
	// sets are split so one oversized batch cannot fail the whole delivery.
	pushTokenBatchSize = 500
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	broadcaster      service.RoomBroadcaster
	publisher        service.EventPublisher
	pushSender       service.PushSender
	logger           *slog.Logger

	// dispatch runs push delivery off the caller's critical path. Tests
	// replace it with an inline call.
	dispatch func(fn func())
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	broadcaster service.RoomBroadcaster,
	publisher service.EventPublisher,
	pushSender service.PushSender,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		broadcaster:      broadcaster,
		publisher:        publisher,
		pushSender:       pushSender,
		logger:           logger,
		dispatch:         func(fn func()) { go fn() },
	}
}

func (srv *notificationService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newNotificationEvent is the payload delivered to the owner's personal room.
// ShowPopup tells mobile clients to render a blocking popup instead of a toast.
type newNotificationEvent struct {
	Notification *entity.Notification `json:"notification"`
	ShowPopup    bool                 `json:"show_popup"`
}

// Notify persists the record, broadcasts it live, then hands push delivery to
// the dispatcher. Only the persistence step can fail the call: once the record
// exists, every delivery problem is logged and swallowed because the
// notification stays queryable through the pull API.
func (srv *notificationService) Notify(ctx context.Context, userID uuid.UUID, input usecase.NotifyInput, opts usecase.NotifyOptions) (*entity.Notification, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("notification recipient is required")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrNotificationTypeInvalid
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Data:      input.Data,
		CreatedAt: time.Now(),
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	highPriority := input.Type.Priority() == entity.PriorityHigh

	// A popup needs both a reason to interrupt (forced, or the user is on a
	// mobile client right now) and content important enough to warrant it.
	showPopup := (opts.ForcePopup || srv.broadcaster.HasMobilePresence(userID)) && highPriority

	relayBroadcast(ctx, srv.broadcaster, srv.publisher, srv.loggerFrom(ctx),
		service.UserRoom(userID), service.EventNewNotification,
		newNotificationEvent{
			Notification: notification,
			ShowPopup:    showPopup,
		})

	sendPush := highPriority
	if opts.SendPush != nil {
		sendPush = *opts.SendPush
	}
	if opts.ForcePopup {
		sendPush = true
	}

	if sendPush {
		// Detach from the request's cancellation but keep its values so the
		// request id survives into the push logs.
		pushCtx := context.WithoutCancel(ctx)
		srv.dispatch(func() {
			srv.deliverPush(pushCtx, notification)
		})
	}

	return notification, nil
}

// NotifyMany fans the same content out to several users. Per-user failures
// are collected, not fatal: one bad recipient must not starve the rest.
func (srv *notificationService) NotifyMany(ctx context.Context, userIDs []uuid.UUID, input usecase.NotifyInput, opts usecase.NotifyOptions) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, 0, len(userIDs))
	var errs []error

	for _, userID := range userIDs {
		notification, err := srv.Notify(ctx, userID, input, opts)
		if err != nil {
			srv.loggerFrom(ctx).Warn("failed to notify user",
				slog.String("user_id", userID.String()),
				slog.String("type", string(input.Type)),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)

			continue
		}
		notifications = append(notifications, notification)
	}

	return notifications, errors.Join(errs...)
}

// ListNotifications returns the user's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return srv.notificationRepo.FindNotificationsByUser(ctx, userID, limit, offset)
}

// CountUnread returns the user's unread notification count.
func (srv *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return srv.notificationRepo.CountUnreadByUser(ctx, userID)
}

// MarkRead marks one notification read after verifying ownership.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := srv.requireOwner(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkNotificationRead(ctx, notificationID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	return nil
}

// MarkAllRead marks every unread notification of the user.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return srv.notificationRepo.MarkAllNotificationsRead(ctx, userID, time.Now())
}

// Delete removes a notification after verifying ownership.
func (srv *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := srv.requireOwner(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	return nil
}

// requireOwner loads the notification and verifies it belongs to the user.
func (srv *notificationService) requireOwner(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	if notification.UserID != userID {
		return nil, domainerrors.ErrNotNotificationOwner
	}

	return notification, nil
}

// deliverPush sends the notification to every active device of the owner and
// feeds permanently-invalid tokens back into the registry. Nothing here
// returns an error to the caller; the record already exists.
func (srv *notificationService) deliverPush(ctx context.Context, notification *entity.Notification) {
	logger := srv.loggerFrom(ctx)

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
	if err != nil {
		logger.Error("failed to load devices for push",
			slog.String("notification_id", notification.ID.String()),
			slog.String("user_id", notification.UserID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	if len(devices) == 0 {
		logger.Debug("no active devices, skipping push",
			slog.String("user_id", notification.UserID.String()),
		)

		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	data := make(map[string]string, len(notification.Data)+2)
	for k, v := range notification.Data {
		data[k] = v
	}
	data["notification_id"] = notification.ID.String()
	data["type"] = string(notification.Type)

	var success, failure int
	var invalidTokens []string
	for start := 0; start < len(tokens); start += pushTokenBatchSize {
		batch := tokens[start:min(start+pushTokenBatchSize, len(tokens))]

		batchSuccess, batchFailure, batchInvalid, err := srv.pushSender.SendBatch(ctx, batch, notification.Title, notification.Message, data)
		if err != nil {
			logger.Warn("push delivery failed",
				slog.String("notification_id", notification.ID.String()),
				slog.String("user_id", notification.UserID.String()),
				slog.Int("batch_size", len(batch)),
				slog.String("error", err.Error()),
			)
			failure += len(batch)

			continue
		}

		success += batchSuccess
		failure += batchFailure
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Error("failed to deactivate invalid tokens",
				slog.Int("token_count", len(invalidTokens)),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("deactivated invalid push tokens",
				slog.Int64("deactivated", deactivated),
			)
		}
	}

	logger.Info("push delivery finished",
		slog.String("notification_id", notification.ID.String()),
		slog.String("user_id", notification.UserID.String()),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("invalid", len(invalidTokens)),
	)
}
