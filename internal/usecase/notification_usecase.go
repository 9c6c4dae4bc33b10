package usecase

import (
	"context"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifyInput carries the content of a notification to fan out.
type NotifyInput struct {
	Type    entity.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Data    map[string]string       `json:"data,omitempty"`
}

// NotifyOptions tunes delivery per call. ForcePopup requests a blocking popup
// regardless of mobile presence. SendPush overrides the type-priority default
// when non-nil; when nil, high-priority types push and low-priority ones don't.
type NotifyOptions struct {
	ForcePopup bool  `json:"force_popup"`
	SendPush   *bool `json:"send_push,omitempty"`
}

// NotificationUsecase defines the interface for notification fan-out and the
// pull-based notification center.
type NotificationUsecase interface {
	// Notify persists a notification for the user and fans it out: live room
	// broadcast first, then push to active devices per the popup/push policy.
	// Delivery failures never fail the call; the record is always queryable.
	Notify(ctx context.Context, userID uuid.UUID, input NotifyInput, opts NotifyOptions) (*entity.Notification, error)

	// NotifyMany fans the same content out to several users, one persisted
	// record each.
	NotifyMany(ctx context.Context, userIDs []uuid.UUID, input NotifyInput, opts NotifyOptions) ([]*entity.Notification, error)

	// ListNotifications returns the user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns the user's unread notification count for badges.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification read. Only the owner may mark.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification of the user and returns how
	// many were flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes a notification on explicit user request. Only the owner
	// may delete.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}
