// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related
// database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser retrieves notifications for a user, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead sets is_read and read_at on a single notification.
	MarkNotificationRead(ctx context.Context, id uuid.UUID, readAt time.Time) error

	// MarkAllNotificationsRead marks every unread notification of the user.
	// Returns the number of notifications flipped.
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)

	// DeleteNotification removes a notification; the only hard delete in the
	// core, performed exclusively on explicit user request.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// CountUnreadByUser counts unread notifications for badge display.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
