// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// ConversationLastMessage pairs a conversation with its most recent visible
// message, used to build conversation summaries.
type ConversationLastMessage struct {
	ConversationID uuid.UUID
	Message        *entity.Message
	UnreadCount    int64
}

// MessageRepository defines the interface for message-related database
// operations. Soft-deleted messages are excluded from every listing but their
// rows are retained for audit.
type MessageRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessageByID retrieves a message by its unique ID, including
	// soft-deleted rows so callers can distinguish deleted from absent.
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// FindMessagesByConversation retrieves visible messages for a conversation,
	// newest first, paginated.
	FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkConversationRead sets is_read and read_at on every unread visible
	// message addressed to the receiver in the conversation. Returns the number
	// of messages flipped.
	MarkConversationRead(ctx context.Context, conversationID, receiverID uuid.UUID, readAt time.Time) (int64, error)

	// SoftDeleteMessage sets is_deleted and deleted_at on a message.
	SoftDeleteMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error

	// FindLastMessages resolves, for each given conversation, the most recent
	// visible message and the count of unread messages addressed to the user.
	FindLastMessages(ctx context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]*ConversationLastMessage, error)
}
