package usecase

import (
	"context"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput carries the client-supplied fields of a new chat message.
// The receiver is never part of the input; it is derived from the conversation.
type SendMessageInput struct {
	ConversationID uuid.UUID          `json:"conversation_id"`
	Body           string             `json:"body"`
	Type           entity.MessageType `json:"type"`
	Attachments    []string           `json:"attachments,omitempty"`
}

// ConversationSummary is one row of a user's conversation list: the thread
// plus its latest visible message and the viewer's unread count.
type ConversationSummary struct {
	Conversation *entity.Conversation `json:"conversation"`
	LastMessage  *entity.Message      `json:"last_message,omitempty"`
	UnreadCount  int64                `json:"unread_count"`
}

// MessageUsecase defines the interface for conversation and message use cases
type MessageUsecase interface {
	// OpenConversation creates the application thread binding a job, the school
	// user who posted it and the applying teacher.
	OpenConversation(ctx context.Context, jobID, schoolID, teacherID uuid.UUID, jobTitle string) (*entity.Conversation, error)

	// SendMessage persists a message and its communication-log mirror in one
	// transaction, then fans out live and push delivery to the counterpart.
	// Only a conversation party may send.
	SendMessage(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*entity.Message, error)

	// GetConversation returns the conversation after verifying the user is a
	// party to it.
	GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error)

	// ListConversationMessages returns messages in chronological order,
	// paginated from the newest. Fetching marks every unread message addressed
	// to the viewer as read and notifies the counterpart.
	ListConversationMessages(ctx context.Context, userID, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkConversationRead marks every unread message addressed to the user in
	// the conversation and returns how many were flipped.
	MarkConversationRead(ctx context.Context, userID, conversationID uuid.UUID) (int64, error)

	// DeleteMessage soft-deletes a message. Only the original sender may delete.
	DeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error

	// ListConversations returns the user's conversation list with per-thread
	// last message and unread count, most recently active first.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error)
}
