// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for conversation-related
// database operations.
type ConversationRepository interface {
	// CreateConversation persists a new application thread.
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error

	// FindConversationByID retrieves a conversation by its unique ID.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindConversationsByParty retrieves every conversation the user takes part
	// in, most recently updated first.
	FindConversationsByParty(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// AppendCommunicationEntry appends a mirror entry to the conversation's
	// rolling communication log, trimming it to entity.MaxCommunicationLogEntries.
	AppendCommunicationEntry(ctx context.Context, conversationID uuid.UUID, entry entity.CommunicationEntry) error
}
